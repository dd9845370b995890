package compute_end_time

import (
	"net/http"

	"github.com/reservely/reservation-service/internal/api/handlers"
	"github.com/reservely/reservation-service/internal/domain"
	"github.com/reservely/reservation-service/pkg/types"
)

const (
	msgInvalidStart    = "некорректное время начала, ожидается HH:MM"
	msgInvalidDuration = "некорректная длительность"
)

type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/end-time?start=HH:MM&hours=&minutes=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start, err := types.NewTimeStringFromString(r.URL.Query().Get("start"))
	if err != nil {
		h.logger.Warn("GET /end-time - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	duration, err := handlers.QueryDuration(r)
	if err != nil || duration == nil {
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	end, err := domain.ComputeEndTime(start, duration)
	if err != nil {
		h.logger.Warn("GET /end-time - Failed to compute: start=%s, duration=%s, error=%v", start, duration, err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	crosses, _ := domain.EndCrossesMidnight(start, *duration)

	handlers.RespondJSON(w, http.StatusOK, EndTimeResponse{
		StartTime:       start.String(),
		EndTime:         end.String(),
		CrossesMidnight: crosses,
	})
}
