package compute_end_time

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func get(query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/end-time?"+query, nil))
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		query   string
		end     string
		crosses bool
	}{
		{query: "start=10:30&hours=1&minutes=45", end: "12:15"},
		{query: "start=09:00&minutes=90", end: "10:30"},
		{query: "start=22:30&hours=2", end: "00:30", crosses: true},
		{query: "start=22:00&hours=2", end: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := get(tt.query)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp EndTimeResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.end, resp.EndTime)
			assert.Equal(t, tt.crosses, resp.CrossesMidnight)
		})
	}
}

func TestHandle_BadInput(t *testing.T) {
	for _, query := range []string{
		"hours=1",
		"start=25:00&hours=1",
		"start=10:00",
		"start=10:00&hours=0&minutes=0",
		"start=10:00&hours=-1",
		"start=10:00&hours=one",
		"start=18:00:zz&hours=1",
		"start=18:00:99&hours=1",
	} {
		assert.Equal(t, http.StatusBadRequest, get(query).Code, query)
	}
}
