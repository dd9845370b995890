package compute_end_time

// EndTimeResponse ответ GET /end-time
type EndTimeResponse struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	CrossesMidnight bool   `json:"crossesMidnight"`
}
