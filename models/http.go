package models

// ErrorResponse is the error body shape shared by every endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatusResponse is returned by the root and webhook endpoints.
type StatusResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// CheckInReport summarises a scheduled check-in run.
type CheckInReport struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
