package api

// Shared response envelopes for the HTTP surface.

type ErrorResponse struct {
	Error string `json:"error" example:"pool not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"logged out"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
