package dto

// ErrorResponse standard error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmation body for deletes and batch triggers.
type MessageResponse struct {
	Message string `json:"message"`
}
