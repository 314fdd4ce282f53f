package utils

// MessageResponse is the body shape shared by success confirmations and
// error replies. Error carries the underlying diagnostic for 500s only.
type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewMessageResponse creates a plain message body.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewErrorResponse creates an error body carrying the diagnostic from the
// underlying failure. Used for storage-layer errors surfaced as 500s.
func NewErrorResponse(message string, err error) MessageResponse {
	resp := MessageResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
