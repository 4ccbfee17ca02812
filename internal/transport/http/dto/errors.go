package dto

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewError(msg string) ErrorResponse { return ErrorResponse{Error: msg} }
