package common

import "fmt"

type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Data: data,
	}
}

func NewMessageResponse(format string, args ...interface{}) *SuccessResponse {
	return &SuccessResponse{
		Message: fmt.Sprintf(format, args...),
	}
}
