package models

// Response is the JSON envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK builds a success envelope with optional data
func OK(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// OKList builds a success envelope carrying a list and its length
func OKList(data interface{}, count int) Response {
	return Response{Success: true, Count: &count, Data: data}
}

// Fail builds an error envelope with a human-readable message
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
