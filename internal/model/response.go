package model

// Response is the uniform result envelope. Success and Error are
// mutually exclusive; Status carries the HTTP-style status code in both
// cases.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"status"`
}

// OK wraps data in a successful envelope.
func OK[T any](status int, data T) Response[T] {
	return Response[T]{
		Success: true,
		Data:    data,
		Status:  status,
	}
}

// Fail builds a failed envelope carrying only a message.
func Fail[T any](status int, message string) Response[T] {
	return Response[T]{
		Success: false,
		Error:   message,
		Status:  status,
	}
}
