package v1

// StatusAPIResponse is the JSON envelope every record-store endpoint wraps
// its payload in.
type StatusAPIResponse[T any] struct {
	Status bool       `json:"status"`
	Data   T          `json:"data,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
