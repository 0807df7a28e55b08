package v1

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes the store reports that callers distinguish. Anything else is
// treated as a generic store failure.
const (
	CodeRecordNotFound = "RECORD_NOT_FOUND"
	CodeInvalidToken   = "INVALID_TOKEN"
	CodeRateLimited    = "RATE_LIMITED"
)

// StoreError is a non-2xx reply from the record store.
type StoreError struct {
	Code       string
	Message    string
	HTTPStatus int
	Op         string
}

func (e *StoreError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s failed: %s (%s)", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("%s failed with status code %d: %s", e.Op, e.HTTPStatus, e.Message)
}

func decodeStoreError(method, path string, status int, body []byte) *StoreError {
	se := &StoreError{
		HTTPStatus: status,
		Op:         fmt.Sprintf("%s %s", method, path),
		Message:    string(body),
	}

	var envelope StatusAPIResponse[json.RawMessage]
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		se.Code = envelope.Error.Code
		se.Message = envelope.Error.Message
	}
	return se
}

func IsNotFound(err error) bool { return hasCode(err, CodeRecordNotFound) }

func IsAuthError(err error) bool { return hasCode(err, CodeInvalidToken) }

func IsRateLimited(err error) bool { return hasCode(err, CodeRateLimited) }

func hasCode(err error, code string) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == code
}
