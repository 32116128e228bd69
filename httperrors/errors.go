package httperrors

import (
	"net/http"
	"strconv"

	"github.com/txix-open/isp-kit/json"
)

// HttpError is the single error shape crossing the service boundary.
// It renders as {"ok":false,"error":<userMessage>} plus any diagnostic
// fields attached with WithField.
type HttpError struct {
	statusCode  int
	userMessage string
	fields      map[string]string
	err         error
}

func New(statusCode int, userMessage string, internalError error) HttpError {
	return HttpError{
		statusCode:  statusCode,
		userMessage: userMessage,
		err:         internalError,
	}
}

func (e HttpError) Error() string {
	return e.err.Error()
}

func (e HttpError) StatusCode() int {
	return e.statusCode
}

func (e HttpError) UserMessage() string {
	return e.userMessage
}

func (e HttpError) WithField(name string, value string) HttpError {
	fields := make(map[string]string, len(e.fields)+1)
	for k, v := range e.fields {
		fields[k] = v
	}
	fields[name] = value
	e.fields = fields
	return e
}

func (e HttpError) WriteError(w http.ResponseWriter) error {
	payload := map[string]any{
		"ok":    false,
		"error": e.userMessage,
	}
	for k, v := range e.fields {
		payload[k] = v
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(e.statusCode)
	_, err = w.Write(body)
	return err
}
