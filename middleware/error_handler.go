package middleware

import (
	"net/http"

	"github.com/txix-open/isp-kit/log"
	"tailscale-relay-service/httperrors"
	"tailscale-relay-service/request"
)

type HttpError interface {
	WriteError(w http.ResponseWriter) error
}

// ErrorHandler converts errors returned by the chain into well-formed
// JSON responses. Callers can always safely parse the body.
func ErrorHandler(logger log.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			err := next.Handle(ctx)
			if err == nil {
				return nil
			}

			logger.Error(ctx.Context(), err)

			httpErr, ok := err.(HttpError)
			if ok {
				return httpErr.WriteError(ctx.ResponseWriter())
			}

			return httperrors.
				New(http.StatusInternalServerError, "internal service error", err).
				WriteError(ctx.ResponseWriter())
		})
	}
}
