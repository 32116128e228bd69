package middleware

import (
	"net/http"

	"github.com/pkg/errors"
	"tailscale-relay-service/httperrors"
	"tailscale-relay-service/request"
)

const (
	relayTokenHeader = "X-Relay-Token"
)

// Authenticate compares the caller-supplied relay token against the
// configured shared secret. An empty secret disables the check entirely.
// The comparison is a plain byte-for-byte equality; no timing-attack
// mitigation is attempted for this trusted-LAN surface.
func Authenticate(secret string) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			if secret == "" {
				ctx.Authenticate()
				return next.Handle(ctx)
			}

			token := ctx.Request().Header.Get(relayTokenHeader)
			if token != secret {
				return httperrors.New(
					http.StatusUnauthorized,
					"unauthorized",
					errors.New("authenticate: relay token mismatch"),
				)
			}
			ctx.Authenticate()

			return next.Handle(ctx)
		})
	}
}
