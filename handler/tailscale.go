package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/json"
	"tailscale-relay-service/domain"
	"tailscale-relay-service/httperrors"
	"tailscale-relay-service/request"
	"tailscale-relay-service/tailscale"
)

type TailscaleClient interface {
	Status(ctx context.Context) (tailscale.Outcome, tailscale.Command)
	Up(ctx context.Context, authKey string, loginServer string) (tailscale.Outcome, tailscale.Command)
	Down(ctx context.Context) (tailscale.Outcome, tailscale.Command)
}

type Tailscale struct {
	client TailscaleClient
}

func NewTailscale(client TailscaleClient) Tailscale {
	return Tailscale{
		client: client,
	}
}

// Status reports the host's mesh membership state. A non-zero exit of the
// external tool maps to 502; its stdout failing to parse as JSON is not
// an error and degrades to a raw-text wrapper.
func (h Tailscale) Status(ctx *request.Context) error {
	outcome, _ := h.client.Status(ctx.Context())
	if !outcome.Success() {
		return httperrors.New(
			http.StatusBadGateway,
			"tailscale status failed",
			errors.Errorf("tailscale status: exit code %d", outcome.ExitCode),
		).WithField("stderr", outcome.Stderr)
	}

	var status any
	err := json.Unmarshal([]byte(outcome.Stdout), &status)
	if err != nil {
		status = domain.RawStatus{Raw: outcome.Stdout}
	}

	return writeJson(ctx.ResponseWriter(), http.StatusOK, domain.StatusResponse{
		Ok:     true,
		Status: status,
	})
}

// Login forces a fresh join using the supplied auth key. The key is
// validated before any invocation; the reported command line carries a
// redacted key.
func (h Tailscale) Login(ctx *request.Context) error {
	req, err := h.decodeLogin(ctx.Request())
	if err != nil {
		return err
	}

	authKey := strings.TrimSpace(req.AuthKey)
	if authKey == "" {
		return httperrors.New(
			http.StatusBadRequest,
			"authKey is required",
			errors.New("login: empty authKey"),
		)
	}

	outcome, cmd := h.client.Up(ctx.Context(), authKey, strings.TrimSpace(req.LoginServer))
	if !outcome.Success() {
		return httperrors.New(
			http.StatusBadGateway,
			"tailscale up failed",
			errors.Errorf("tailscale up: exit code %d", outcome.ExitCode),
		).WithField("stderr", outcome.Stderr).
			WithField("stdout", outcome.Stdout).
			WithField("command", cmd.String())
	}

	return writeJson(ctx.ResponseWriter(), http.StatusOK, domain.LoginResponse{
		Ok:      true,
		Message: "tailscale login requested",
		Stdout:  outcome.Stdout,
		Command: cmd.String(),
	})
}

// Logout brings the mesh interface down. The request body is ignored.
func (h Tailscale) Logout(ctx *request.Context) error {
	outcome, _ := h.client.Down(ctx.Context())
	if !outcome.Success() {
		return httperrors.New(
			http.StatusBadGateway,
			"tailscale down failed",
			errors.Errorf("tailscale down: exit code %d", outcome.ExitCode),
		).WithField("stderr", outcome.Stderr).
			WithField("stdout", outcome.Stdout)
	}

	return writeJson(ctx.ResponseWriter(), http.StatusOK, domain.LogoutResponse{
		Ok:      true,
		Message: "tailscale down completed",
		Stdout:  outcome.Stdout,
	})
}

func (h Tailscale) NotFound(ctx *request.Context) error {
	return httperrors.New(
		http.StatusNotFound,
		"not found",
		errors.Errorf("unknown endpoint %s %s", ctx.Request().Method, ctx.Request().URL.Path),
	)
}

func (h Tailscale) decodeLogin(r *http.Request) (domain.LoginRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return domain.LoginRequest{}, httperrors.New(
			http.StatusBadRequest,
			"invalid json",
			errors.WithMessage(err, "login: read request body"),
		)
	}

	// absent or empty body is treated as an empty object
	req := domain.LoginRequest{}
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	err = json.Unmarshal(body, &req)
	if err != nil {
		return domain.LoginRequest{}, httperrors.New(
			http.StatusBadRequest,
			"invalid json",
			errors.WithMessage(err, "login: unmarshal request body"),
		)
	}

	return req, nil
}
