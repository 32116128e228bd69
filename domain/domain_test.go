package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/txix-open/isp-kit/json"
	"tailscale-relay-service/domain"
)

func TestLoginResponseRoundTrip(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	original := domain.LoginResponse{
		Ok:      true,
		Message: "tailscale login requested",
		Stdout:  "Success.",
		Command: "tailscale up --auth-key <redacted> --reset",
	}
	data, err := json.Marshal(original)
	require.NoError(err)

	decoded := domain.LoginResponse{}
	err = json.Unmarshal(data, &decoded)
	require.NoError(err)
	require.EqualValues(original, decoded)
}

func TestStatusResponseRoundTrip(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	original := domain.StatusResponse{
		Ok:     true,
		Status: map[string]any{"BackendState": "Running"},
	}
	data, err := json.Marshal(original)
	require.NoError(err)

	decoded := domain.StatusResponse{}
	err = json.Unmarshal(data, &decoded)
	require.NoError(err)
	require.EqualValues(original.Ok, decoded.Ok)
	require.EqualValues(original.Status, decoded.Status)
}

func TestLoginRequestIgnoresUnknownFields(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	req := domain.LoginRequest{}
	err := json.Unmarshal([]byte(`{"authKey":"key","extra":42}`), &req)
	require.NoError(err)
	require.EqualValues("key", req.AuthKey)
	require.EqualValues("", req.LoginServer)
}
