package httperrors_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/txix-open/isp-kit/json"
	"tailscale-relay-service/httperrors"
)

func TestWriteError(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	httpErr := httperrors.New(http.StatusBadGateway, "tailscale up failed", errors.New("exit code 1")).
		WithField("stderr", "boom").
		WithField("command", "tailscale up")

	rec := httptest.NewRecorder()
	err := httpErr.WriteError(rec)
	require.NoError(err)

	require.EqualValues(http.StatusBadGateway, rec.Code)
	require.EqualValues("application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.EqualValues(strconv.Itoa(rec.Body.Len()), rec.Header().Get("Content-Length"))

	payload := map[string]any{}
	err = json.Unmarshal(rec.Body.Bytes(), &payload)
	require.NoError(err)
	require.EqualValues(false, payload["ok"])
	require.EqualValues("tailscale up failed", payload["error"])
	require.EqualValues("boom", payload["stderr"])
	require.EqualValues("tailscale up", payload["command"])
}

func TestWithFieldCopies(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	base := httperrors.New(http.StatusNotFound, "not found", errors.New("unknown endpoint"))
	withField := base.WithField("stderr", "boom")

	rec := httptest.NewRecorder()
	err := base.WriteError(rec)
	require.NoError(err)

	payload := map[string]any{}
	err = json.Unmarshal(rec.Body.Bytes(), &payload)
	require.NoError(err)
	require.NotContains(payload, "stderr")

	require.EqualValues("unknown endpoint", withField.Error())
	require.EqualValues(http.StatusNotFound, withField.StatusCode())
}
