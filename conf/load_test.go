package conf_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"tailscale-relay-service/conf"
)

func TestLoadDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := conf.Load(nil)
	require.NoError(err)

	require.EqualValues("0.0.0.0:9080", cfg.OuterAddress.GetAddress())
	require.EqualValues("/api/tailscale", cfg.BasePath)
	require.EqualValues("tailscale", cfg.Tailscale.Binary)
	require.EqualValues(25*time.Second, cfg.Tailscale.StatusTimeout())
	require.EqualValues(40*time.Second, cfg.Tailscale.LoginTimeout())
	require.EqualValues(20*time.Second, cfg.Tailscale.LogoutTimeout())
	require.EqualValues("", cfg.Token)
	require.False(cfg.InnerEnabled())
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	require := require.New(t)

	cfg, err := conf.Load([]string{"--host", "127.0.0.1", "--port", "8088", "--base-path", "relay/"})
	require.NoError(err)

	require.EqualValues("127.0.0.1:8088", cfg.OuterAddress.GetAddress())
	require.EqualValues("relay/", cfg.BasePath)
}

func TestLoadTokenFromEnv(t *testing.T) {
	require := require.New(t)
	t.Setenv("RELAY_API_TOKEN", "  secret-token \n")

	cfg, err := conf.Load(nil)
	require.NoError(err)
	require.EqualValues("secret-token", cfg.Token)
}

func TestLoadTokenFileWinsOverEnv(t *testing.T) {
	require := require.New(t)
	t.Setenv("RELAY_API_TOKEN", "env-token")

	tokenFile := filepath.Join(t.TempDir(), "token")
	err := os.WriteFile(tokenFile, []byte("file-token\n"), 0o600)
	require.NoError(err)

	cfg, err := conf.Load([]string{"--token-file", tokenFile})
	require.NoError(err)
	require.EqualValues("file-token", cfg.Token)
}

func TestLoadMissingTokenFile(t *testing.T) {
	require := require.New(t)

	_, err := conf.Load([]string{"--token-file", filepath.Join(t.TempDir(), "no-such-file")})
	require.Error(err)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	for _, port := range []string{"0", "65536", "-1"} {
		_, err := conf.Load([]string{"--port", port})
		require.Error(t, err, "port %s", port)
	}
}

func TestValidate(t *testing.T) {
	require := require.New(t)

	cfg, err := conf.Load(nil)
	require.NoError(err)

	cfg.Tailscale.LoginTimeoutInSec = 0
	require.Error(cfg.Validate())

	cfg, err = conf.Load(nil)
	require.NoError(err)
	cfg.BasePath = "///"
	require.Error(cfg.Validate())
}
