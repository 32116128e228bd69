package tailscale_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"tailscale-relay-service/tailscale"
)

func TestStatusCommand(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cmd := tailscale.StatusCommand("tailscale")
	require.EqualValues("tailscale", cmd.Binary())
	require.EqualValues([]string{"status", "--json"}, cmd.Args())
	require.EqualValues("tailscale status --json", cmd.String())
}

func TestUpCommand(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cmd := tailscale.UpCommand("tailscale", "tskey-abc123", "https://headscale.example.com")
	require.EqualValues([]string{
		"up", "--auth-key", "tskey-abc123", "--reset", "--login-server", "https://headscale.example.com",
	}, cmd.Args())

	rendered := cmd.String()
	require.Contains(rendered, "--login-server https://headscale.example.com")
	require.Contains(rendered, "--auth-key <redacted>")
	require.NotContains(rendered, "tskey-abc123")
}

func TestUpCommandWithoutLoginServer(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cmd := tailscale.UpCommand("tailscale", "tskey-abc123", "")
	require.EqualValues([]string{"up", "--auth-key", "tskey-abc123", "--reset"}, cmd.Args())
	require.NotContains(cmd.String(), "--login-server")
}

func TestDownCommand(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cmd := tailscale.DownCommand("tailscale")
	require.EqualValues([]string{"down"}, cmd.Args())
	require.EqualValues("tailscale down", cmd.String())
}

func TestCommandStringQuotesUnsafeArgs(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cmd := tailscale.UpCommand("/opt/my tools/tailscale", "key", "https://x?a=1&b=2")
	require.Contains(cmd.String(), "'/opt/my tools/tailscale'")
	require.Contains(cmd.String(), "'https://x?a=1&b=2'")
}
