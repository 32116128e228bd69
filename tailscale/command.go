package tailscale

import (
	"strings"
)

const redactedPlaceholder = "<redacted>"

// Command is one of the three fixed invocations of the tailscale client.
// Arguments are built from validated, already-trimmed fields only and are
// passed as an argument vector, never interpolated into a shell string.
type Command struct {
	binary   string
	args     []string
	redacted map[int]bool
}

func StatusCommand(binary string) Command {
	return Command{
		binary: binary,
		args:   []string{"status", "--json"},
	}
}

func UpCommand(binary string, authKey string, loginServer string) Command {
	cmd := Command{
		binary:   binary,
		args:     []string{"up", "--auth-key", authKey, "--reset"},
		redacted: map[int]bool{2: true},
	}
	if loginServer != "" {
		cmd.args = append(cmd.args, "--login-server", loginServer)
	}
	return cmd
}

func DownCommand(binary string) Command {
	return Command{
		binary: binary,
		args:   []string{"down"},
	}
}

func (c Command) Binary() string {
	return c.binary
}

func (c Command) Args() []string {
	return c.args
}

// String renders the command line for operator diagnostics. Secret
// argument values are replaced with a placeholder so they never appear
// in response bodies or logs.
func (c Command) String() string {
	parts := make([]string, 0, len(c.args)+1)
	parts = append(parts, quote(c.binary))
	for i, arg := range c.args {
		if c.redacted[i] {
			parts = append(parts, redactedPlaceholder)
			continue
		}
		parts = append(parts, quote(arg))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n\"'\\$&|;<>()*?#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
