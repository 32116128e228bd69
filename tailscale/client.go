package tailscale

import (
	"context"
	"time"
)

type Config struct {
	Binary        string
	StatusTimeout time.Duration
	LoginTimeout  time.Duration
	LogoutTimeout time.Duration
}

// Client binds a runner to the binary and the per-operation timeouts.
// Concurrent calls are deliberately not serialized; the tailscale daemon
// owns the host's membership state and its own concurrency handling.
type Client struct {
	runner Runner
	cfg    Config
}

func NewClient(runner Runner, cfg Config) Client {
	return Client{
		runner: runner,
		cfg:    cfg,
	}
}

func (c Client) Status(ctx context.Context) (Outcome, Command) {
	cmd := StatusCommand(c.cfg.Binary)
	return c.runner.Run(ctx, cmd, c.cfg.StatusTimeout), cmd
}

func (c Client) Up(ctx context.Context, authKey string, loginServer string) (Outcome, Command) {
	cmd := UpCommand(c.cfg.Binary, authKey, loginServer)
	return c.runner.Run(ctx, cmd, c.cfg.LoginTimeout), cmd
}

func (c Client) Down(ctx context.Context) (Outcome, Command) {
	cmd := DownCommand(c.cfg.Binary)
	return c.runner.Run(ctx, cmd, c.cfg.LogoutTimeout), cmd
}
