package conf

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
)

type Local struct {
	OuterAddress Address
	InnerAddress Address
	BasePath     string
	Token        string
	TokenFile    string
	Tailscale    Tailscale
	Logging      Logging

	MaxRequestBodySizeInMb int64
}

type Address struct {
	Host string
	Port int
}

func (a Address) GetAddress() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

type Tailscale struct {
	Binary             string
	StatusTimeoutInSec int
	LoginTimeoutInSec  int
	LogoutTimeoutInSec int
}

func (t Tailscale) StatusTimeout() time.Duration {
	return time.Duration(t.StatusTimeoutInSec) * time.Second
}

func (t Tailscale) LoginTimeout() time.Duration {
	return time.Duration(t.LoginTimeoutInSec) * time.Second
}

func (t Tailscale) LogoutTimeout() time.Duration {
	return time.Duration(t.LogoutTimeoutInSec) * time.Second
}

type Logging struct {
	LogLevel         string
	RequestLogEnable bool
	BodyLogEnable    bool
}

func (l Logging) Level() log.Level {
	switch strings.ToLower(l.LogLevel) {
	case "debug":
		return log.DebugLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

func (l Local) Validate() error {
	if l.OuterAddress.Port < 1 || l.OuterAddress.Port > 65535 {
		return errors.Errorf("outer address port must be in 1..65535, got %d", l.OuterAddress.Port)
	}
	if l.InnerAddress.Port < 0 || l.InnerAddress.Port > 65535 {
		return errors.Errorf("inner address port must be in 0..65535, got %d", l.InnerAddress.Port)
	}
	if strings.Trim(l.BasePath, "/") == "" {
		return errors.New("base path is required")
	}
	if l.Tailscale.Binary == "" {
		return errors.New("tailscale binary is required")
	}
	if l.Tailscale.StatusTimeoutInSec < 1 || l.Tailscale.LoginTimeoutInSec < 1 || l.Tailscale.LogoutTimeoutInSec < 1 {
		return errors.New("tailscale timeouts must be positive")
	}
	if l.MaxRequestBodySizeInMb < 1 {
		return errors.New("max request body size must be positive")
	}
	return nil
}

// InnerEnabled reports whether the ops surface (health, metrics) should
// be served. A zero port disables it.
func (l Local) InnerEnabled() bool {
	return l.InnerAddress.Port != 0
}
