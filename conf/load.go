package conf

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults mirror the expected latency of each tailscale operation:
// status is a local query, login waits for the control plane, logout
// only tears the interface down.
const (
	defaultBasePath      = "/api/tailscale"
	defaultPort          = 9080
	defaultStatusTimeout = 25
	defaultLoginTimeout  = 40
	defaultLogoutTimeout = 20
)

// Load builds the startup configuration from defaults, an optional YAML
// config file, environment variables and command-line flags, in
// ascending priority. The result is immutable for the process lifetime.
func Load(args []string) (Local, error) {
	flags := pflag.NewFlagSet("tailscale-relay-service", pflag.ContinueOnError)
	flags.String("host", "0.0.0.0", "bind host")
	flags.Int("port", defaultPort, "bind port")
	flags.String("base-path", defaultBasePath, "API base path")
	flags.String("token-file", "", "file containing the expected X-Relay-Token value")
	configPath := flags.String("config", "", "path to a config file")
	err := flags.Parse(args)
	if err != nil {
		return Local{}, errors.WithMessage(err, "parse flags")
	}

	v := viper.New()
	v.SetDefault("outerAddress.host", "0.0.0.0")
	v.SetDefault("outerAddress.port", defaultPort)
	v.SetDefault("innerAddress.host", "127.0.0.1")
	v.SetDefault("innerAddress.port", 0)
	v.SetDefault("basePath", defaultBasePath)
	v.SetDefault("tokenFile", "")
	v.SetDefault("tailscale.binary", "tailscale")
	v.SetDefault("tailscale.statusTimeoutInSec", defaultStatusTimeout)
	v.SetDefault("tailscale.loginTimeoutInSec", defaultLoginTimeout)
	v.SetDefault("tailscale.logoutTimeoutInSec", defaultLogoutTimeout)
	v.SetDefault("logging.logLevel", "info")
	v.SetDefault("logging.requestLogEnable", false)
	v.SetDefault("logging.bodyLogEnable", false)
	v.SetDefault("maxRequestBodySizeInMb", 1)

	_ = v.BindEnv("token", "RELAY_API_TOKEN")
	_ = v.BindEnv("tokenFile", "RELAY_API_TOKEN_FILE")
	_ = v.BindEnv("outerAddress.host", "RELAY_API_HOST")
	_ = v.BindEnv("outerAddress.port", "RELAY_API_PORT")
	_ = v.BindEnv("basePath", "RELAY_API_BASE_PATH")
	_ = v.BindEnv("tailscale.binary", "RELAY_API_TAILSCALE_BINARY")
	_ = v.BindEnv("logging.logLevel", "RELAY_API_LOG_LEVEL")

	_ = v.BindPFlag("outerAddress.host", flags.Lookup("host"))
	_ = v.BindPFlag("outerAddress.port", flags.Lookup("port"))
	_ = v.BindPFlag("basePath", flags.Lookup("base-path"))
	_ = v.BindPFlag("tokenFile", flags.Lookup("token-file"))

	if *configPath != "" {
		v.SetConfigFile(*configPath)
		err = v.ReadInConfig()
		if err != nil {
			return Local{}, errors.WithMessage(err, "read config file")
		}
	}

	cfg := Local{}
	err = v.Unmarshal(&cfg)
	if err != nil {
		return Local{}, errors.WithMessage(err, "unmarshal config")
	}

	cfg.Token = strings.TrimSpace(v.GetString("token"))
	if cfg.TokenFile != "" {
		raw, err := os.ReadFile(cfg.TokenFile)
		if err != nil {
			return Local{}, errors.WithMessage(err, "read token file")
		}
		cfg.Token = strings.TrimSpace(string(raw))
	}

	err = cfg.Validate()
	if err != nil {
		return Local{}, errors.WithMessage(err, "validate config")
	}

	return cfg, nil
}
