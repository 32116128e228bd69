package assembly

import (
	"net/http"

	"github.com/txix-open/isp-kit/log"
	"tailscale-relay-service/conf"
	"tailscale-relay-service/handler"
	"tailscale-relay-service/middleware"
	"tailscale-relay-service/routes"
)

type Locator struct {
	logger  log.Logger
	metrics *middleware.MetricStorage
	cfg     conf.Local
}

func NewLocator(logger log.Logger, metrics *middleware.MetricStorage, cfg conf.Local) Locator {
	return Locator{
		logger:  logger,
		metrics: metrics,
		cfg:     cfg,
	}
}

// Handler assembles the public surface: every route, the not-found
// fallback included, runs the same pipeline so authentication and
// observability are applied uniformly before dispatch.
func (l Locator) Handler(tailscaleCli handler.TailscaleClient) http.Handler {
	endpoints := handler.NewTailscale(tailscaleCli)
	return routes.Handler(l.cfg.BasePath, routes.Endpoints{
		Status:   l.entrypoint("status", middleware.HandlerFunc(endpoints.Status)),
		Login:    l.entrypoint("login", middleware.HandlerFunc(endpoints.Login)),
		Logout:   l.entrypoint("logout", middleware.HandlerFunc(endpoints.Logout)),
		NotFound: l.entrypoint("not_found", middleware.HandlerFunc(endpoints.NotFound)),
	})
}

func (l Locator) entrypoint(endpoint string, terminal middleware.Handler) http.Handler {
	chain := middleware.Chain(
		terminal,
		middleware.RequestId(),
		middleware.Metrics(l.metrics),
		middleware.Logger(l.logger, l.cfg.Logging.RequestLogEnable, l.cfg.Logging.BodyLogEnable),
		middleware.ErrorHandler(l.logger),
		middleware.Authenticate(l.cfg.Token),
	)
	return middleware.Entrypoint(
		l.cfg.MaxRequestBodySizeInMb*1024*1024, //nolint:gomnd
		chain,
		endpoint,
		l.logger,
	)
}
