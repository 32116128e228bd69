package assembly

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/txix-open/isp-kit/http"
	"github.com/txix-open/isp-kit/log"
	"tailscale-relay-service/conf"
	"tailscale-relay-service/middleware"
	"tailscale-relay-service/routes"
	"tailscale-relay-service/tailscale"
)

type Assembly struct {
	cfg      conf.Local
	logger   *log.Adapter
	outerSrv *http.Server
	innerSrv *http.Server
}

func New(cfg conf.Local, logger *log.Adapter) (*Assembly, error) {
	registry := prometheus.NewRegistry()
	metrics := middleware.NewMetricStorage(registry)

	tailscaleCli := tailscale.NewClient(tailscale.NewExecRunner(), tailscale.Config{
		Binary:        cfg.Tailscale.Binary,
		StatusTimeout: cfg.Tailscale.StatusTimeout(),
		LoginTimeout:  cfg.Tailscale.LoginTimeout(),
		LogoutTimeout: cfg.Tailscale.LogoutTimeout(),
	})

	locator := NewLocator(logger, metrics, cfg)

	outerSrv := http.NewServer(logger)
	outerSrv.Upgrade(locator.Handler(tailscaleCli))

	var innerSrv *http.Server
	if cfg.InnerEnabled() {
		innerSrv = http.NewServer(logger)
		innerSrv.Upgrade(routes.OpsHandler(registry))
	}

	return &Assembly{
		cfg:      cfg,
		logger:   logger,
		outerSrv: outerSrv,
		innerSrv: innerSrv,
	}, nil
}

// ListenAndServe blocks on the outer API server. The inner ops server,
// when enabled, runs alongside it; a failure there is fatal too since an
// operator relying on it would otherwise fly blind.
func (a *Assembly) ListenAndServe() error {
	errCh := make(chan error, 1)
	if a.innerSrv != nil {
		go func() {
			errCh <- a.innerSrv.ListenAndServe(a.cfg.InnerAddress.GetAddress())
		}()
	}

	go func() {
		errCh <- a.outerSrv.ListenAndServe(a.cfg.OuterAddress.GetAddress())
	}()

	err := <-errCh
	return errors.WithMessage(err, "listen and serve")
}

func (a *Assembly) Close() error {
	ctx := context.Background()
	if a.innerSrv != nil {
		err := a.innerSrv.Shutdown(ctx)
		if err != nil {
			a.logger.Error(ctx, errors.WithMessage(err, "shutdown inner server"))
		}
	}
	return a.outerSrv.Shutdown(ctx)
}
