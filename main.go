package main

import (
	"context"
	nethttp "net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/txix-open/isp-kit/log"
	"github.com/txix-open/isp-kit/shutdown"
	"tailscale-relay-service/assembly"
	"tailscale-relay-service/conf"
	"tailscale-relay-service/routes"
)

func main() {
	_ = godotenv.Load()

	logger, err := log.New(log.WithLevel(log.InfoLevel))
	if err != nil {
		panic(err)
	}
	ctx := context.Background()

	cfg, err := conf.Load(os.Args[1:])
	if err != nil {
		logger.Fatal(ctx, errors.WithMessage(err, "load config"))
	}
	logger.SetLevel(cfg.Logging.Level())

	asm, err := assembly.New(cfg, logger)
	if err != nil {
		logger.Fatal(ctx, errors.WithMessage(err, "create assembly"))
	}

	shutdown.On(func() {
		logger.Info(ctx, "starting shutdown")
		err := asm.Close()
		if err != nil {
			logger.Error(ctx, errors.WithMessage(err, "close assembly"))
		}
		logger.Info(ctx, "shutdown completed")
	})

	logger.Info(ctx, "listening",
		log.String("outerAddress", cfg.OuterAddress.GetAddress()),
		log.String("basePath", routes.NormalizeBasePath(cfg.BasePath)),
	)
	err = asm.ListenAndServe()
	if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		logger.Fatal(ctx, err)
	}
}
