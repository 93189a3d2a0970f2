package main

import (
	"context"
	"fmt"
	"github.com/KeivinIsmaili/cashcard/internal/auth"
	"github.com/KeivinIsmaili/cashcard/internal/config"
	"github.com/KeivinIsmaili/cashcard/internal/ctrl"
	hdl "github.com/KeivinIsmaili/cashcard/internal/hdl/http"
	"github.com/KeivinIsmaili/cashcard/internal/observability/metrics/prometheus"
	"github.com/KeivinIsmaili/cashcard/internal/observability/tracing/jaeger"
	"github.com/KeivinIsmaili/cashcard/internal/repo/db"
	"github.com/KeivinIsmaili/cashcard/internal/repo/memory"
	"go.uber.org/zap"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const configPath = "configs/local.config.yaml"

type repository interface {
	ctrl.AppRepo
	Close() error
}

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func newRepo(conf *config.DBConfig) repository {
	if conf.Backend == "mem" {
		return memory.New()
	}
	return db.New(conf)
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = configPath
	}

	conf := config.MustLoad(path)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)

	tracer, err := jaeger.Start(conf.ServiceName, conf.Jaeger)
	if err != nil {
		zap.L().Warn("Failed to start tracer", zap.Error(err))
	}

	au, err := auth.New(conf.Auth)
	if err != nil {
		zap.L().Fatal("failed to build credential verifier", zap.Error(err))
	}

	repo := newRepo(conf.DB)
	svc := ctrl.New(repo)
	h := hdl.New(au, svc, conf.Auth.Realm)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
		zap.String("backend", conf.DB.Backend),
	)
	go h.Start(conf.Server.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	sctx, scancel := context.WithTimeout(ctx, 10*time.Second)
	defer scancel()

	if err = h.Close(sctx); err != nil {
		zap.L().Warn("Error closing handler", zap.Error(err))
	}

	if err = repo.Close(); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	if tracer != nil {
		if err = tracer.Close(); err != nil {
			zap.L().Warn("Error closing tracer", zap.Error(err))
		}
	}
}
