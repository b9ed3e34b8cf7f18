package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"catalog-api/internal/routes"
	"catalog-api/internal/storage"
)

func serve(ctx context.Context, _ *cli.Command) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	content, err := storage.NewContentStore(afero.NewOsFs(), a.cfg.Upload.Dir)
	if err != nil {
		a.log.Error("could not prepare upload directory", zap.String("dir", a.cfg.Upload.Dir), zap.Error(err))
		return err
	}

	if !a.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.NewRouter(routes.Dependencies{
		Config:     a.cfg,
		Logger:     a.log,
		Products:   a.products,
		Categories: a.categories,
		Blogs:      a.blogs,
		Images:     a.images,
		Content:    content,
	})

	srv := &http.Server{
		Addr:              ":" + a.cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		a.log.Error("server stopped with error", zap.Error(err))
		return err
	}
	a.log.Info("server stopped")
	return nil
}
