package app

import (
	"context"
	"errors"
	"fmt"
	"lucky_dice/internal/config"
	"lucky_dice/internal/console"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// Run запускает консольную игру и, если задан HTTP_ADDRESS, status API рядом с ней
func (s *App) Run() (err error) {
	envErr := config.Load(".env")
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	// провайдер паникует на ошибках конфигурации
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	log := s.ServiceProvider.Logger()
	if envErr != nil {
		log.Info("error loading .env file", zap.Error(envErr))
	}

	ctx := context.Background()

	// Поднимаем хранилище до первого вопроса игроку
	s.ServiceProvider.LedgerRepository(ctx)
	s.ServiceProvider.TXManager(ctx)

	var srv *http.Server
	if httpCfg := s.ServiceProvider.HTTPCfg(); httpCfg.Enabled() {
		srv = &http.Server{
			Addr:              httpCfg.Address(),
			Handler:           s.ServiceProvider.Router(ctx),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("starting status server", zap.String("address", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("status server stopped", zap.Error(err))
			}
		}()
	}

	c := console.New(os.Stdin, os.Stdout, s.ServiceProvider.NewGame, log.Named("console"))
	runErr := c.Run(ctx)

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("status server shutdown", zap.Error(err))
		}
	}

	return runErr
}
