package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/tui"
	"github.com/MKhiriev/go-account-keeper/models"
)

// App is the terminal client application. It satisfies [Client].
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp assembles the client from configuration: local session store, HTTP
// server adapter, client services, and the terminal UI.
func NewApp(buildInfo models.AppBuildInfo) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("error during config init: %w", err)
	}

	log := logger.NewClientLogger("account-keeper-client")

	localStore, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error during local storage init: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.ServerURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	services := service.NewClientServices(localStore, serverAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("error during tui init: %w", err)
	}

	return &App{services: services, tui: ui, logger: log}, nil
}

// Run restores the saved session when present, otherwise walks the user
// through the login flow, then enters the profile screen. A logout restarts
// the cycle from the login flow.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrNotLoggedIn) {
			return fmt.Errorf("restore session: %w", err)
		}

		session, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	a.logger.Info().Int64("user_id", session.UserID).Msg("session is active")

	logout, err := a.tui.MainLoop(ctx, session)
	if err != nil {
		return err
	}
	if logout {
		return a.Run()
	}

	return nil
}
