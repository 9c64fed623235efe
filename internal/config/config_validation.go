package config

import (
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/utils"
)

// Defaults applied by validate when the merged configuration leaves a field
// unset. Hard requirements (DSN, sign key) are checked where the value is
// first used, so that the client binary can share this loader without
// carrying server-only settings.
const (
	defaultTokenIssuer    = "account-keeper"
	defaultTokenDuration  = 24 * time.Hour
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
)

// validate normalises the final merged [StructuredConfig]: zero-valued
// fields with sensible defaults are filled in. It never rejects a config.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = utils.DefaultBcryptCost
	}
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = defaultRequestTimeout
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
