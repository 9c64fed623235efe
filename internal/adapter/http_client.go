package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig holds the settings for the REST adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs a [ServerAdapter] speaking the REST API.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// envelope mirrors the server response wrapper with the payload left raw so
// each call site can decode its own data shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	auth, err := decodeAuthData(resp.Body())
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	token, err := bearerOrBodyToken(resp, auth)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	h.SetToken(token)
	return auth.User, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	auth, err := decodeAuthData(resp.Body())
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	token, err := bearerOrBodyToken(resp, auth)
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	h.SetToken(token)
	return auth.User, nil
}

func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/user/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return decodeProfileData(resp.Body())
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/user/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return decodeProfileData(resp.Body())
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeAuthData(body []byte) (models.AuthData, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.AuthData{}, fmt.Errorf("decode response envelope: %w", err)
	}

	var auth models.AuthData
	if err := json.Unmarshal(env.Data, &auth); err != nil {
		return models.AuthData{}, fmt.Errorf("decode auth data: %w", err)
	}

	return auth, nil
}

// bearerOrBodyToken picks the issued token: the Authorization response
// header is authoritative, the envelope payload mirrors it for clients that
// cannot read headers.
func bearerOrBodyToken(resp *resty.Response, auth models.AuthData) (string, error) {
	if token, err := utils.ParseBearerToken(resp.Header().Get("Authorization")); err == nil {
		return token, nil
	}
	if auth.Token == "" {
		return "", fmt.Errorf("server response carries no token")
	}
	return auth.Token, nil
}

func decodeProfileData(body []byte) (models.User, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.User{}, fmt.Errorf("decode response envelope: %w", err)
	}

	var profile models.ProfileData
	if err := json.Unmarshal(env.Data, &profile); err != nil {
		return models.User{}, fmt.Errorf("decode profile data: %w", err)
	}

	return profile.User, nil
}
