package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-protocol-catalog/internal/config"
	"github.com/MKhiriev/go-protocol-catalog/internal/logger"
	"github.com/MKhiriev/go-protocol-catalog/internal/utils"
	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter returns the REST implementation of [ServerAdapter].
// cfg.ServerAddress must name a host; a missing scheme defaults to http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, err
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		tokens: tokens,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyServerAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidServerAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidServerAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Username: username, Password: password}).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	// a 401 here means bad credentials, not an expired session
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) ListProtocols(ctx context.Context) ([]models.Protocol, error) {
	var protocols []models.Protocol

	resp, err := h.authedRequest(ctx).
		SetResult(&protocols).
		Get("/protocols")
	if err != nil {
		return nil, fmt.Errorf("list protocols request: %w", err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return nil, err
	}

	return protocols, nil
}

func (h *httpServerAdapter) CreateProtocol(ctx context.Context, protocol models.Protocol) (int64, error) {
	var created models.CreatedResponse

	resp, err := h.authedRequest(ctx).
		SetBody(protocol).
		SetResult(&created).
		Post("/protocols")
	if err != nil {
		return 0, fmt.Errorf("create protocol request: %w", err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return 0, err
	}

	return created.ID, nil
}

func (h *httpServerAdapter) DeleteProtocol(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/protocols/{id}")
	if err != nil {
		return fmt.Errorf("delete protocol request: %w", err)
	}

	return h.checkResponse(ctx, resp)
}

func (h *httpServerAdapter) ExportProtocols(ctx context.Context) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "*/*").
		Get("/protocols/export")
	if err != nil {
		return nil, fmt.Errorf("export protocols request: %w", err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.NewUser) (int64, error) {
	var created models.CreatedResponse

	resp, err := h.authedRequest(ctx).
		SetBody(user).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return 0, fmt.Errorf("create user request: %w", err)
	}
	if err = h.checkResponse(ctx, resp); err != nil {
		return 0, err
	}

	return created.ID, nil
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(update).
		Put("/users/{id}")
	if err != nil {
		return fmt.Errorf("update user request: %w", err)
	}

	return h.checkResponse(ctx, resp)
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/users/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return h.checkResponse(ctx, resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.tokens.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// checkResponse maps the status and drops the local session on 401.
func (h *httpServerAdapter) checkResponse(ctx context.Context, resp *resty.Response) error {
	err := mapHTTPError(resp)
	if !errors.Is(err, ErrUnauthorized) {
		return err
	}

	h.logger.Info().Str("func", "httpServerAdapter.checkResponse").
		Str("url", resp.Request.URL).
		Msg("server rejected the session token, clearing local session")

	if clearErr := h.tokens.Clear(ctx); clearErr != nil {
		h.logger.Err(clearErr).Str("func", "httpServerAdapter.checkResponse").Msg("error clearing local session")
	}
	return err
}
