package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"jobtracker/internal/app/client/config"
	"jobtracker/internal/domain/event"
	"jobtracker/internal/domain/user"
)

// Client — HTTP-клиент админского API трекера.
type Client struct {
	client     *http.Client
	log        *slog.Logger
	baseURL    string
	adminToken string
	userAgent  string
}

func New(cfg *config.Config, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		log:        log,
		baseURL:    cfg.ServerURL,
		adminToken: cfg.AdminToken,
		userAgent:  "Tracker-Admin/1.0",
	}
}

type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type loginRequest struct {
	Name     string `json:"name"`
	Pin      string `json:"pin"`
	Location string `json:"location,omitempty"`
}

type setUserRequest struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Pin      string `json:"pin,omitempty"`
}

type eventsResponse struct {
	Events []event.Event `json:"events"`
}

// HealthCheck проверяет доступность сервера
func (c *Client) HealthCheck(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return c.do(ctx, http.MethodGet, "/api/health", nil, false, &out)
}

func (c *Client) Login(ctx context.Context, name, pin, location string) (user.Profile, error) {
	var profile user.Profile
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		loginRequest{Name: name, Pin: pin, Location: location}, false, &profile)
	return profile, err
}

func (c *Client) Users(ctx context.Context) (user.Overview, error) {
	var overview user.Overview
	err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, true, &overview)
	return overview, err
}

func (c *Client) SetUser(ctx context.Context, name, location, pin string) (user.Profile, error) {
	var profile user.Profile
	err := c.do(ctx, http.MethodPost, "/api/admin/users",
		setUserRequest{Name: name, Location: location, Pin: pin}, true, &profile)
	return profile, err
}

func (c *Client) DeleteUser(ctx context.Context, name string) error {
	path := "/api/admin/users?name=" + url.QueryEscape(name)
	return c.do(ctx, http.MethodDelete, path, nil, true, nil)
}

func (c *Client) Events(ctx context.Context, limit int64) ([]event.Event, error) {
	path := "/api/admin/events"
	if limit > 0 {
		path += "?limit=" + strconv.FormatInt(limit, 10)
	}
	var out eventsResponse
	err := c.do(ctx, http.MethodGet, path, nil, true, &out)
	return out.Events, err
}

func (c *Client) ClearEvents(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return c.do(ctx, http.MethodDelete, "/api/admin/events/clear", nil, true, &out)
}

func (c *Client) do(ctx context.Context, method, path string, body any, admin bool, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("ошибка кодирования запроса: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("X-Admin-Token", c.adminToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("сервер вернул %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ошибка разбора ответа: %w", err)
	}
	return nil
}
