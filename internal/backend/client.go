package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/loadmatrix/driverd/internal/config"
)

// APIError - ответ marketplace API со статусом вне 2xx
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend: status %d", e.StatusCode)
}

// Client - типизированный клиент marketplace API для роли водителя.
// Токен доступа выдается логином и подставляется в Authorization: Bearer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger

	mu    sync.RWMutex
	token string
	user  *UserInfo
}

// NewClient создает клиент marketplace API
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BackendURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.BackendTimeout,
		},
		logger: logger,
	}
}

// Login аутентифицирует водителя и сохраняет токен доступа в клиенте
func (c *Client) Login(ctx context.Context, email, password string) (*UserInfo, error) {
	var resp LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("backend: login failed: %w", err)
	}

	if resp.User.Role != "driver" {
		return nil, fmt.Errorf("backend: account role %q is not a driver", resp.User.Role)
	}

	c.mu.Lock()
	c.token = resp.Token
	user := resp.User
	c.user = &user
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"component": "backend",
		"driver_id": resp.User.DriverID,
	}).Info("Driver authenticated against marketplace API")
	return &user, nil
}

// User возвращает данные аутентифицированного водителя или nil
func (c *Client) User() *UserInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// TokenExpired сообщает, истек ли сохраненный токен доступа.
// Подпись не проверяется - секрет принадлежит backend, клиенту
// достаточно claim exp, чтобы вовремя переспросить логин.
func (c *Client) TokenExpired() bool {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token == "" {
		return true
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false // токен без exp считаем бессрочным
	}
	return time.Now().After(exp.Time)
}

// PushLocation отправляет координаты водителя.
// Значения lat/lng передаются как есть, без округления.
func (c *Client) PushLocation(ctx context.Context, lat, lng float64) error {
	var ack LocationAck
	err := c.doJSON(ctx, http.MethodPost, "/api/driver/location", map[string]float64{
		"lat": lat,
		"lng": lng,
	}, &ack)
	if err != nil {
		return fmt.Errorf("backend: could not push location: %w", err)
	}
	return nil
}

// GoOffline снимает водителя с линии
func (c *Client) GoOffline(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodPost, "/api/driver/offline", struct{}{}, nil); err != nil {
		return fmt.Errorf("backend: could not go offline: %w", err)
	}
	return nil
}

// AvailableOrders возвращает заказы из общей очереди
func (c *Client) AvailableOrders(ctx context.Context) ([]AvailableOrder, error) {
	var orders []AvailableOrder
	if err := c.doJSON(ctx, http.MethodGet, "/api/driver/orders/available", nil, &orders); err != nil {
		return nil, fmt.Errorf("backend: could not fetch available orders: %w", err)
	}
	return orders, nil
}

// MyOrders возвращает заказы, закрепленные за водителем
func (c *Client) MyOrders(ctx context.Context) ([]OrderSummary, error) {
	var orders []OrderSummary
	if err := c.doJSON(ctx, http.MethodGet, "/api/driver/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("backend: could not fetch orders: %w", err)
	}
	return orders, nil
}

// RequestedOrders возвращает заказы, ждущие решения водителя
func (c *Client) RequestedOrders(ctx context.Context, driverID int64) ([]RequestedOrder, error) {
	var orders []RequestedOrder
	path := fmt.Sprintf("/api/driver/orders/requested/%d", driverID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, fmt.Errorf("backend: could not fetch requested orders: %w", err)
	}
	return orders, nil
}

// AcceptOrder забирает заказ из общей очереди
func (c *Client) AcceptOrder(ctx context.Context, orderID int64) error {
	path := fmt.Sprintf("/api/driver/orders/%d/accept", orderID)
	if err := c.doJSON(ctx, http.MethodPost, path, struct{}{}, nil); err != nil {
		return fmt.Errorf("backend: could not accept order: %w", err)
	}
	return nil
}

// AcceptRequest подтверждает предложенный водителю заказ
func (c *Client) AcceptRequest(ctx context.Context, orderID int64) error {
	path := fmt.Sprintf("/api/driver/orders/%d/accept_request", orderID)
	if err := c.doJSON(ctx, http.MethodPost, path, struct{}{}, nil); err != nil {
		return fmt.Errorf("backend: could not accept order request: %w", err)
	}
	return nil
}

// RejectRequest возвращает предложенный заказ обратно в очередь
func (c *Client) RejectRequest(ctx context.Context, orderID int64) error {
	path := fmt.Sprintf("/api/driver/orders/%d/reject_request", orderID)
	if err := c.doJSON(ctx, http.MethodPost, path, struct{}{}, nil); err != nil {
		return fmt.Errorf("backend: could not reject order request: %w", err)
	}
	return nil
}

// UpdateOrderStatus двигает заказ по жизненному циклу доставки
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	path := fmt.Sprintf("/api/driver/orders/%d/status", orderID)
	if err := c.doJSON(ctx, http.MethodPost, path, map[string]string{"status": status}, nil); err != nil {
		return fmt.Errorf("backend: could not update order status: %w", err)
	}
	return nil
}

// Earnings возвращает сводку заработка водителя
func (c *Client) Earnings(ctx context.Context) (*EarningsSummary, error) {
	var summary EarningsSummary
	if err := c.doJSON(ctx, http.MethodGet, "/api/driver/earnings", nil, &summary); err != nil {
		return nil, fmt.Errorf("backend: could not fetch earnings: %w", err)
	}
	return &summary, nil
}

// Profile возвращает профиль водителя
func (c *Client) Profile(ctx context.Context) (*DriverProfile, error) {
	var profile DriverProfile
	if err := c.doJSON(ctx, http.MethodGet, "/api/driver/profile", nil, &profile); err != nil {
		return nil, fmt.Errorf("backend: could not fetch profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile обновляет профиль водителя
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	if err := c.doJSON(ctx, http.MethodPut, "/api/driver/profile", req, nil); err != nil {
		return fmt.Errorf("backend: could not update profile: %w", err)
	}
	return nil
}

// SendSupportMessage отправляет сообщение в чат поддержки
func (c *Client) SendSupportMessage(ctx context.Context, message string) error {
	if err := c.doJSON(ctx, http.MethodPost, "/api/driver/chat", map[string]string{"message": message}, nil); err != nil {
		return fmt.Errorf("backend: could not send support message: %w", err)
	}
	return nil
}

// doJSON выполняет запрос с JSON-телом и разбирает JSON-ответ в out.
// Статус вне 2xx превращается в *APIError с сообщением backend.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var failure struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil {
			apiErr.Message = failure.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
