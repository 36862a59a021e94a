package geoloc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/loadmatrix/driverd/internal/models"
)

// BridgeProvider запрашивает позицию у локального моста устройства
// (обертки над системной геолокацией, которую поднимает UI-оболочка).
// Один запрос моста соответствует одному getCurrentPosition устройства.
type BridgeProvider struct {
	baseURL    string
	httpClient *http.Client
}

// bridgePosition - тело успешного ответа моста
type bridgePosition struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	CapturedAt int64   `json:"captured_at"`
}

// bridgeFailure - тело ответа моста при отказе
type bridgeFailure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewBridgeProvider создает провайдер позиции поверх моста устройства
func NewBridgeProvider(baseURL string) *BridgeProvider {
	return &BridgeProvider{
		baseURL: baseURL,
		// Таймаут задается на каждый запрос через контекст,
		// клиент остается без собственного таймаута
		httpClient: &http.Client{},
	}
}

// Current выполняет одиночный запрос позиции с параметрами пробы
func (p *BridgeProvider) Current(ctx context.Context, opts ProbeOptions) (*models.LocationSample, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	q := url.Values{}
	q.Set("highAccuracy", strconv.FormatBool(opts.HighAccuracy))
	q.Set("maximumAge", strconv.FormatInt(opts.MaxFixAge.Milliseconds(), 10))

	reqURL := fmt.Sprintf("%s/position?%s", p.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, NewProbeError(CodePositionUnavailable, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		// Истекший дедлайн пробы считаем таймаутом измерения,
		// остальные транспортные ошибки - недоступностью позиции
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, NewProbeError(CodeTimeout, err)
		}
		return nil, NewProbeError(CodePositionUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, p.failureFromResponse(resp)
	}

	var pos bridgePosition
	if err := json.NewDecoder(resp.Body).Decode(&pos); err != nil {
		return nil, NewProbeError(CodePositionUnavailable, fmt.Errorf("decode bridge response: %w", err))
	}

	return &models.LocationSample{
		Lat:        pos.Lat,
		Lng:        pos.Lng,
		CapturedAt: pos.CapturedAt,
	}, nil
}

// failureFromResponse мапит ответ моста на таксономию ошибок пробы
func (p *BridgeProvider) failureFromResponse(resp *http.Response) error {
	var failure bridgeFailure
	if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil {
		switch failure.Code {
		case string(CodePermissionDenied):
			return NewProbeError(CodePermissionDenied, errors.New(failure.Message))
		case string(CodeTimeout):
			return NewProbeError(CodeTimeout, errors.New(failure.Message))
		case string(CodePositionUnavailable):
			return NewProbeError(CodePositionUnavailable, errors.New(failure.Message))
		}
	}

	// Мост без тела ошибки: 403 трактуем как отзыв разрешения
	if resp.StatusCode == http.StatusForbidden {
		return NewProbeError(CodePermissionDenied, fmt.Errorf("bridge returned status %d", resp.StatusCode))
	}
	return NewProbeError(CodePositionUnavailable, fmt.Errorf("bridge returned status %d", resp.StatusCode))
}
