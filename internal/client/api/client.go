package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/routesync/internal/metrics"
	"github.com/iudanet/routesync/pkg/api"
)

// Authenticator добавляет учетные данные к исходящему запросу.
type Authenticator interface {
	Authenticate(req *http.Request) error
}

// Client HTTP клиент upstream API. Все попытки, включая повторы,
// проходят через общий Throttle.
type Client struct {
	httpClient  *http.Client
	throttle    *Throttle
	auth        Authenticator
	logger      *slog.Logger
	baseURL     string
	retry       RetryConfig
	concurrency int
}

// Option настраивает Client.
type Option func(*Client)

// WithAuthenticator задает учетные данные.
func WithAuthenticator(a Authenticator) Option {
	return func(c *Client) {
		c.auth = a
	}
}

// WithRetry задает политику повторов на 429.
func WithRetry(r RetryConfig) Option {
	return func(c *Client) {
		c.retry = r
	}
}

// WithHTTPClient подменяет http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger задает логгер.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithConcurrency ограничивает число параллельных загрузок в FetchActivityMaps.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// NewClient создает новый API клиент. Если throttle nil, используется DefaultThrottle.
func NewClient(baseURL string, throttle *Throttle, opts ...Option) *Client {
	if throttle == nil {
		throttle = DefaultThrottle()
	}
	c := &Client{
		baseURL:     baseURL,
		throttle:    throttle,
		retry:       DefaultRetryConfig(),
		logger:      slog.Default(),
		concurrency: 8,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequest выполняет GET запрос с учетом ограничителя и повторов на 429.
// endpoint используется только как метка метрик.
func (c *Client) doRequest(ctx context.Context, endpoint, path string, result any) error {
	url := c.baseURL + path

	for attempt := 0; ; attempt++ {
		if err := c.throttle.Wait(ctx); err != nil {
			return fmt.Errorf("throttle wait: %w", err)
		}

		status, header, err := c.do(ctx, url, result)
		metrics.RequestsTotal.WithLabelValues(endpoint, statusLabel(status)).Inc()
		if err == nil {
			return nil
		}

		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusTooManyRequests {
			return err
		}
		if attempt >= c.retry.MaxRetries {
			c.logger.Warn("Rate limited, giving up",
				"endpoint", endpoint,
				"attempts", attempt+1)
			return err
		}

		delay := c.retry.retryDelay(attempt, header, c.throttle.clock.Now())
		metrics.RetriesTotal.WithLabelValues(endpoint).Inc()
		c.logger.Warn("Rate limited, retrying",
			"endpoint", endpoint,
			"attempt", attempt+1,
			"delay", delay)

		if err := c.throttle.clock.Sleep(ctx, delay); err != nil {
			return fmt.Errorf("retry backoff: %w", err)
		}
	}
}

// do выполняет одну попытку. Возвращает статус и заголовки ответа для решения о повторе.
func (c *Client) do(ctx context.Context, url string, result any) (int, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if c.auth != nil {
		if err := c.auth.Authenticate(req); err != nil {
			return 0, nil, fmt.Errorf("failed to authenticate request: %w", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, resp.Header, fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && (errResp.Message != "" || errResp.Error != "") {
			httpErr.Message = errResp.Message
			if httpErr.Message == "" {
				httpErr.Message = errResp.Error
			}
		} else {
			httpErr.Message = string(respBody)
		}
		return resp.StatusCode, resp.Header, httpErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return resp.StatusCode, resp.Header, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp.StatusCode, resp.Header, nil
}

func statusLabel(status int) string {
	if status == 0 {
		return "error"
	}
	return strconv.Itoa(status)
}
