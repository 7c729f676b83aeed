package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/fortranov/neoastrology/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с backend платформы
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя и возвращает токен с профилем
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthToken, error) {
	var resp api.AuthToken
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp, "Registration failed")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthToken, error) {
	var resp api.AuthToken
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp, "Login failed")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCurrentUser возвращает профиль пользователя по bearer токену
func (c *Client) GetCurrentUser(ctx context.Context, token string) (*api.User, error) {
	var resp api.User
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/auth/me", token, nil, &resp, "Failed to fetch user")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCharts возвращает все натальные карты текущего пользователя
func (c *Client) ListCharts(ctx context.Context, token string) ([]api.NatalChart, error) {
	var resp []api.NatalChart
	err := c.doRequest(ctx, http.MethodGet, "/api/v1/charts", token, nil, &resp, "Failed to load charts")
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateChart создает новую натальную карту.
// Расчет планет, домов и аспектов выполняет backend.
func (c *Client) CreateChart(ctx context.Context, token string, req api.NatalChartCreate) (*api.NatalChart, error) {
	var resp api.NatalChart
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/charts", token, req, &resp, "Failed to create natal chart")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetChart возвращает натальную карту по ID вместе с chart_data,
// interpretation_text и svg_chart
func (c *Client) GetChart(ctx context.Context, token, chartID string) (*api.NatalChart, error) {
	var resp api.NatalChart
	path := "/api/v1/charts/" + url.PathEscape(chartID)
	err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp, "Failed to load chart")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteChart удаляет натальную карту по ID
func (c *Client) DeleteChart(ctx context.Context, token, chartID string) error {
	path := "/api/v1/charts/" + url.PathEscape(chartID)
	return c.doRequest(ctx, http.MethodDelete, path, token, nil, nil, "Failed to delete chart")
}

// GetDailyHoroscope возвращает гороскоп для знака зодиака на дату.
// Пустая date означает сегодняшний день (решает backend).
func (c *Client) GetDailyHoroscope(ctx context.Context, token, sign, date string) (*api.Horoscope, error) {
	q := url.Values{}
	q.Set("sign", sign)
	if date != "" {
		q.Set("date", date)
	}
	var resp api.Horoscope
	path := "/api/v1/horoscopes/daily?" + q.Encode()
	err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp, "Failed to load horoscope")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAllSignsHoroscopes возвращает дневные гороскопы для всех знаков
func (c *Client) GetAllSignsHoroscopes(ctx context.Context, token, date string) ([]api.Horoscope, error) {
	path := "/api/v1/horoscopes/all-signs"
	if date != "" {
		q := url.Values{}
		q.Set("date", date)
		path += "?" + q.Encode()
	}
	var resp []api.Horoscope
	err := c.doRequest(ctx, http.MethodGet, path, token, nil, &resp, "Failed to load horoscopes")
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// doRequest выполняет HTTP запрос и классифицирует ошибки по ErrorKind.
// Непустой token добавляется как bearer Authorization заголовок.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any, fallback string) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Fallback: fallback, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Fallback: fallback, Err: err}
	}

	// Не-2xx: пытаемся достать структурированный detail,
	// иначе остается только generic fallback сообщение
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{
			Kind:       KindServerRejection,
			StatusCode: resp.StatusCode,
			Fallback:   fallback,
		}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			apiErr.Detail = errResp.Detail
		}
		return apiErr
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &Error{Kind: KindMalformedResponse, Fallback: fallback, Err: err}
		}
	}

	return nil
}
