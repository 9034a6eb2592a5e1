package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-car-keeper/internal/logger"
	"github.com/MKhiriev/go-car-keeper/internal/utils"
	"github.com/MKhiriev/go-car-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// address may omit the scheme, in which case http is assumed. A positive
// timeout bounds every request.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
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

func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// Login implements [ServerAdapter]. The server answers with the raw token as
// a text body.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := strings.TrimSpace(resp.String())
	if token == "" {
		return "", ErrEmptyToken
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", credentials.Username).Msg("logged in")
	return token, nil
}

func (h *httpServerAdapter) Hello(ctx context.Context) (string, error) {
	return h.getText(ctx, "/auth/hello")
}

func (h *httpServerAdapter) Home(ctx context.Context) (string, error) {
	return h.getText(ctx, "/main")
}

// GetAllCars implements [ServerAdapter]. A 204 answer means there are no
// cars.
func (h *httpServerAdapter) GetAllCars(ctx context.Context) ([]models.Car, error) {
	resp, err := h.authedRequest(ctx).Get("/main/getAllCars")
	if err != nil {
		return nil, fmt.Errorf("get all cars request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	cars := []models.Car{}
	if resp.StatusCode() == http.StatusNoContent {
		return cars, nil
	}
	if err = json.Unmarshal(resp.Body(), &cars); err != nil {
		return nil, fmt.Errorf("decode cars response: %w", err)
	}

	return cars, nil
}

func (h *httpServerAdapter) GetCarByID(ctx context.Context, id int64) (models.Car, error) {
	var car models.Car

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&car).
		Get("/main/getCarById/{id}")
	if err != nil {
		return models.Car{}, fmt.Errorf("get car request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Car{}, err
	}

	return car, nil
}

func (h *httpServerAdapter) AddCars(ctx context.Context, cars []models.Car) ([]models.Car, error) {
	var saved []models.Car

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(cars).
		SetResult(&saved).
		Post("/main/addCars")
	if err != nil {
		return nil, fmt.Errorf("add cars request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return saved, nil
}

// UpdateCar implements [ServerAdapter]. update.ID goes into the path; only
// the non-nil fields are sent.
func (h *httpServerAdapter) UpdateCar(ctx context.Context, update models.CarUpdate) (models.Car, error) {
	var car models.Car

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(update.ID, 10)).
		SetBody(update).
		SetResult(&car).
		Post("/main/updatePersonById/{id}")
	if err != nil {
		return models.Car{}, fmt.Errorf("update car request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Car{}, err
	}

	return car, nil
}

func (h *httpServerAdapter) DeleteCar(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/main/deletePersonById/{id}")
	if err != nil {
		return fmt.Errorf("delete car request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) getText(ctx context.Context, path string) (string, error) {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return "", fmt.Errorf("get %s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
