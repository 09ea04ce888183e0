package hotelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./hotelapi.go -destination=./mocks/hotelapi_mock.go -package=mocks

const maxResponseBytes = 8 << 20

// Client talks to the remote data service that stores guests, rooms and bookings.
type Client interface {
	List(ctx context.Context, resource string, out any) error
	Create(ctx context.Context, resource string, body any) error
	Update(ctx context.Context, resource string, id int64, body any) error
	Delete(ctx context.Context, resource string, id int64) error
}

type client struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	return NewWithHTTPClient(cfg.Remote.BaseURL, &http.Client{
		Timeout: time.Duration(cfg.Remote.TimeoutSeconds) * time.Second,
	}, otel)
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client, otel otel.Otel) Client {
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		otel:    otel,
	}
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *client) List(ctx context.Context, resource string, out any) error {
	data, err := c.do(ctx, http.MethodGet, resource, nil)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", resource, err)
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		log.Error().Err(err).Str("resource", resource).Msg("failed to decode list envelope")

		return failure.Unavailable(fmt.Sprintf("invalid %s list response", resource)) //nolint:wrapcheck
	}

	collection, ok := envelope[constant.EnvelopeField]
	if !ok {
		log.Error().Str("resource", resource).Msg("list response has no envelope field")

		return failure.Unavailable(fmt.Sprintf("%s list response has no %q field", resource, constant.EnvelopeField)) //nolint:wrapcheck
	}

	if err := json.Unmarshal(collection, out); err != nil {
		log.Error().Err(err).Str("resource", resource).Msg("failed to decode collection")

		return failure.Unavailable(fmt.Sprintf("invalid %s collection: %v", resource, err)) //nolint:wrapcheck
	}

	return nil
}

func (c *client) Create(ctx context.Context, resource string, body any) error {
	if _, err := c.do(ctx, http.MethodPost, resource, body); err != nil {
		return fmt.Errorf("failed to create %s: %w", resource, err)
	}

	return nil
}

func (c *client) Update(ctx context.Context, resource string, id int64, body any) error {
	if _, err := c.do(ctx, http.MethodPut, resource+"/"+strconv.FormatInt(id, 10), body); err != nil {
		return fmt.Errorf("failed to update %s %d: %w", resource, id, err)
	}

	return nil
}

func (c *client) Delete(ctx context.Context, resource string, id int64) error {
	if _, err := c.do(ctx, http.MethodDelete, resource+"/"+strconv.FormatInt(id, 10), nil); err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", resource, id, err)
	}

	return nil
}

func (c *client) do(ctx context.Context, method, path string, body any) (data []byte, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+"."+method)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, failure.InternalError(fmt.Errorf("invalid remote url: %w", err)) //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		"http.method":                     method,
		"http.url":                        endpoint,
		constant.OtelResourceAttributeKey: path,
	})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, failure.InternalError(fmt.Errorf("failed to encode request body: %w", err)) //nolint:wrapcheck
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, failure.InternalError(err) //nolint:wrapcheck
	}

	request.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if body != nil {
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	response, err := c.http.Do(request)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("url", endpoint).Msg("remote service unreachable")

		return nil, failure.Unavailable(fmt.Sprintf("remote service unreachable: %v", err)) //nolint:wrapcheck
	}
	defer response.Body.Close()

	data, err = io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, failure.Unavailable(fmt.Sprintf("failed to read remote response: %v", err)) //nolint:wrapcheck
	}

	scope.SetAttribute("http.status_code", response.StatusCode)

	if response.StatusCode >= http.StatusBadRequest {
		var remote errorBody
		_ = json.Unmarshal(data, &remote)

		message := remote.Message
		if message == "" {
			message = remote.Error
		}

		log.Error().Int("status", response.StatusCode).Str("method", method).Str("url", endpoint).Str("message", message).Msg("remote service rejected request")

		return nil, failure.Remote(response.StatusCode, message) //nolint:wrapcheck
	}

	return data, nil
}
