package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"agroflow/internal/entities"
	retrierconfig "agroflow/pkg/retrier"
	"agroflow/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "identity-service"

	resolvePath = "/v1/identity/resolve"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// IdentityGateway разрешает bearer-учётку во внешнем Identity Service.
// Ответ принимается дословно: никакой собственной валидации учётных данных.
type IdentityGateway struct {
	client  httpClient
	baseURL string
	retrier retrier
}

type resolveResponse struct {
	ActorID string `json:"actorId"`
	Role    string `json:"role"`
}

func New(client httpClient, baseURL string) *IdentityGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &IdentityGateway{
		client:  client,
		baseURL: baseURL,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *IdentityGateway) Resolve(ctx context.Context, token string) (*entities.Actor, error) {
	var resp resolveResponse

	err := g.executeWithMetrics(ctx, "Resolve", func(ctx context.Context) error {
		return g.doResolve(ctx, token, &resp)
	})
	if err != nil {
		if errors.Is(err, ErrUnauthenticated) {
			return nil, err
		}
		return nil, fmt.Errorf("gateway identity, resolve: %w", errors.Join(ErrUnavailable, err))
	}

	return &entities.Actor{
		ID:   resp.ActorID,
		Role: entities.RoleType(resp.Role),
	}, nil
}

func (g *IdentityGateway) doResolve(ctx context.Context, token string, out *resolveResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+resolvePath, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.client.Do(req)
	if err != nil {
		return &transportError{err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthenticated
	default:
		return &statusError{code: resp.StatusCode}
	}
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("identity service status %d", e.code)
}

type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("identity service transport: %v", e.err)
}

func (e *transportError) Unwrap() error {
	return e.err
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var tErr *transportError
	if errors.As(err, &tErr) {
		return true
	}

	var sErr *statusError
	if errors.As(err, &sErr) {
		switch sErr.code {
		case http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
			http.StatusInternalServerError:
			return true
		default:
			return false
		}
	}

	return false
}

func (g *IdentityGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := getStatusCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}

func getStatusCode(err error) string {
	if err == nil {
		return "200"
	}

	var sErr *statusError
	if errors.As(err, &sErr) {
		return strconv.Itoa(sErr.code)
	}
	if errors.Is(err, ErrUnauthenticated) {
		return "401"
	}
	return "transport"
}
