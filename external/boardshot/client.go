package boardshot

import (
	"context"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"

	"github.com/pitchside/league-stats/internal/platform/id"
	"github.com/pitchside/league-stats/internal/platform/logging"
	"github.com/pitchside/league-stats/internal/platform/resilience"
	"github.com/pitchside/league-stats/internal/usecase"
)

// Client renders standings tables through the boardshot image service. It
// implements usecase.StandingsImageRenderer.
type Client struct {
	httpClient     *fasthttp.Client
	baseURL        string
	token          string
	timeout        time.Duration
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	ids            id.Generator
}

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	IDGenerator    id.Generator
}

const renderStandingsPath = "/v1/render/standings"

var errBoardshotTransient = crerr.New("boardshot transient failure")

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = id.NewRandomGenerator()
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
		ids:            ids,
	}
}

func (c *Client) RenderStandings(ctx context.Context, payload usecase.ExportPayload) ([]byte, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: boardshot base url is not configured", usecase.ErrDependencyUnavailable)
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "boardshot circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: image renderer is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode render payload: %w", err)
	}

	image, err := c.executeRequest(ctx, c.baseURL+renderStandingsPath, body)
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errBoardshotTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return nil, err
	}

	return image, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string, body []byte) ([]byte, error) {
	requestID, err := c.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate request id: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		image, reqErr := c.doOnce(fullURL, requestID, body)
		if reqErr == nil {
			return image, nil
		}
		lastErr = reqErr
		if !crerr.Is(reqErr, errBoardshotTransient) {
			return nil, reqErr
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "boardshot request failed",
		"url", fullURL,
		"request_id", requestID,
		"error", lastErr,
	)
	return nil, lastErr
}

func (c *Client) doOnce(fullURL, requestID string, body []byte) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "image/png")
	req.Header.Set("X-Request-ID", requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.SetBody(body)

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, crerr.Wrapf(errBoardshotTransient, "send request: %v", err)
	}

	status := resp.StatusCode()
	if status >= 200 && status < 300 {
		// The response buffers are recycled on release.
		image := append([]byte(nil), resp.Body()...)
		if len(image) == 0 {
			return nil, fmt.Errorf("renderer returned an empty image")
		}
		return image, nil
	}

	if isRetryableStatus(status) {
		return nil, crerr.Wrapf(errBoardshotTransient, "renderer status=%d", status)
	}
	return nil, fmt.Errorf("renderer status=%d body=%s", status, abbreviateBody(resp.Body()))
}

func isRetryableStatus(status int) bool {
	if status == fasthttp.StatusTooManyRequests {
		return true
	}
	return status >= 500
}

func abbreviateBody(body []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(body))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}
