package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"docflow/internal/config"
	"docflow/internal/logger"
	"docflow/internal/model"
)

// ErrNoCredential is returned internally when no API key is configured.
var ErrNoCredential = errors.New("suggest: no api key configured")

// Client asks an Ollama-compatible /api/generate endpoint for a category.
// It makes a single attempt per call; a circuit breaker stops calling an
// upstream that keeps failing.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[string]
	log        *zap.Logger
}

// NewClient builds a Client from cfg. A zero TimeoutSec leaves the transport
// default in place.
func NewClient(cfg config.SuggestConfig, log *zap.Logger) *Client {
	log = logger.OrNop(log).With(zap.String("component", "suggest"))

	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	if cfg.TimeoutSec > 0 {
		httpClient.Timeout = time.Duration(cfg.TimeoutSec) * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "category_suggestion",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit_breaker_state_change",
				zap.String("name", name), zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})

	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		model:      cfg.Model,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: httpClient,
		breaker:    breaker,
		log:        log,
	}
}

// Suggest returns the category named by the upstream reply. Without an API
// key it returns immediately without any request.
func (c *Client) Suggest(ctx context.Context, title, description string) (model.Category, bool) {
	reply, err := c.generate(ctx, buildCategoryPrompt(title, description))
	if err != nil {
		if !errors.Is(err, ErrNoCredential) {
			c.log.Warn("category_suggestion_failed", zap.Error(err))
		}
		return "", false
	}

	cat, ok := model.ParseCategory(strings.TrimSpace(reply))
	if !ok {
		c.log.Debug("category_suggestion_unrecognized", zap.String("reply", reply))
		return "", false
	}
	return cat, true
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoCredential
	}
	return c.breaker.Execute(func() (string, error) {
		var response struct {
			Response string `json:"response"`
		}
		req := map[string]any{
			"model":  c.model,
			"prompt": prompt,
			"stream": false,
		}
		if err := c.postJSON(ctx, "/api/generate", req, &response); err != nil {
			return "", err
		}
		return response.Response, nil
	})
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("generate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("generate status: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
