package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/josephkirk/Auto-Talent-Evaluation/common/logger"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "gemma3:12b-it-qat"

	generatePath = "/api/generate"
	tagsPath     = "/api/tags"

	temperature     = 0.7
	topP            = 0.9
	maxOutputTokens = 2048

	// maxResponseBytes caps how much of a response body is read.
	maxResponseBytes = 8 << 20
)

// Client generates text from a prompt with a local Ollama service.
type Client interface {
	// Generate makes exactly one non-streaming request and returns the
	// generated text verbatim. It blocks until the service answers or ctx ends.
	Generate(ctx context.Context, prompt string) (string, error)
	// Healthy reports whether the service answers its model listing.
	Healthy(ctx context.Context) bool
	Model() string
}

type Config struct {
	BaseURL string
	Model   string
	// Timeout applies to each HTTP exchange when HTTPClient is nil. Zero
	// means no client-side limit.
	Timeout    time.Duration
	HTTPClient *http.Client
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type client struct {
	http       *http.Client
	baseURL    string
	model      string
	generateAt string
	tagsAt     string
}

func New(cfg Config) (Client, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must use http or https", baseURL)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &client{
		http:       httpClient,
		baseURL:    baseURL,
		model:      model,
		generateAt: baseURL + generatePath,
		tagsAt:     baseURL + tagsPath,
	}, nil
}

func (c *client) Model() string {
	return c.model
}

func (c *client) Generate(ctx context.Context, prompt string) (string, error) {
	sc := logger.StartSpan(ctx, "llm.generate", trace.WithSpanKind(trace.SpanKindClient))
	defer sc.End()
	ctx = sc.Context()
	sc.Span().SetAttributes(
		attribute.String("llm.model", c.model),
		attribute.Int("llm.prompt_bytes", len(prompt)),
	)

	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: temperature,
			TopP:        topP,
			NumPredict:  maxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.generateAt, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		genErr := c.unavailable(err)
		sc.RecordError(genErr)
		slog.ErrorContext(ctx, "generation service unreachable",
			"error", err,
			"model", c.model,
			"base_url", c.baseURL,
			"duration_ms", time.Since(start).Milliseconds())
		return "", genErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		genErr := c.failed(resp, nil)
		genErr.Detail = readErrorDetail(resp.Body)
		sc.RecordError(genErr)
		slog.ErrorContext(ctx, "generation service returned an error",
			"status_code", resp.StatusCode,
			"detail", genErr.Detail,
			"model", c.model,
			"duration_ms", time.Since(start).Milliseconds())
		return "", genErr
	}

	var out generateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		genErr := c.failed(resp, fmt.Errorf("decoding generate response: %w", err))
		sc.RecordError(genErr)
		slog.ErrorContext(ctx, "generation response undecodable", "error", err, "model", c.model)
		return "", genErr
	}

	sc.Span().SetAttributes(
		attribute.Int("llm.prompt_tokens", out.PromptEvalCount),
		attribute.Int("llm.completion_tokens", out.EvalCount),
	)
	slog.DebugContext(ctx, "generation completed",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", out.PromptEvalCount,
		"completion_tokens", out.EvalCount,
		"done", out.Done)

	return out.Response, nil
}

func (c *client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tagsAt, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.DebugContext(ctx, "generation service health probe failed", "error", err, "base_url", c.baseURL)
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

func (c *client) unavailable(err error) *Error {
	return &Error{
		Kind:    ErrServiceUnavailable,
		BaseURL: c.baseURL,
		Model:   c.model,
		Err:     err,
	}
}

func (c *client) failed(resp *http.Response, err error) *Error {
	return &Error{
		Kind:       ErrGenerationFailed,
		BaseURL:    c.baseURL,
		Model:      c.model,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Err:        err,
	}
}

// readErrorDetail extracts {"error": "..."} from an error body, if present.
func readErrorDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var body errorResponse
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return logger.Truncate(strings.TrimSpace(string(data)), 200)
}
