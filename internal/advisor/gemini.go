package advisor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"

	"resumeapi/internal/resume"
)

const (
	DefaultModel    = "gemini-2.5-flash"
	maxOutputTokens = 800
	temperature     = 0.7
)

// generator is the subset of *genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Config configures a Gemini advisor.
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Gemini is an Advisor backed by the Gemini API.
type Gemini struct {
	models  generator
	model   string
	timeout time.Duration
}

var _ Advisor = (*Gemini)(nil)

// NewGemini creates a Gemini client whose HTTP calls are traced with otelhttp.
func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return newGemini(client.Models, cfg), nil
}

func newGemini(models generator, cfg Config) *Gemini {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Gemini{models: models, model: model, timeout: cfg.Timeout}
}

// Advise sends the profile prompt and returns the formatted guidance.
func (g *Gemini) Advise(ctx context.Context, rec *resume.Record, suggestions []string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.models.GenerateContent(ctx, g.model,
		genai.Text(BuildPrompt(rec, suggestions)),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](temperature),
			MaxOutputTokens: maxOutputTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return FormatWithHeadings(text, guidanceTitle), nil
}
