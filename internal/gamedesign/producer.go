package gamedesign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Producer turns a free-text game description into a design document.
// Implementations may fail; callers are expected to degrade to the
// FallbackProducer so project creation never blocks on the generator.
type Producer interface {
	Generate(ctx context.Context, prompt string, category Category) (*DesignDocument, error)
}

const producerTimeout = 60 * time.Second

// HTTPProducer calls an external design-generation service.
type HTTPProducer struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProducer creates a producer backed by the generation service at
// baseURL.
func NewHTTPProducer(baseURL string) *HTTPProducer {
	return &HTTPProducer{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: producerTimeout,
		},
	}
}

type generateRequest struct {
	Prompt   string `json:"prompt"`
	Category string `json:"category"`
}

// Generate posts the prompt to the generation service and decodes the
// returned document. The document is not coerced here; callers run Coerce at
// the boundary so a partially-filled response is still usable.
func (p *HTTPProducer) Generate(ctx context.Context, prompt string, category Category) (*DesignDocument, error) {
	payload, err := json.Marshal(generateRequest{Prompt: prompt, Category: string(category)})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	reqURL := p.baseURL + "/v1/designs/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("producer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("producer returned status %d", resp.StatusCode)
	}

	var doc DesignDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode design document: %w", err)
	}

	return &doc, nil
}
