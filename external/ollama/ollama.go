package ollama

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultURL   = "http://localhost:11434"
	defaultModel = "gemma3:4b"
	generatePath = "/api/generate"
)

type LLM interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollama struct {
	http  *resty.Client
	model string
}

// Generate runs a single non-streaming completion
func (o *ollama) Generate(ctx context.Context, prompt string) (string, error) {
	var result generateResponse
	resp, err := o.http.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Model:  o.model,
			Prompt: prompt,
			Stream: false,
		}).
		SetResult(&result).
		Post(generatePath)
	if err != nil {
		return "", err
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("ollama generate failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	return result.Response, nil
}

func New(url, model string, timeout time.Duration) LLM {
	u := defaultURL
	if url != "" {
		u = url
	}

	m := defaultModel
	if model != "" {
		m = model
	}

	return &ollama{
		http: resty.New().
			SetBaseURL(u).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		model: m,
	}
}
