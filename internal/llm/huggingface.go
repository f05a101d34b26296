package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const huggingFaceBaseURL = "https://api-inference.huggingface.co/models"

// HuggingFaceProvider calls the Hugging Face Inference API text-generation
// task. The chat is flattened into a single prompt.
type HuggingFaceProvider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewHuggingFaceProvider creates a provider for the hosted Inference API.
func NewHuggingFaceProvider(apiKey string, model string) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		apiKey:  apiKey,
		model:   model,
		baseURL: huggingFaceBaseURL,
		client:  &http.Client{},
	}
}

func (p *HuggingFaceProvider) Name() string {
	return "huggingface"
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
	ReturnFullText bool    `json:"return_full_text"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

type hfError struct {
	Error string `json:"error"`
}

func (p *HuggingFaceProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	prompt := flattenPrompt(req.Messages)
	body, err := json.Marshal(hfRequest{
		Inputs: prompt,
		Parameters: hfParameters{
			MaxNewTokens: req.MaxTokens,
			Temperature:  req.Temperature,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling huggingface request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", strings.TrimRight(p.baseURL, "/"), model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("huggingface request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading huggingface response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr hfError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("huggingface returned status %d: %s", httpResp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("huggingface returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var generations []hfGeneration
	if err := json.Unmarshal(respBody, &generations); err != nil {
		return nil, fmt.Errorf("decoding huggingface response: %w", err)
	}
	if len(generations) == 0 {
		return nil, fmt.Errorf("huggingface returned no generations")
	}

	text := generations[0].GeneratedText
	return &CompletionResponse{
		Content:      text,
		InputTokens:  EstimateTokens(prompt),
		OutputTokens: EstimateTokens(text),
		Model:        model,
	}, nil
}

func flattenPrompt(msgs []Message) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, m.Content)
	}
	return strings.Join(parts, "\n\n")
}
