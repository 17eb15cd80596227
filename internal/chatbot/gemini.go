package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"k9hope_backend/internal/config"
)

// Client generates an assistant reply for a user message. Implemented
// by the Gemini HTTP client in production and by fakes in tests.
type Client interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// SystemPrompt frames every model call as a canine transfusion
// assistant for the MVC Vepery clinic.
const SystemPrompt = `You are K9 Buddy, a clinical assistant for a canine blood donation platform run with MVC Vepery. Answer questions about canine blood donation, DEA blood groups, transfusion medicine, donor eligibility and post-donation care. Keep answers short, factual and kind. If a question is outside canine clinical care, politely decline and steer the user back to their dog's donation or treatment.`

// GeminiClient calls the Google Generative Language REST API.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(cfg config.ChatbotConfig) *GeminiClient {
	return &GeminiClient{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Configured reports whether an API key is present. Callers should
// return a service-unavailable error instead of calling when false.
func (c *GeminiClient) Configured() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: SystemPrompt}}},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("model error %d: %s", parsed.Error.Code, parsed.Error.Message)
		}
		return "", fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
