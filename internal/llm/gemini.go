package llm

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
)

type GeminiClient struct {
	apiKey string
	model  string
	http   *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey: apiKey,
		model:  model,
		http:   &http.Client{Timeout: 60 * time.Second},
	}
}

// ExtractReceipt sends the receipt image to Gemini and returns the raw
// JSON text of the model's reply. One call, no retries.
func (g *GeminiClient) ExtractReceipt(ctx context.Context, imageData string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing gemini api key")
	}
	if g.model == "" {
		return "", errors.New("missing gemini model")
	}
	if imageData == "" {
		return "", errors.New("empty image data")
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model,
		g.apiKey,
	)

	parts := []map[string]any{
		{"text": ReceiptExtractionPrompt},
		{"text": extractionInstruction},
	}

	if mime, data, ok := splitDataURL(imageData); ok {
		parts = append(parts, map[string]any{
			"inline_data": map[string]string{
				"mime_type": mime,
				"data":      data,
			},
		})
	} else {
		// Plain URL: hand it to the model as text.
		parts = append(parts, map[string]any{"text": imageData})
	}

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":     0.1,
			"maxOutputTokens": 2048,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error: %s", string(raw))
	}

	// Gemini response shape
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}

	return extractJSON(result.Candidates[0].Content.Parts[0].Text), nil
}

// splitDataURL splits "data:image/jpeg;base64,..." into mime type and payload.
func splitDataURL(s string) (mime, data string, ok bool) {
	if !strings.HasPrefix(s, "data:") {
		return "", "", false
	}
	comma := strings.Index(s, ",")
	if comma == -1 {
		return "", "", false
	}
	meta := strings.TrimPrefix(s[:comma], "data:")
	mime = strings.TrimSuffix(meta, ";base64")
	if mime == "" {
		mime = "image/jpeg"
	}
	return mime, s[comma+1:], true
}

// extractJSON strips markdown fences and anything outside the outermost
// braces. Models wrap their JSON despite the prompt saying not to.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return text
	}

	return text[start : end+1]
}
