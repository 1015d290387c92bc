package llm

import (
	"context"
	"testing"
)

func TestGeminiClient_MissingCredential(t *testing.T) {
	// No key configured: the client must refuse before any network call.
	client := NewGeminiClient("", "gemini-1.5-flash")

	_, err := client.ExtractReceipt(context.Background(), "data:image/jpeg;base64,AAAA")
	if err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestGeminiClient_MissingModel(t *testing.T) {
	client := NewGeminiClient("key", "")

	_, err := client.ExtractReceipt(context.Background(), "data:image/jpeg;base64,AAAA")
	if err == nil {
		t.Fatal("expected error for missing model")
	}
}

func TestGeminiClient_EmptyImage(t *testing.T) {
	client := NewGeminiClient("key", "gemini-1.5-flash")

	_, err := client.ExtractReceipt(context.Background(), "")
	if err == nil {
		t.Fatal("expected error for empty image data")
	}
}
