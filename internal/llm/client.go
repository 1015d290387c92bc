package llm

import (
	"context"
)

type Client interface {
	ExtractReceipt(ctx context.Context, imageData string) (string, error)
}
