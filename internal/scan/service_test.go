package scan

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/RajvardhanAdhav/carbonsnap-sub001/internal/carbon"
	"github.com/RajvardhanAdhav/carbonsnap-sub001/internal/llm"
)

func TestService_ParseReceipt_DropsInvalidItems(t *testing.T) {
	client := &fakeLLMClient{reply: `{
		"storeName": "Lidl",
		"items": [
			{"name": "Bread", "price": 2.0},
			{"name": "Freebie", "price": 0},
			{"price": 3.0}
		]
	}`}
	service := NewService(NewInMemoryRepository(), client, carbon.NewInMemoryRepository())

	parsed, err := service.ParseReceipt(context.Background(), "data:image/jpeg;base64,AAAA")
	if err != nil {
		t.Fatal(err)
	}

	if len(parsed.Items) != 1 || parsed.Items[0].Name != "Bread" {
		t.Fatalf("expected only the valid item, got %+v", parsed.Items)
	}
	if parsed.Total != 2 {
		t.Fatalf("expected total recomputed from items, got %v", parsed.Total)
	}
}

func TestService_ListReceipts_FiltersByUser(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, &fakeLLMClient{}, carbon.NewInMemoryRepository())

	alice := uuid.New()
	bob := uuid.New()

	for _, user := range []uuid.UUID{alice, alice, bob} {
		user := user
		if _, err := service.SaveReceipt(context.Background(), &user, llm.ParsedReceipt{
			StoreName: "Rewe",
			Date:      "2024-06-01",
			Items:     []llm.ReceiptItem{{Name: "Milk", Quantity: "1", Price: 1.5, Category: "food"}},
			Total:     1.5,
		}); err != nil {
			t.Fatal(err)
		}
	}

	scans, err := service.ListReceipts(context.Background(), &alice)
	if err != nil {
		t.Fatal(err)
	}
	if len(scans) != 2 {
		t.Fatalf("expected 2 scans for alice, got %d", len(scans))
	}

	all, err := service.ListReceipts(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 scans total, got %d", len(all))
	}
}
