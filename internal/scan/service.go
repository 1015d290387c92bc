package scan

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/RajvardhanAdhav/carbonsnap-sub001/internal/carbon"
	"github.com/RajvardhanAdhav/carbonsnap-sub001/internal/llm"
)

var ErrUnparseableReply = errors.New("model reply is not valid JSON")

type Service struct {
	repo   Repository
	client llm.Client
	carbon carbon.Repository
}

func NewService(repo Repository, client llm.Client, carbonRepo carbon.Repository) *Service {
	return &Service{repo: repo, client: client, carbon: carbonRepo}
}

// --------------------------------------------------
// PARSE RECEIPT (ONE LLM CALL, NO RETRIES)
// --------------------------------------------------
func (s *Service) ParseReceipt(
	ctx context.Context,
	imageData string,
) (llm.ParsedReceipt, error) {

	reply, err := s.client.ExtractReceipt(ctx, imageData)
	if err != nil {
		return llm.ParsedReceipt{}, err
	}

	var raw any
	if err := json.Unmarshal([]byte(reply), &raw); err != nil {
		log.Printf("receipt extraction returned malformed JSON: %v", err)
		return llm.ParsedReceipt{}, ErrUnparseableReply
	}

	parsed, dropped := llm.NormalizeReceipt(raw)
	if dropped > 0 {
		log.Printf("receipt normalization dropped %d invalid items", dropped)
	}

	return parsed, nil
}

// --------------------------------------------------
// SAVE PARSED RECEIPT (scanned_items + receipt_items)
// --------------------------------------------------
func (s *Service) SaveReceipt(
	ctx context.Context,
	userID *uuid.UUID,
	parsed llm.ParsedReceipt,
) (*Receipt, error) {

	categories, err := s.carbon.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	factors := carbon.FactorsFrom(categories)

	co2Total := 0.0
	items := make([]ReceiptItemInsert, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		item := item
		co2 := factors.Estimate(item.Category, item.Price)
		co2Total += co2
		items = append(items, ReceiptItemInsert{
			Name:        &item.Name,
			Quantity:    &item.Quantity,
			Price:       &item.Price,
			Category:    &item.Category,
			CO2Estimate: &co2,
		})
	}

	insert := ScannedItemInsert{
		UserID:     userID,
		StoreName:  &parsed.StoreName,
		ScanDate:   &parsed.Date,
		Subtotal:   parsed.Subtotal,
		Tax:        parsed.Tax,
		Total:      &parsed.Total,
		CO2Total:   &co2Total,
		Confidence: &parsed.Confidence,
	}

	scanID, err := s.repo.CreateScan(ctx, insert, items)
	if err != nil {
		return nil, err
	}

	return s.repo.GetScan(ctx, scanID)
}

func (s *Service) GetReceipt(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	return s.repo.GetScan(ctx, id)
}

func (s *Service) ListReceipts(ctx context.Context, userID *uuid.UUID) ([]ScannedItem, error) {
	return s.repo.ListScans(ctx, userID)
}
