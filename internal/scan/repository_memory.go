package scan

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs handler and service tests.
type InMemoryRepository struct {
	mu    sync.Mutex
	scans map[uuid.UUID]*Receipt
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		scans: make(map[uuid.UUID]*Receipt),
	}
}

func (r *InMemoryRepository) CreateScan(
	_ context.Context,
	scan ScannedItemInsert,
	items []ReceiptItemInsert,
) (uuid.UUID, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	scanID := uuid.New()

	receipt := &Receipt{
		ScannedItem: ScannedItem{
			ID:        scanID,
			UserID:    scan.UserID,
			StoreName: "Unknown Store",
			ScanDate:  time.Now().Format("2006-01-02"),
			Subtotal:  scan.Subtotal,
			Tax:       scan.Tax,
			CreatedAt: time.Now(),
		},
		Items: []ReceiptItem{},
	}

	if scan.StoreName != nil {
		receipt.StoreName = *scan.StoreName
	}
	if scan.ScanDate != nil {
		receipt.ScanDate = *scan.ScanDate
	}
	if scan.Total != nil {
		receipt.Total = *scan.Total
	}
	if scan.CO2Total != nil {
		receipt.CO2Total = *scan.CO2Total
	}
	if scan.Confidence != nil {
		receipt.Confidence = *scan.Confidence
	}

	for _, item := range items {
		row := ReceiptItem{
			ID:            uuid.New(),
			ScannedItemID: scanID,
			Quantity:      "1",
			Category:      "other",
		}
		if item.Name != nil {
			row.Name = *item.Name
		}
		if item.Quantity != nil {
			row.Quantity = *item.Quantity
		}
		if item.Price != nil {
			row.Price = *item.Price
		}
		if item.Category != nil {
			row.Category = *item.Category
		}
		if item.CO2Estimate != nil {
			row.CO2Estimate = *item.CO2Estimate
		}
		receipt.Items = append(receipt.Items, row)
	}

	r.scans[scanID] = receipt
	return scanID, nil
}

func (r *InMemoryRepository) GetScan(_ context.Context, id uuid.UUID) (*Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	receipt, ok := r.scans[id]
	if !ok {
		return nil, ErrScanNotFound
	}

	copied := *receipt
	copied.Items = append([]ReceiptItem{}, receipt.Items...)
	return &copied, nil
}

func (r *InMemoryRepository) ListScans(_ context.Context, userID *uuid.UUID) ([]ScannedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	scans := []ScannedItem{}
	for _, receipt := range r.scans {
		if userID != nil && (receipt.UserID == nil || *receipt.UserID != *userID) {
			continue
		}
		scans = append(scans, receipt.ScannedItem)
	}

	sort.Slice(scans, func(i, j int) bool {
		return scans[i].CreatedAt.After(scans[j].CreatedAt)
	})

	return scans, nil
}

func (r *InMemoryRepository) UpdateScan(_ context.Context, id uuid.UUID, update ScannedItemUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	receipt, ok := r.scans[id]
	if !ok {
		return ErrScanNotFound
	}

	if update.StoreName != nil {
		receipt.StoreName = *update.StoreName
	}
	if update.ScanDate != nil {
		receipt.ScanDate = *update.ScanDate
	}
	if update.Subtotal != nil {
		receipt.Subtotal = update.Subtotal
	}
	if update.Tax != nil {
		receipt.Tax = update.Tax
	}
	if update.Total != nil {
		receipt.Total = *update.Total
	}
	if update.CO2Total != nil {
		receipt.CO2Total = *update.CO2Total
	}
	if update.Confidence != nil {
		receipt.Confidence = *update.Confidence
	}

	return nil
}

func (r *InMemoryRepository) DeleteScan(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scans[id]; !ok {
		return ErrScanNotFound
	}
	delete(r.scans, id)
	return nil
}
