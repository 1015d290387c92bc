package scan

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the row-based CRUD operations for scans.
type Repository interface {

	// Insert a scanned item and its receipt items atomically.
	CreateScan(
		ctx context.Context,
		scan ScannedItemInsert,
		items []ReceiptItemInsert,
	) (uuid.UUID, error)

	GetScan(ctx context.Context, id uuid.UUID) (*Receipt, error)

	// ListScans returns scans newest first; userID nil lists all.
	ListScans(ctx context.Context, userID *uuid.UUID) ([]ScannedItem, error)

	UpdateScan(ctx context.Context, id uuid.UUID, update ScannedItemUpdate) error

	DeleteScan(ctx context.Context, id uuid.UUID) error
}
