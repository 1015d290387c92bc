package scan

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrScanNotFound = errors.New("scan not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// CREATE SCAN (scanned_items + receipt_items, ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) CreateScan(
	ctx context.Context,
	scan ScannedItemInsert,
	items []ReceiptItemInsert,
) (uuid.UUID, error) {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer tx.Rollback(ctx)

	scanID := uuid.New()

	_, err = tx.Exec(ctx, `
		INSERT INTO scanned_items
			(id, user_id, store_name, scan_date, subtotal, tax, total, co2_total, confidence)
		VALUES
			($1, $2, COALESCE($3, 'Unknown Store'), COALESCE($4::date, CURRENT_DATE),
			 $5, $6, COALESCE($7, 0), COALESCE($8, 0), COALESCE($9, 0))
	`,
		scanID,
		scan.UserID,
		scan.StoreName,
		scan.ScanDate,
		scan.Subtotal,
		scan.Tax,
		scan.Total,
		scan.CO2Total,
		scan.Confidence,
	)
	if err != nil {
		return uuid.Nil, err
	}

	for _, item := range items {
		_, err = tx.Exec(ctx, `
			INSERT INTO receipt_items
				(id, scanned_item_id, name, quantity, price, category, co2_estimate)
			VALUES
				($1, $2, COALESCE($3, ''), COALESCE($4, '1'),
				 COALESCE($5, 0), COALESCE($6, 'other'), COALESCE($7, 0))
		`,
			uuid.New(),
			scanID,
			item.Name,
			item.Quantity,
			item.Price,
			item.Category,
			item.CO2Estimate,
		)
		if err != nil {
			return uuid.Nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, err
	}

	return scanID, nil
}

// --------------------------------------------------
// GET SCAN WITH ITEMS
// --------------------------------------------------
func (r *PostgresRepository) GetScan(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	var receipt Receipt

	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, store_name, scan_date::text,
		       subtotal, tax, total, co2_total, confidence, created_at
		FROM scanned_items
		WHERE id = $1
	`, id).Scan(
		&receipt.ID,
		&receipt.UserID,
		&receipt.StoreName,
		&receipt.ScanDate,
		&receipt.Subtotal,
		&receipt.Tax,
		&receipt.Total,
		&receipt.CO2Total,
		&receipt.Confidence,
		&receipt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScanNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, scanned_item_id, name, quantity, price, category, co2_estimate
		FROM receipt_items
		WHERE scanned_item_id = $1
		ORDER BY id
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receipt.Items = []ReceiptItem{}
	for rows.Next() {
		var item ReceiptItem
		if err := rows.Scan(
			&item.ID,
			&item.ScannedItemID,
			&item.Name,
			&item.Quantity,
			&item.Price,
			&item.Category,
			&item.CO2Estimate,
		); err != nil {
			return nil, err
		}
		receipt.Items = append(receipt.Items, item)
	}

	return &receipt, rows.Err()
}

// --------------------------------------------------
// LIST SCANS (NEWEST FIRST)
// --------------------------------------------------
func (r *PostgresRepository) ListScans(
	ctx context.Context,
	userID *uuid.UUID,
) ([]ScannedItem, error) {

	query := `
		SELECT id, user_id, store_name, scan_date::text,
		       subtotal, tax, total, co2_total, confidence, created_at
		FROM scanned_items
	`
	args := []any{}
	if userID != nil {
		query += " WHERE user_id = $1"
		args = append(args, *userID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scans := []ScannedItem{}
	for rows.Next() {
		var s ScannedItem
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.StoreName,
			&s.ScanDate,
			&s.Subtotal,
			&s.Tax,
			&s.Total,
			&s.CO2Total,
			&s.Confidence,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		scans = append(scans, s)
	}

	return scans, rows.Err()
}

// --------------------------------------------------
// UPDATE SCAN (ALL FIELDS OPTIONAL)
// --------------------------------------------------
func (r *PostgresRepository) UpdateScan(
	ctx context.Context,
	id uuid.UUID,
	update ScannedItemUpdate,
) error {

	sets := []string{}
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if update.StoreName != nil {
		add("store_name", *update.StoreName)
	}
	if update.ScanDate != nil {
		add("scan_date", *update.ScanDate)
	}
	if update.Subtotal != nil {
		add("subtotal", *update.Subtotal)
	}
	if update.Tax != nil {
		add("tax", *update.Tax)
	}
	if update.Total != nil {
		add("total", *update.Total)
	}
	if update.CO2Total != nil {
		add("co2_total", *update.CO2Total)
	}
	if update.Confidence != nil {
		add("confidence", *update.Confidence)
	}

	if len(sets) == 0 {
		return nil
	}

	tag, err := r.db.Exec(ctx,
		"UPDATE scanned_items SET "+strings.Join(sets, ", ")+" WHERE id = $1",
		args...,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrScanNotFound
	}
	return nil
}

// --------------------------------------------------
// DELETE SCAN (receipt_items cascade)
// --------------------------------------------------
func (r *PostgresRepository) DeleteScan(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM scanned_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrScanNotFound
	}
	return nil
}
