package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elavarasan-maker/RETAILIQO/internal/catalog"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo persists orders keyed by id, foreign-keyed to the merchant mobile.
// Line items travel as a JSON document; the hosted schema does not split them
// into a child table.
type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Create(ctx context.Context, o Order, merchantMobile string) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = r.DB.Exec(ctx, `
		INSERT INTO orders(id, merchant_mobile, date, items, total, status, tracking_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID, merchantMobile, o.Date, items, o.Total, string(o.Status), o.TrackingNumber,
	)
	return err
}

// ListByMerchant returns the merchant's orders newest first.
func (r *Repo) ListByMerchant(ctx context.Context, mobile string) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, date, items, total, status, tracking_number
		FROM orders WHERE merchant_mobile=$1 ORDER BY date DESC`, mobile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		var items []byte
		var status string
		if err := rows.Scan(&o.ID, &o.Date, &items, &o.Total, &status, &o.TrackingNumber); err != nil {
			return nil, err
		}
		o.Status = Status(status)
		if len(items) > 0 {
			if err := json.Unmarshal(items, &o.Items); err != nil {
				return nil, fmt.Errorf("decode items for order %s: %w", o.ID, err)
			}
		}
		if o.Items == nil {
			o.Items = []catalog.CartItem{}
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *Repo) GetStatus(ctx context.Context, orderID string) (Status, string, error) {
	var s, tracking string
	err := r.DB.QueryRow(ctx,
		`SELECT status, tracking_number FROM orders WHERE id=$1`, orderID).Scan(&s, &tracking)
	if err != nil {
		return "", "", err
	}
	return Status(s), tracking, nil
}

// UpdateStatus advances an order along Pending -> Dispatched -> Delivered.
// Illegal jumps are rejected without touching the row.
func (r *Repo) UpdateStatus(ctx context.Context, orderID string, to Status) error {
	from, _, err := r.GetStatus(ctx, orderID)
	if err != nil {
		return err
	}
	if from == to {
		return nil
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("order %s: cannot move %s -> %s", orderID, from, to)
	}
	_, err = r.DB.Exec(ctx, `UPDATE orders SET status=$2 WHERE id=$1`, orderID, string(to))
	return err
}
