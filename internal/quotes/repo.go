package quotes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo persists negotiation threads. Chat history travels as one JSON
// document per quote; the hosted schema keeps no per-message rows.
type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Create(ctx context.Context, q Quote, merchantMobile string) error {
	history, err := json.Marshal(q.ChatHistory)
	if err != nil {
		return fmt.Errorf("encode chat history: %w", err)
	}
	_, err = r.DB.Exec(ctx, `
		INSERT INTO quotes(id, merchant_mobile, product_id, product_name, supplier_name,
		                   requested_qty, status, quoted_price, original_price, date, chat_history)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		q.ID, merchantMobile, q.ProductID, q.ProductName, q.SupplierName,
		q.RequestedQty, string(q.Status), q.QuotedPrice, q.OriginalPrice, q.Date, history,
	)
	return err
}

// Update writes back the negotiation fields that change after creation.
func (r *Repo) Update(ctx context.Context, q Quote) error {
	history, err := json.Marshal(q.ChatHistory)
	if err != nil {
		return fmt.Errorf("encode chat history: %w", err)
	}
	_, err = r.DB.Exec(ctx, `
		UPDATE quotes SET status=$2, quoted_price=$3, chat_history=$4 WHERE id=$1`,
		q.ID, string(q.Status), q.QuotedPrice, history,
	)
	return err
}

// ListByMerchant returns the merchant's quotes newest first.
func (r *Repo) ListByMerchant(ctx context.Context, mobile string) ([]Quote, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, product_id, product_name, supplier_name, requested_qty,
		       status, quoted_price, original_price, date, chat_history
		FROM quotes WHERE merchant_mobile=$1 ORDER BY date DESC`, mobile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Quote
	for rows.Next() {
		var q Quote
		var status string
		var history []byte
		if err := rows.Scan(&q.ID, &q.ProductID, &q.ProductName, &q.SupplierName, &q.RequestedQty,
			&status, &q.QuotedPrice, &q.OriginalPrice, &q.Date, &history); err != nil {
			return nil, err
		}
		q.Status = Status(status)
		if len(history) > 0 {
			if err := json.Unmarshal(history, &q.ChatHistory); err != nil {
				return nil, fmt.Errorf("decode chat history for quote %s: %w", q.ID, err)
			}
		}
		if q.ChatHistory == nil {
			q.ChatHistory = []Message{}
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
