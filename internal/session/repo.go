package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepo persists merchant profiles keyed by mobile. The login flag is
// session state and is never stored remotely.
type ProfileRepo struct{ DB *pgxpool.Pool }

// Get returns nil without error when no profile exists for the mobile; the
// caller treats a miss and a failure the same way.
func (r *ProfileRepo) Get(ctx context.Context, mobile string) (*Merchant, error) {
	if mobile == "" {
		return nil, nil
	}
	var m Merchant
	err := r.DB.QueryRow(ctx, `
		SELECT name, mobile, shop_name, address, location, business_category,
		       is_subscribed, COALESCE(subscription_type, ''), expiry_date
		FROM profiles WHERE mobile=$1`, mobile).
		Scan(&m.Name, &m.Mobile, &m.ShopName, &m.Address, &m.Location, &m.BusinessCategory,
			&m.IsSubscribed, &m.SubscriptionType, &m.ExpiryDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ProfileRepo) Upsert(ctx context.Context, m Merchant) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO profiles(mobile, name, shop_name, address, location, business_category,
		                     is_subscribed, subscription_type, expiry_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NULLIF($8,''),$9)
		ON CONFLICT (mobile) DO UPDATE SET
			name=EXCLUDED.name, shop_name=EXCLUDED.shop_name, address=EXCLUDED.address,
			location=EXCLUDED.location, business_category=EXCLUDED.business_category,
			is_subscribed=EXCLUDED.is_subscribed, subscription_type=EXCLUDED.subscription_type,
			expiry_date=EXCLUDED.expiry_date`,
		m.Mobile, m.Name, m.ShopName, m.Address, m.Location, m.BusinessCategory,
		m.IsSubscribed, m.SubscriptionType, m.ExpiryDate,
	)
	return err
}
