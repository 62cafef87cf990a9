package session

import (
	"context"
	"log"
	"time"

	"github.com/elavarasan-maker/RETAILIQO/internal/orders"
	"github.com/elavarasan-maker/RETAILIQO/internal/quotes"
)

// ProfileStore is the profile slice of the remote data gateway.
type ProfileStore interface {
	Get(ctx context.Context, mobile string) (*Merchant, error)
	Upsert(ctx context.Context, m Merchant) error
}

type QuoteSource interface {
	ListByMerchant(ctx context.Context, mobile string) ([]quotes.Quote, error)
}

type OrderSource interface {
	ListByMerchant(ctx context.Context, mobile string) ([]orders.Order, error)
}

// Cache is the fixed-key local profile store.
type Cache interface {
	Load(ctx context.Context) (*Merchant, error)
	Save(ctx context.Context, m Merchant) error
	Delete(ctx context.Context) error
}

// Service runs onboarding, subscription and the one-shot cloud sync. Remote
// writes are best effort: a rejected upsert is logged and the session state
// stands.
type Service struct {
	Profiles ProfileStore
	Quotes   QuoteSource
	Orders   OrderSource
	Cache    Cache
}

// Onboard validates the five identity fields, marks the merchant logged in,
// and persists the profile remotely and in the local cache.
func (s *Service) Onboard(ctx context.Context, m Merchant) (Merchant, error) {
	if err := m.ValidateOnboarding(); err != nil {
		return m, err
	}
	m.IsLoggedIn = true
	if err := s.Profiles.Upsert(ctx, m); err != nil {
		log.Printf("profile %s: upsert not persisted: %v", m.Mobile, err)
	}
	s.saveCache(ctx, m)
	return m, nil
}

// Subscribe activates a plan and stamps its expiry: one month or one year out.
func (s *Service) Subscribe(ctx context.Context, m Merchant, plan string) (Merchant, error) {
	expiry := time.Now()
	switch plan {
	case PlanMonthly:
		expiry = expiry.AddDate(0, 1, 0)
	case PlanYearly:
		expiry = expiry.AddDate(1, 0, 0)
	default:
		return m, ErrUnknownPlan
	}
	m.IsSubscribed = true
	m.SubscriptionType = plan
	m.ExpiryDate = &expiry
	if err := s.Profiles.Upsert(ctx, m); err != nil {
		log.Printf("profile %s: subscription not persisted: %v", m.Mobile, err)
	}
	s.saveCache(ctx, m)
	return m, nil
}

// Snapshot is the result of a cloud sync: a full replacement of local state.
type Snapshot struct {
	Merchant Merchant
	Quotes   []quotes.Quote
	Orders   []orders.Order
}

// SyncCloud fetches profile, quotes and orders by mobile and returns them as
// a replacement snapshot. Any fetch failure degrades to keeping the current
// profile fields or an empty list; sync never fails the login.
func (s *Service) SyncCloud(ctx context.Context, m Merchant) Snapshot {
	if p, err := s.Profiles.Get(ctx, m.Mobile); err != nil {
		log.Printf("sync %s: profile fetch failed: %v", m.Mobile, err)
	} else if p != nil {
		m.Name = p.Name
		m.ShopName = p.ShopName
		m.Address = p.Address
		m.Location = p.Location
		if p.BusinessCategory != "" {
			m.BusinessCategory = p.BusinessCategory
		}
		m.IsSubscribed = p.IsSubscribed
		m.SubscriptionType = p.SubscriptionType
		m.ExpiryDate = p.ExpiryDate
	}

	qs, err := s.Quotes.ListByMerchant(ctx, m.Mobile)
	if err != nil {
		log.Printf("sync %s: quotes fetch failed: %v", m.Mobile, err)
		qs = nil
	}
	if qs == nil {
		qs = []quotes.Quote{}
	}

	os, err := s.Orders.ListByMerchant(ctx, m.Mobile)
	if err != nil {
		log.Printf("sync %s: orders fetch failed: %v", m.Mobile, err)
		os = nil
	}
	if os == nil {
		os = []orders.Order{}
	}

	s.saveCache(ctx, m)
	return Snapshot{Merchant: m, Quotes: qs, Orders: os}
}

// Restore loads the cached profile at session start, if any.
func (s *Service) Restore(ctx context.Context) *Merchant {
	if s.Cache == nil {
		return nil
	}
	m, err := s.Cache.Load(ctx)
	if err != nil {
		log.Printf("profile cache load failed: %v", err)
		return nil
	}
	return m
}

// Logout clears the cached profile.
func (s *Service) Logout(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Delete(ctx); err != nil {
		log.Printf("profile cache delete failed: %v", err)
	}
}

func (s *Service) saveCache(ctx context.Context, m Merchant) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Save(ctx, m); err != nil {
		log.Printf("profile cache save failed: %v", err)
	}
}
