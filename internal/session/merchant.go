package session

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

var (
	ErrIncompleteProfile = errors.New("please fill in all details")
	ErrUnknownPlan       = errors.New("unknown subscription plan")
)

// Merchant is the shop operator. Mobile is the sole key joining local state
// to remote profile, quote and order records.
type Merchant struct {
	Name             string     `json:"name"`
	Mobile           string     `json:"mobile"`
	ShopName         string     `json:"shop_name"`
	Address          string     `json:"address"`
	Location         string     `json:"location"`
	BusinessCategory string     `json:"business_category"`
	IsLoggedIn       bool       `json:"is_logged_in"`
	IsSubscribed     bool       `json:"is_subscribed"`
	SubscriptionType string     `json:"subscription_type,omitempty"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
}

// ValidateOnboarding requires the five identity fields. Incomplete profiles
// are rejected whole; there is no partial save.
func (m Merchant) ValidateOnboarding() error {
	for _, f := range []string{m.Name, m.Mobile, m.ShopName, m.Address, m.Location} {
		if strings.TrimSpace(f) == "" {
			return ErrIncompleteProfile
		}
	}
	return nil
}

// Context renders the merchant profile line fed to the AI tools.
func (m Merchant) Context() string {
	return fmt.Sprintf("Shop: %s, Category: %s, Location: %s, Address: %s",
		m.ShopName, m.BusinessCategory, m.Location, m.Address)
}
