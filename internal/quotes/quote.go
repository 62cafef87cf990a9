package quotes

import "time"

// Message is one chat turn in a negotiation thread. Immutable once appended.
type Message struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Quote is a negotiation thread for one product. QuotedPrice always holds the
// latest proposed price; ChatHistory is append-only.
type Quote struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	SupplierName  string    `json:"supplier_name"`
	RequestedQty  int       `json:"requested_qty"`
	Status        Status    `json:"status"`
	QuotedPrice   float64   `json:"quoted_price"`
	OriginalPrice float64   `json:"original_price"`
	Date          time.Time `json:"date"`
	ChatHistory   []Message `json:"chat_history"`
}

func (q Quote) Terminal() bool {
	return q.Status == StatusAccepted || q.Status == StatusRejected
}
