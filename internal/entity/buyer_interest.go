package entity

import (
	"time"

	"github.com/google/uuid"
)

// BuyerInterest tracks an offer on a plot. It never changes the plot status;
// only a Payment does that.
type BuyerInterest struct {
	ID              string    `json:"id"`
	PlotID          string    `json:"plot_id"`
	BuyerName       string    `json:"buyer_name"`
	BuyerContact    string    `json:"buyer_contact"`
	BuyerEmail      string    `json:"buyer_email,omitempty"`
	OfferedPrice    int64     `json:"offered_price"`
	SalespersonID   string    `json:"salesperson_id"`
	SalespersonName string    `json:"salesperson_name"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewBuyerInterest(plotID, buyerName, buyerContact, buyerEmail string, offeredPrice int64, salespersonID, salespersonName, notes string) *BuyerInterest {
	return &BuyerInterest{
		ID:              uuid.New().String(),
		PlotID:          plotID,
		BuyerName:       buyerName,
		BuyerContact:    buyerContact,
		BuyerEmail:      buyerEmail,
		OfferedPrice:    offeredPrice,
		SalespersonID:   salespersonID,
		SalespersonName: salespersonName,
		Notes:           notes,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}
