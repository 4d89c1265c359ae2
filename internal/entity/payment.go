package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "Cash"
	PaymentModeUPI          PaymentMode = "UPI"
	PaymentModeCheque       PaymentMode = "Cheque"
	PaymentModeBankTransfer PaymentMode = "Bank Transfer"
)

func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeUPI, PaymentModeCheque, PaymentModeBankTransfer:
		return true
	}
	return false
}

type BookingType string

const (
	BookingTypeToken BookingType = "Token" // advance payment, plot held as Booked
	BookingTypeFull  BookingType = "Full"  // full payment, plot marked Sold
)

func (t BookingType) Valid() bool {
	return t == BookingTypeToken || t == BookingTypeFull
}

// Payment is the booking record joining a lead to a plot. Immutable once
// created; inserting one is the single trigger for the plot and lead
// state transitions.
type Payment struct {
	ID            string      `json:"id"`
	LeadID        string      `json:"lead_id"`
	PlotID        string      `json:"plot_id"`
	Amount        int64       `json:"amount"`
	Mode          PaymentMode `json:"mode"`
	BookingType   BookingType `json:"booking_type"`
	TransactionID string      `json:"transaction_id,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

func NewPayment(leadID, plotID string, amount int64, mode PaymentMode, bookingType BookingType, transactionID, notes string) *Payment {
	return &Payment{
		ID:            uuid.New().String(),
		LeadID:        leadID,
		PlotID:        plotID,
		Amount:        amount,
		Mode:          mode,
		BookingType:   bookingType,
		TransactionID: transactionID,
		Notes:         notes,
		CreatedAt:     time.Now(),
	}
}

// PlotStatusAfterBooking maps the booking type to the resulting plot status.
func (t BookingType) PlotStatusAfterBooking() PlotStatus {
	if t == BookingTypeFull {
		return PlotStatusSold
	}
	return PlotStatusBooked
}
