package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingRecordedPayloadWireFormat(t *testing.T) {
	payload := BookingRecordedPayload{
		PaymentID:   "pay-1",
		LeadID:      "lead-1",
		LeadName:    "Rajesh Kumar",
		LeadEmail:   "rajesh@example.com",
		PlotID:      "plot-1",
		PlotNumber:  "A-001",
		Amount:      500000,
		Mode:        "Cash",
		BookingType: "Token",
		RecordedBy:  "sales@example.com",
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	var wire map[string]any
	assert.NoError(t, json.Unmarshal(body, &wire))

	assert.Equal(t, "pay-1", wire["payment_id"])
	assert.Equal(t, "A-001", wire["plot_number"])
	assert.Equal(t, "Token", wire["booking_type"])
	assert.Equal(t, "sales@example.com", wire["recorded_by"])
	assert.Equal(t, float64(500000), wire["amount"])
}

func TestBookingRecordedPayloadOmitsEmptyEmail(t *testing.T) {
	payload := BookingRecordedPayload{PaymentID: "pay-1", LeadID: "lead-1"}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	var wire map[string]any
	assert.NoError(t, json.Unmarshal(body, &wire))

	_, present := wire["lead_email"]
	assert.False(t, present)
}

func TestTopologyNames(t *testing.T) {
	// Consumers and the DLQ shovel depend on these exact names.
	assert.Equal(t, "ex.bookings", ExchangeName)
	assert.Equal(t, "q.booking-notifications", QueueName)
	assert.Equal(t, "q.booking-notifications.dlq", DLQName)
	assert.Equal(t, "ex.dlx", DLXName)
	assert.Equal(t, "k.booking-recorded", RoutingKey)
}
