package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingRecordedPayload is published after a booking transaction commits.
// Consumers use it to notify without re-reading the database.
type BookingRecordedPayload struct {
	PaymentID   string `json:"payment_id"`
	LeadID      string `json:"lead_id"`
	LeadName    string `json:"lead_name"`
	LeadEmail   string `json:"lead_email,omitempty"`
	PlotID      string `json:"plot_id"`
	PlotNumber  string `json:"plot_number"`
	Amount      int64  `json:"amount"`
	Mode        string `json:"mode"`
	BookingType string `json:"booking_type"`
	RecordedBy  string `json:"recorded_by"` // actor email
}

type BookingEventPublisher interface {
	PublishBookingRecorded(ctx context.Context, payload BookingRecordedPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishBookingRecorded(ctx context.Context, payload BookingRecordedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
