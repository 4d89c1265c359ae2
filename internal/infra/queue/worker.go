package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingNotifier is the downstream side effect for a recorded booking
// (SMTP in production).
type BookingNotifier interface {
	SendBookingConfirmation(payload BookingRecordedPayload) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier BookingNotifier
}

func NewWorker(ch *amqp.Channel, notifier BookingNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("[worker] failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload BookingRecordedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[worker] malformed message, rejecting without requeue: %s", err)
				d.Nack(false, false)
				continue
			}

			log.Printf("[worker] booking %s recorded for %s, sending confirmation", payload.PaymentID, payload.LeadName)

			if err := w.Notifier.SendBookingConfirmation(payload); err != nil {
				log.Printf("[worker] notification failed: %s", err)
				// Goes to the DLQ rather than looping forever on a bad address.
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf("[worker] waiting for messages on queue %q", queueName)
	<-forever
}
