package mail

import (
	"bytes"
	"fmt"
	"log"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/plotvista/plotvista/internal/infra/queue"
)

var bookingTemplate = template.Must(template.New("booking").Parse(
	`Hi {{.LeadName}},

Your booking for plot {{.PlotNumber}} has been recorded.

Booking type: {{.BookingType}}
Amount paid:  ₹{{.Amount}} ({{.Mode}})

Our team will reach out with the next steps shortly.
`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	if from == "" {
		from = "no-reply@plotvista.local"
	}
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendBookingConfirmation(payload queue.BookingRecordedPayload) error {
	if payload.LeadEmail == "" {
		log.Printf("booking %s has no lead email, skipping confirmation", payload.PaymentID)
		return nil
	}

	data := BookingEmailData{
		LeadName:    payload.LeadName,
		PlotNumber:  payload.PlotNumber,
		Amount:      payload.Amount,
		Mode:        payload.Mode,
		BookingType: payload.BookingType,
	}

	var body bytes.Buffer
	if err := bookingTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", payload.LeadEmail)
	m.SetHeader("Subject", fmt.Sprintf("Booking confirmed for plot %s", payload.PlotNumber))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email over SMTP: %w", err)
	}

	return nil
}
