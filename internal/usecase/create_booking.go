package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/plotvista/plotvista/internal/entity"
	"github.com/plotvista/plotvista/internal/infra/queue"
)

// CreateBookingUseCase records a payment and applies the booking state
// transition: payment insert, guarded plot transition, lead status update and
// audit entry run inside one unit of work. A failure at any step rolls the
// whole booking back, including a failed audit write.
type CreateBookingUseCase struct {
	Store  Store
	Events queue.BookingEventPublisher
}

func NewCreateBookingUseCase(store Store, events queue.BookingEventPublisher) *CreateBookingUseCase {
	return &CreateBookingUseCase{
		Store:  store,
		Events: events,
	}
}

func (uc *CreateBookingUseCase) Execute(ctx context.Context, caller entity.Caller, input CreateBookingInput) (*entity.Payment, error) {
	if verrs := ValidateCreateBookingInput(input); len(verrs) > 0 {
		return nil, validationFailed(verrs)
	}

	payment := entity.NewPayment(
		input.LeadID, input.PlotID, input.Amount,
		input.Mode, input.BookingType, input.TransactionID, input.Notes,
	)

	var lead *entity.Lead
	var plot *entity.Plot

	err := uc.Store.WithinTx(ctx, func(r Repositories) error {
		var err error

		lead, err = r.Leads().FindByID(ctx, input.LeadID)
		if err != nil {
			return fmt.Errorf("lead %s: %w", input.LeadID, err)
		}
		plot, err = r.Plots().FindByID(ctx, input.PlotID)
		if err != nil {
			return fmt.Errorf("plot %s: %w", input.PlotID, err)
		}

		if err := r.Payments().Create(ctx, payment); err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}

		if err := r.Plots().Transition(ctx, plot.ID, lead.ID, input.BookingType.PlotStatusAfterBooking()); err != nil {
			return err
		}

		if err := r.Leads().SetStatus(ctx, lead.ID, entity.LeadStatusBooked); err != nil {
			return fmt.Errorf("update lead status: %w", err)
		}

		audit := entity.NewActivityLog(caller, "Created Booking", entity.ActivityEntityPayment, payment.ID,
			fmt.Sprintf("Booked plot %s for %s - ₹%d", plot.PlotNumber, lead.Name, input.Amount))
		return r.Activities().Append(ctx, audit)
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return nil, notFound(err.Error())
		case errors.Is(err, entity.ErrPlotUnavailable):
			return nil, conflict(fmt.Sprintf("plot %s is already %s", plot.PlotNumber, plot.Status))
		default:
			return nil, storage("failed to record booking", err)
		}
	}

	// Post-commit notification. A committed booking is never undone because
	// the broker is down, so publish failures only get logged.
	if uc.Events != nil {
		payload := queue.BookingRecordedPayload{
			PaymentID:   payment.ID,
			LeadID:      lead.ID,
			LeadName:    lead.Name,
			LeadEmail:   lead.Email,
			PlotID:      plot.ID,
			PlotNumber:  plot.PlotNumber,
			Amount:      payment.Amount,
			Mode:        string(payment.Mode),
			BookingType: string(payment.BookingType),
			RecordedBy:  caller.Email,
		}
		if err := uc.Events.PublishBookingRecorded(ctx, payload); err != nil {
			log.Printf("CRITICAL: booking %s committed but event publish failed: %v", payment.ID, err)
		}
	}

	return payment, nil
}
