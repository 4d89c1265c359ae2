package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/plotvista/plotvista/internal/entity"
)

// BuyerInterestService tracks offers on plots. Interests never change a
// plot's status; that stays the booking engine's job.
type BuyerInterestService struct {
	Store Store
}

func NewBuyerInterestService(store Store) *BuyerInterestService {
	return &BuyerInterestService{Store: store}
}

func (s *BuyerInterestService) Add(ctx context.Context, caller entity.Caller, input CreateBuyerInterestInput) (*entity.BuyerInterest, error) {
	if verrs := ValidateCreateBuyerInterestInput(input); len(verrs) > 0 {
		return nil, validationFailed(verrs)
	}

	var interest *entity.BuyerInterest

	err := s.Store.WithinTx(ctx, func(r Repositories) error {
		salesperson, err := r.Users().FindByID(ctx, input.SalespersonID)
		if err != nil {
			return fmt.Errorf("salesperson %s: %w", input.SalespersonID, err)
		}
		plot, err := r.Plots().FindByID(ctx, input.PlotID)
		if err != nil {
			return fmt.Errorf("plot %s: %w", input.PlotID, err)
		}

		interest = entity.NewBuyerInterest(
			input.PlotID, input.BuyerName, input.BuyerContact, input.BuyerEmail,
			input.OfferedPrice, salesperson.ID, salesperson.Name, input.Notes,
		)
		if err := r.BuyerInterests().Create(ctx, interest); err != nil {
			return err
		}

		audit := entity.NewActivityLog(caller, "Added Buyer Interest", entity.ActivityEntityPlot, plot.ID,
			fmt.Sprintf("%s interested in plot %s with offer ₹%d", input.BuyerName, plot.PlotNumber, input.OfferedPrice))
		return r.Activities().Append(ctx, audit)
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, notFound(err.Error())
		}
		return nil, storage("failed to create buyer interest", err)
	}

	return interest, nil
}

func (s *BuyerInterestService) ListByPlot(ctx context.Context, plotID string) ([]*entity.BuyerInterest, error) {
	interests, err := s.Store.BuyerInterests().FindByPlotID(ctx, plotID)
	if err != nil {
		return nil, storage("failed to fetch buyer interests", err)
	}
	return interests, nil
}

func (s *BuyerInterestService) Delete(ctx context.Context, caller entity.Caller, id string) error {
	err := s.Store.BuyerInterests().Delete(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return notFound("buyer interest not found")
		}
		return storage("failed to delete buyer interest", err)
	}
	return nil
}
