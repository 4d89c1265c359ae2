package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/plotvista/plotvista/internal/entity"
)

type PlotService struct {
	Store Store
}

func NewPlotService(store Store) *PlotService {
	return &PlotService{Store: store}
}

func (s *PlotService) Create(ctx context.Context, caller entity.Caller, input CreatePlotInput) (*entity.Plot, error) {
	if !caller.IsAdmin() {
		return nil, forbidden("only admins can create plots")
	}
	if verrs := ValidateCreatePlotInput(input); len(verrs) > 0 {
		return nil, validationFailed(verrs)
	}

	plot := entity.NewPlot(input.ProjectID, input.PlotNumber, input.Size, input.Price, input.Facing, input.Status, input.Category)

	err := s.Store.WithinTx(ctx, func(r Repositories) error {
		// New plots must not point at a deleted project.
		if _, err := r.Projects().FindByID(ctx, input.ProjectID); err != nil {
			return fmt.Errorf("project %s: %w", input.ProjectID, err)
		}
		if err := r.Plots().Create(ctx, plot); err != nil {
			return err
		}
		audit := entity.NewActivityLog(caller, "Created Plot", entity.ActivityEntityPlot, plot.ID,
			fmt.Sprintf("Created plot %s", plot.PlotNumber))
		return r.Activities().Append(ctx, audit)
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return nil, notFound(err.Error())
		case errors.Is(err, entity.ErrPlotNumberTaken):
			return nil, conflict(fmt.Sprintf("plot %s already exists in this project", input.PlotNumber))
		default:
			return nil, storage("failed to create plot", err)
		}
	}

	return plot, nil
}

func (s *PlotService) ByCategory(ctx context.Context, category string) ([]*entity.Plot, error) {
	plots, err := s.Store.Plots().FindByCategory(ctx, category)
	if err != nil {
		return nil, storage("failed to fetch plots", err)
	}
	return plots, nil
}

// Stats summarizes the buyer interest recorded against one plot.
func (s *PlotService) Stats(ctx context.Context, plotID string) (*PlotStats, error) {
	if _, err := s.Store.Plots().FindByID(ctx, plotID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, notFound("plot not found")
		}
		return nil, storage("failed to fetch plot", err)
	}

	interests, err := s.Store.BuyerInterests().FindByPlotID(ctx, plotID)
	if err != nil {
		return nil, storage("failed to fetch buyer interests", err)
	}

	stats := &PlotStats{
		TotalInterestedBuyers: len(interests),
		BuyerInterests:        interests,
	}
	if stats.BuyerInterests == nil {
		stats.BuyerInterests = []*entity.BuyerInterest{}
	}

	if len(interests) > 0 {
		var sum int64
		for _, bi := range interests {
			sum += bi.OfferedPrice
			if bi.OfferedPrice > stats.HighestOffer {
				stats.HighestOffer = bi.OfferedPrice
			}
		}
		stats.AverageOfferedPrice = float64(sum) / float64(len(interests))
	}

	return stats, nil
}
