package usecase

import (
	"context"
	"fmt"

	"github.com/plotvista/plotvista/internal/entity"
)

type ProjectService struct {
	Store Store
}

func NewProjectService(store Store) *ProjectService {
	return &ProjectService{Store: store}
}

func (s *ProjectService) Create(ctx context.Context, caller entity.Caller, input CreateProjectInput) (*entity.Project, error) {
	if !caller.IsAdmin() {
		return nil, forbidden("only admins can create projects")
	}
	if verrs := ValidateCreateProjectInput(input); len(verrs) > 0 {
		return nil, validationFailed(verrs)
	}

	project := entity.NewProject(input.Name, input.Location, input.TotalPlots, input.Description)

	err := s.Store.WithinTx(ctx, func(r Repositories) error {
		if err := r.Projects().Create(ctx, project); err != nil {
			return err
		}
		audit := entity.NewActivityLog(caller, "Created Project", entity.ActivityEntityPlot, project.ID,
			fmt.Sprintf("Created project %s", project.Name))
		return r.Activities().Append(ctx, audit)
	})
	if err != nil {
		return nil, storage("failed to create project", err)
	}

	return project, nil
}

// Overview returns every project with its plot partition counts and the
// buyer-interest picture per plot.
func (s *ProjectService) Overview(ctx context.Context) ([]*ProjectOverview, error) {
	projects, err := s.Store.Projects().FindAll(ctx)
	if err != nil {
		return nil, storage("failed to fetch projects", err)
	}

	overviews := make([]*ProjectOverview, 0, len(projects))
	for _, project := range projects {
		plots, err := s.Store.Plots().FindByProjectID(ctx, project.ID)
		if err != nil {
			return nil, storage("failed to fetch plots", err)
		}

		plotIDs := collect(plots, func(p *entity.Plot) string { return p.ID })
		var interests []*entity.BuyerInterest
		if len(plotIDs) > 0 {
			interests, err = s.Store.BuyerInterests().FindByPlotIDs(ctx, plotIDs)
			if err != nil {
				return nil, storage("failed to fetch buyer interests", err)
			}
		}

		byPlot := make(map[string][]*entity.BuyerInterest, len(plots))
		for _, bi := range interests {
			byPlot[bi.PlotID] = append(byPlot[bi.PlotID], bi)
		}

		ov := &ProjectOverview{
			Project:               *project,
			TotalPlots:            len(plots),
			TotalInterestedBuyers: len(interests),
			Plots:                 make([]PlotOverview, 0, len(plots)),
		}

		for _, plot := range plots {
			switch plot.Status {
			case entity.PlotStatusAvailable:
				ov.AvailablePlots++
			case entity.PlotStatusBooked:
				ov.BookedPlots++
			case entity.PlotStatusSold:
				ov.SoldPlots++
			}
			ov.Plots = append(ov.Plots, enrichPlot(plot, byPlot[plot.ID]))
		}

		overviews = append(overviews, ov)
	}

	return overviews, nil
}

func enrichPlot(plot *entity.Plot, interests []*entity.BuyerInterest) PlotOverview {
	ov := PlotOverview{
		Plot:               *plot,
		BuyerInterestCount: len(interests),
		Salespersons:       []SalespersonRef{},
		BuyerInterests:     interests,
	}
	if ov.BuyerInterests == nil {
		ov.BuyerInterests = []*entity.BuyerInterest{}
	}

	seen := make(map[string]bool)
	for _, bi := range interests {
		if bi.OfferedPrice > ov.HighestOffer {
			ov.HighestOffer = bi.OfferedPrice
		}
		if !seen[bi.SalespersonID] {
			seen[bi.SalespersonID] = true
			ov.Salespersons = append(ov.Salespersons, SalespersonRef{ID: bi.SalespersonID, Name: bi.SalespersonName})
		}
	}

	return ov
}
