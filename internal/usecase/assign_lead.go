package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plotvista/plotvista/internal/entity"
)

// AssignLeadUseCase hands a lead to a salesperson. Admin-only; the actor is
// recorded as assignedBy.
type AssignLeadUseCase struct {
	Store Store
}

func NewAssignLeadUseCase(store Store) *AssignLeadUseCase {
	return &AssignLeadUseCase{Store: store}
}

func (uc *AssignLeadUseCase) Execute(ctx context.Context, caller entity.Caller, leadID string, input AssignLeadInput) (*entity.Lead, error) {
	if !caller.IsAdmin() {
		return nil, forbidden("only admins can assign leads")
	}
	if verrs := ValidateAssignLeadInput(input); len(verrs) > 0 {
		return nil, validationFailed(verrs)
	}

	var lead *entity.Lead

	err := uc.Store.WithinTx(ctx, func(r Repositories) error {
		var err error

		lead, err = r.Leads().FindByID(ctx, leadID)
		if err != nil {
			return fmt.Errorf("lead %s: %w", leadID, err)
		}
		salesperson, err := r.Users().FindByID(ctx, input.SalespersonID)
		if err != nil {
			return fmt.Errorf("salesperson %s: %w", input.SalespersonID, err)
		}

		lead.AssignedTo = salesperson.ID
		lead.AssignedBy = caller.ID
		lead.UpdatedAt = time.Now()
		if err := r.Leads().Update(ctx, lead); err != nil {
			return err
		}

		audit := entity.NewActivityLog(caller, "Assigned Lead", entity.ActivityEntityLead, lead.ID,
			fmt.Sprintf("Assigned lead %s to %s", lead.Name, salesperson.Name))
		return r.Activities().Append(ctx, audit)
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, notFound(err.Error())
		}
		return nil, storage("failed to assign lead", err)
	}

	return lead, nil
}
