package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plotvista/plotvista/internal/entity"
)

type LeadService struct {
	Store Store
}

func NewLeadService(store Store) *LeadService {
	return &LeadService{Store: store}
}

func (s *LeadService) Create(ctx context.Context, caller entity.Caller, input CreateLeadInput) (*entity.Lead, error) {
	if verrs := ValidateCreateLeadInput(input); len(verrs) > 0 {
		return nil, validationFailed(verrs)
	}

	lead := entity.NewLead(input.Name, input.Email, input.Phone, input.Source, input.Status, input.Rating)
	lead.AssignedTo = input.AssignedTo
	lead.FollowUpDate = parseOptionalDate(input.FollowUpDate)
	lead.Notes = input.Notes

	err := s.Store.WithinTx(ctx, func(r Repositories) error {
		if err := r.Leads().Create(ctx, lead); err != nil {
			return err
		}
		audit := entity.NewActivityLog(caller, "Created Lead", entity.ActivityEntityLead, lead.ID,
			fmt.Sprintf("Created lead for %s", lead.Name))
		return r.Activities().Append(ctx, audit)
	})
	if err != nil {
		return nil, storage("failed to create lead", err)
	}

	return lead, nil
}

func (s *LeadService) Update(ctx context.Context, caller entity.Caller, id string, input CreateLeadInput) (*entity.Lead, error) {
	if verrs := ValidateCreateLeadInput(input); len(verrs) > 0 {
		return nil, validationFailed(verrs)
	}

	var lead *entity.Lead

	err := s.Store.WithinTx(ctx, func(r Repositories) error {
		var err error

		lead, err = r.Leads().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("lead %s: %w", id, err)
		}

		lead.Name = input.Name
		lead.Email = input.Email
		lead.Phone = input.Phone
		lead.Source = input.Source
		if input.Status != "" {
			lead.Status = input.Status
		}
		if input.Rating != "" {
			lead.Rating = input.Rating
		}
		if input.AssignedTo != "" {
			lead.AssignedTo = input.AssignedTo
		}
		lead.FollowUpDate = parseOptionalDate(input.FollowUpDate)
		lead.Notes = input.Notes
		lead.UpdatedAt = time.Now()

		if err := r.Leads().Update(ctx, lead); err != nil {
			return err
		}
		audit := entity.NewActivityLog(caller, "Updated Lead", entity.ActivityEntityLead, lead.ID,
			fmt.Sprintf("Updated lead %s", lead.Name))
		return r.Activities().Append(ctx, audit)
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, notFound(err.Error())
		}
		return nil, storage("failed to update lead", err)
	}

	return lead, nil
}

func (s *LeadService) Delete(ctx context.Context, caller entity.Caller, id string) error {
	err := s.Store.WithinTx(ctx, func(r Repositories) error {
		lead, err := r.Leads().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("lead %s: %w", id, err)
		}
		if err := r.Leads().Delete(ctx, id); err != nil {
			return err
		}
		audit := entity.NewActivityLog(caller, "Deleted Lead", entity.ActivityEntityLead, lead.ID,
			fmt.Sprintf("Deleted lead %s", lead.Name))
		return r.Activities().Append(ctx, audit)
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return notFound(err.Error())
		}
		return storage("failed to delete lead", err)
	}
	return nil
}

// TodayFollowUps lists the caller's leads due today, scoped like every other
// read: admins see them all.
func (s *LeadService) TodayFollowUps(ctx context.Context, caller entity.Caller) ([]*entity.Lead, error) {
	from, to := todayWindow()
	assignee := caller.ID
	if caller.IsAdmin() {
		assignee = ""
	}
	leads, err := s.Store.Leads().FindFollowUpsBetween(ctx, assignee, from, to)
	if err != nil {
		return nil, storage("failed to fetch follow-ups", err)
	}
	return leads, nil
}
