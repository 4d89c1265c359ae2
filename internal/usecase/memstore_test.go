package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/plotvista/plotvista/internal/entity"
)

// memStore is an in-memory Store used by the usecase tests. WithinTx takes a
// snapshot of every table and restores it when fn fails, mirroring the
// rollback semantics of the SQL store.
type memStore struct {
	users     []entity.User
	leads     []entity.Lead
	projects  []entity.Project
	plots     []entity.Plot
	payments  []entity.Payment
	interests []entity.BuyerInterest
	logs      []entity.ActivityLog
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) Users() UserRepository                   { return &memUserRepo{m} }
func (m *memStore) Leads() LeadRepository                   { return &memLeadRepo{m} }
func (m *memStore) Projects() ProjectRepository             { return &memProjectRepo{m} }
func (m *memStore) Plots() PlotRepository                   { return &memPlotRepo{m} }
func (m *memStore) Payments() PaymentRepository             { return &memPaymentRepo{m} }
func (m *memStore) BuyerInterests() BuyerInterestRepository { return &memInterestRepo{m} }
func (m *memStore) Activities() ActivityRepository          { return &memActivityRepo{m} }

func (m *memStore) WithinTx(ctx context.Context, fn func(r Repositories) error) error {
	snapshot := *m
	snapshot.users = append([]entity.User(nil), m.users...)
	snapshot.leads = append([]entity.Lead(nil), m.leads...)
	snapshot.projects = append([]entity.Project(nil), m.projects...)
	snapshot.plots = append([]entity.Plot(nil), m.plots...)
	snapshot.payments = append([]entity.Payment(nil), m.payments...)
	snapshot.interests = append([]entity.BuyerInterest(nil), m.interests...)
	snapshot.logs = append([]entity.ActivityLog(nil), m.logs...)

	if err := fn(m); err != nil {
		*m = snapshot
		return err
	}
	return nil
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return entity.ErrEmailAlreadyExists
		}
	}
	r.s.users = append(r.s.users, *u)
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for i := range r.s.users {
		if r.s.users[i].Email == email {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memUserRepo) FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	var out []*entity.User
	for i := range r.s.users {
		if r.s.users[i].Role == role {
			u := r.s.users[i]
			out = append(out, &u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memUserRepo) Delete(ctx context.Context, id string) error {
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			r.s.users = append(r.s.users[:i], r.s.users[i+1:]...)
			return nil
		}
	}
	return entity.ErrNotFound
}

type memLeadRepo struct{ s *memStore }

func (r *memLeadRepo) Create(ctx context.Context, l *entity.Lead) error {
	r.s.leads = append(r.s.leads, *l)
	return nil
}

func (r *memLeadRepo) Update(ctx context.Context, l *entity.Lead) error {
	for i := range r.s.leads {
		if r.s.leads[i].ID == l.ID {
			r.s.leads[i] = *l
			return nil
		}
	}
	return entity.ErrNotFound
}

func (r *memLeadRepo) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	for i := range r.s.leads {
		if r.s.leads[i].ID == id {
			l := r.s.leads[i]
			return &l, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memLeadRepo) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	return r.filter(func(l *entity.Lead) bool { return true }), nil
}

func (r *memLeadRepo) FindByAssignee(ctx context.Context, userID string) ([]*entity.Lead, error) {
	return r.filter(func(l *entity.Lead) bool { return l.AssignedTo == userID }), nil
}

func (r *memLeadRepo) FindByAssigneeAndStatus(ctx context.Context, userID string, status entity.LeadStatus) ([]*entity.Lead, error) {
	return r.filter(func(l *entity.Lead) bool {
		return l.AssignedTo == userID && l.Status == status
	}), nil
}

func (r *memLeadRepo) FindFollowUpsBetween(ctx context.Context, assigneeID string, from, to time.Time) ([]*entity.Lead, error) {
	out := r.filter(func(l *entity.Lead) bool {
		if l.FollowUpDate == nil {
			return false
		}
		if assigneeID != "" && l.AssignedTo != assigneeID {
			return false
		}
		return !l.FollowUpDate.Before(from) && !l.FollowUpDate.After(to)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FollowUpDate.Before(*out[j].FollowUpDate)
	})
	return out, nil
}

func (r *memLeadRepo) SetStatus(ctx context.Context, id string, status entity.LeadStatus) error {
	for i := range r.s.leads {
		if r.s.leads[i].ID == id {
			r.s.leads[i].Status = status
			r.s.leads[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return entity.ErrNotFound
}

func (r *memLeadRepo) Delete(ctx context.Context, id string) error {
	for i := range r.s.leads {
		if r.s.leads[i].ID == id {
			r.s.leads = append(r.s.leads[:i], r.s.leads[i+1:]...)
			return nil
		}
	}
	return entity.ErrNotFound
}

func (r *memLeadRepo) CountAll(ctx context.Context) (int, error) {
	return len(r.s.leads), nil
}

func (r *memLeadRepo) CountByStatus(ctx context.Context, status entity.LeadStatus) (int, error) {
	n := 0
	for i := range r.s.leads {
		if r.s.leads[i].Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memLeadRepo) CountUnassigned(ctx context.Context) (int, error) {
	n := 0
	for i := range r.s.leads {
		if r.s.leads[i].AssignedTo == "" {
			n++
		}
	}
	return n, nil
}

func (r *memLeadRepo) CountByAssignee(ctx context.Context, userID string) (int, error) {
	n := 0
	for i := range r.s.leads {
		if r.s.leads[i].AssignedTo == userID {
			n++
		}
	}
	return n, nil
}

func (r *memLeadRepo) CountFollowUpsBetween(ctx context.Context, assigneeID string, from, to time.Time) (int, error) {
	leads, _ := r.FindFollowUpsBetween(ctx, assigneeID, from, to)
	return len(leads), nil
}

func (r *memLeadRepo) filter(keep func(*entity.Lead) bool) []*entity.Lead {
	var out []*entity.Lead
	for i := range r.s.leads {
		l := r.s.leads[i]
		if keep(&l) {
			out = append(out, &l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

type memProjectRepo struct{ s *memStore }

func (r *memProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	r.s.projects = append(r.s.projects, *p)
	return nil
}

func (r *memProjectRepo) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	for i := range r.s.projects {
		if r.s.projects[i].ID == id {
			p := r.s.projects[i]
			return &p, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memProjectRepo) FindAll(ctx context.Context) ([]*entity.Project, error) {
	var out []*entity.Project
	for i := range r.s.projects {
		p := r.s.projects[i]
		out = append(out, &p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *memProjectRepo) FindByIDs(ctx context.Context, ids []string) ([]*entity.Project, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	all, _ := r.FindAll(ctx)
	var out []*entity.Project
	for _, p := range all {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProjectRepo) CountAll(ctx context.Context) (int, error) {
	return len(r.s.projects), nil
}

type memPlotRepo struct{ s *memStore }

func (r *memPlotRepo) Create(ctx context.Context, p *entity.Plot) error {
	for i := range r.s.plots {
		if r.s.plots[i].ProjectID == p.ProjectID && r.s.plots[i].PlotNumber == p.PlotNumber {
			return entity.ErrPlotNumberTaken
		}
	}
	r.s.plots = append(r.s.plots, *p)
	return nil
}

func (r *memPlotRepo) FindByID(ctx context.Context, id string) (*entity.Plot, error) {
	for i := range r.s.plots {
		if r.s.plots[i].ID == id {
			p := r.s.plots[i]
			return &p, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (r *memPlotRepo) FindAll(ctx context.Context) ([]*entity.Plot, error) {
	return r.filter(func(p *entity.Plot) bool { return true }), nil
}

func (r *memPlotRepo) FindByIDs(ctx context.Context, ids []string) ([]*entity.Plot, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	return r.filter(func(p *entity.Plot) bool { return wanted[p.ID] }), nil
}

func (r *memPlotRepo) FindByProjectID(ctx context.Context, projectID string) ([]*entity.Plot, error) {
	return r.filter(func(p *entity.Plot) bool { return p.ProjectID == projectID }), nil
}

func (r *memPlotRepo) FindByCategory(ctx context.Context, category string) ([]*entity.Plot, error) {
	return r.filter(func(p *entity.Plot) bool { return p.Category == category }), nil
}

func (r *memPlotRepo) Transition(ctx context.Context, plotID, leadID string, status entity.PlotStatus) error {
	for i := range r.s.plots {
		if r.s.plots[i].ID != plotID {
			continue
		}
		if !r.s.plots[i].Status.Bookable() {
			return entity.ErrPlotUnavailable
		}
		r.s.plots[i].Status = status
		r.s.plots[i].BookedBy = leadID
		r.s.plots[i].UpdatedAt = time.Now()
		return nil
	}
	return entity.ErrNotFound
}

func (r *memPlotRepo) CountAll(ctx context.Context) (int, error) {
	return len(r.s.plots), nil
}

func (r *memPlotRepo) CountByStatus(ctx context.Context, statuses ...entity.PlotStatus) (int, error) {
	n := 0
	for i := range r.s.plots {
		for _, s := range statuses {
			if r.s.plots[i].Status == s {
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *memPlotRepo) filter(keep func(*entity.Plot) bool) []*entity.Plot {
	var out []*entity.Plot
	for i := range r.s.plots {
		p := r.s.plots[i]
		if keep(&p) {
			out = append(out, &p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PlotNumber != out[j].PlotNumber {
			return out[i].PlotNumber < out[j].PlotNumber
		}
		return out[i].ID < out[j].ID
	})
	return out
}

type memPaymentRepo struct{ s *memStore }

func (r *memPaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	r.s.payments = append(r.s.payments, *p)
	return nil
}

func (r *memPaymentRepo) FindByLeadIDs(ctx context.Context, leadIDs []string) ([]*entity.Payment, error) {
	wanted := make(map[string]bool, len(leadIDs))
	for _, id := range leadIDs {
		wanted[id] = true
	}
	var out []*entity.Payment
	for i := range r.s.payments {
		if wanted[r.s.payments[i].LeadID] {
			p := r.s.payments[i]
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) SumAmount(ctx context.Context) (int64, error) {
	var total int64
	for i := range r.s.payments {
		total += r.s.payments[i].Amount
	}
	return total, nil
}

func (r *memPaymentRepo) SumAmountByLeadIDs(ctx context.Context, leadIDs []string) (int64, error) {
	payments, _ := r.FindByLeadIDs(ctx, leadIDs)
	var total int64
	for _, p := range payments {
		total += p.Amount
	}
	return total, nil
}

type memInterestRepo struct{ s *memStore }

func (r *memInterestRepo) Create(ctx context.Context, b *entity.BuyerInterest) error {
	r.s.interests = append(r.s.interests, *b)
	return nil
}

func (r *memInterestRepo) FindByPlotID(ctx context.Context, plotID string) ([]*entity.BuyerInterest, error) {
	var out []*entity.BuyerInterest
	for i := range r.s.interests {
		if r.s.interests[i].PlotID == plotID {
			b := r.s.interests[i]
			out = append(out, &b)
		}
	}
	return out, nil
}

func (r *memInterestRepo) FindByPlotIDs(ctx context.Context, plotIDs []string) ([]*entity.BuyerInterest, error) {
	wanted := make(map[string]bool, len(plotIDs))
	for _, id := range plotIDs {
		wanted[id] = true
	}
	var out []*entity.BuyerInterest
	for i := range r.s.interests {
		if wanted[r.s.interests[i].PlotID] {
			b := r.s.interests[i]
			out = append(out, &b)
		}
	}
	return out, nil
}

func (r *memInterestRepo) Delete(ctx context.Context, id string) error {
	for i := range r.s.interests {
		if r.s.interests[i].ID == id {
			r.s.interests = append(r.s.interests[:i], r.s.interests[i+1:]...)
			return nil
		}
	}
	return entity.ErrNotFound
}

type memActivityRepo struct{ s *memStore }

func (r *memActivityRepo) Append(ctx context.Context, a *entity.ActivityLog) error {
	r.s.logs = append(r.s.logs, *a)
	return nil
}

func (r *memActivityRepo) Recent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	var out []*entity.ActivityLog
	for i := len(r.s.logs) - 1; i >= 0 && len(out) < limit; i-- {
		a := r.s.logs[i]
		out = append(out, &a)
	}
	return out, nil
}
