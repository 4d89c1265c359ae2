package usecase

import (
	"context"
	"time"

	"github.com/plotvista/plotvista/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}

type LeadRepository interface {
	Create(ctx context.Context, l *entity.Lead) error
	Update(ctx context.Context, l *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindAll(ctx context.Context) ([]*entity.Lead, error)
	FindByAssignee(ctx context.Context, userID string) ([]*entity.Lead, error)
	FindByAssigneeAndStatus(ctx context.Context, userID string, status entity.LeadStatus) ([]*entity.Lead, error)
	// FindFollowUpsBetween lists leads with a follow-up date inside [from, to],
	// ordered by follow-up date ascending. Empty assigneeID means all leads.
	FindFollowUpsBetween(ctx context.Context, assigneeID string, from, to time.Time) ([]*entity.Lead, error)
	SetStatus(ctx context.Context, id string, status entity.LeadStatus) error
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status entity.LeadStatus) (int, error)
	CountUnassigned(ctx context.Context) (int, error)
	CountByAssignee(ctx context.Context, userID string) (int, error)
	CountFollowUpsBetween(ctx context.Context, assigneeID string, from, to time.Time) (int, error)
}

type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	FindByID(ctx context.Context, id string) (*entity.Project, error)
	FindAll(ctx context.Context) ([]*entity.Project, error)
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Project, error)
	CountAll(ctx context.Context) (int, error)
}

type PlotRepository interface {
	Create(ctx context.Context, p *entity.Plot) error
	FindByID(ctx context.Context, id string) (*entity.Plot, error)
	FindAll(ctx context.Context) ([]*entity.Plot, error)
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Plot, error)
	FindByProjectID(ctx context.Context, projectID string) ([]*entity.Plot, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Plot, error)
	// Transition moves a plot into the given status and stamps bookedBy. The
	// update is conditional on the current status still being bookable:
	// entity.ErrPlotUnavailable is returned when it is not, entity.ErrNotFound
	// when the plot does not exist.
	Transition(ctx context.Context, plotID, leadID string, status entity.PlotStatus) error
	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, statuses ...entity.PlotStatus) (int, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
	FindByLeadIDs(ctx context.Context, leadIDs []string) ([]*entity.Payment, error)
	SumAmount(ctx context.Context) (int64, error)
	SumAmountByLeadIDs(ctx context.Context, leadIDs []string) (int64, error)
}

type BuyerInterestRepository interface {
	Create(ctx context.Context, b *entity.BuyerInterest) error
	FindByPlotID(ctx context.Context, plotID string) ([]*entity.BuyerInterest, error)
	FindByPlotIDs(ctx context.Context, plotIDs []string) ([]*entity.BuyerInterest, error)
	Delete(ctx context.Context, id string) error
}

// ActivityRepository is append-only. Entries are never updated or deleted.
type ActivityRepository interface {
	Append(ctx context.Context, a *entity.ActivityLog) error
	Recent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
}

type Repositories interface {
	Users() UserRepository
	Leads() LeadRepository
	Projects() ProjectRepository
	Plots() PlotRepository
	Payments() PaymentRepository
	BuyerInterests() BuyerInterestRepository
	Activities() ActivityRepository
}

// Store is the persistence boundary handed to usecases. WithinTx runs fn as a
// single unit of work: every write inside it commits together or not at all.
type Store interface {
	Repositories
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}

// PasswordHasher abstracts the credential hashing used by login and user
// creation (bcrypt in production).
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// TokenIssuer mints the opaque bearer credential returned on login.
type TokenIssuer interface {
	Issue(u *entity.User) (string, error)
}
