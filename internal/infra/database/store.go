package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/plotvista/plotvista/internal/usecase"
)

// querier is what both *sql.DB and *sql.Tx provide; every repository runs on
// it so the same code serves pooled and transactional access.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type repoSet struct {
	q querier
}

func (s repoSet) Users() usecase.UserRepository                   { return &UserRepository{db: s.q} }
func (s repoSet) Leads() usecase.LeadRepository                   { return &LeadRepository{db: s.q} }
func (s repoSet) Projects() usecase.ProjectRepository             { return &ProjectRepository{db: s.q} }
func (s repoSet) Plots() usecase.PlotRepository                   { return &PlotRepository{db: s.q} }
func (s repoSet) Payments() usecase.PaymentRepository             { return &PaymentRepository{db: s.q} }
func (s repoSet) BuyerInterests() usecase.BuyerInterestRepository { return &BuyerInterestRepository{db: s.q} }
func (s repoSet) Activities() usecase.ActivityRepository          { return &ActivityRepository{db: s.q} }

// Store implements usecase.Store over Postgres. WithinTx gives the callback a
// repository set bound to one transaction; the writes commit together or the
// rollback erases all of them.
type Store struct {
	repoSet
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		repoSet: repoSet{q: db},
		db:      db,
	}
}

func (s *Store) WithinTx(ctx context.Context, fn func(r usecase.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(repoSet{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Printf("rollback failed after %v: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// inArgs expands ids into ($1, $2, ...) placeholders plus the matching args.
func inArgs(ids []string) (string, []any) {
	marks := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		marks[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	return strings.Join(marks, ", "), args
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
