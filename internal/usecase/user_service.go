package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/plotvista/plotvista/internal/entity"
)

type UserService struct {
	Store     Store
	Passwords PasswordHasher
}

func NewUserService(store Store, passwords PasswordHasher) *UserService {
	return &UserService{
		Store:     store,
		Passwords: passwords,
	}
}

func (s *UserService) Create(ctx context.Context, caller entity.Caller, input CreateUserInput) (*entity.User, error) {
	if !caller.IsAdmin() {
		return nil, forbidden("only admins can create users")
	}
	if verrs := ValidateCreateUserInput(input); len(verrs) > 0 {
		return nil, validationFailed(verrs)
	}

	hash, err := s.Passwords.Hash(input.Password)
	if err != nil {
		return nil, &TechnicalError{Code: "HASH_ERROR", Message: "failed to hash password: " + err.Error()}
	}

	user := entity.NewUser(input.Name, input.Email, hash, input.Role, input.Phone)

	err = s.Store.WithinTx(ctx, func(r Repositories) error {
		if err := r.Users().Create(ctx, user); err != nil {
			return err
		}
		audit := entity.NewActivityLog(caller, "Created User", entity.ActivityEntityUser, user.ID,
			fmt.Sprintf("Created %s account for %s", user.Role, user.Name))
		return r.Activities().Append(ctx, audit)
	})
	if err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, &DomainError{Code: CodeValidation, Message: "email already exists"}
		}
		return nil, storage("failed to create user", err)
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, caller entity.Caller, id string) error {
	if !caller.IsAdmin() {
		return forbidden("only admins can delete users")
	}

	err := s.Store.WithinTx(ctx, func(r Repositories) error {
		user, err := r.Users().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("user %s: %w", id, err)
		}
		if err := r.Users().Delete(ctx, id); err != nil {
			return err
		}
		audit := entity.NewActivityLog(caller, "Deleted User", entity.ActivityEntityUser, user.ID,
			fmt.Sprintf("Deleted %s account for %s", user.Role, user.Name))
		return r.Activities().Append(ctx, audit)
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return notFound(err.Error())
		}
		return storage("failed to delete user", err)
	}
	return nil
}

func (s *UserService) Salespersons(ctx context.Context, caller entity.Caller) ([]*entity.User, error) {
	if !caller.IsAdmin() {
		return nil, forbidden("only admins can list salespersons")
	}
	users, err := s.Store.Users().FindByRole(ctx, entity.RoleSalesperson)
	if err != nil {
		return nil, storage("failed to fetch salespersons", err)
	}
	return users, nil
}
