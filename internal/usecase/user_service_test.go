package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plotvista/plotvista/internal/entity"
)

func TestUserService_CreateHashesPasswordAndAudits(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewUserService(store, fakeHasher{})

	user, err := svc.Create(ctx, adminCaller(), CreateUserInput{
		Name:     "John Sales",
		Email:    "sales@example.com",
		Password: "password123",
		Role:     entity.RoleSalesperson,
	})

	assert.NoError(t, err)
	assert.Equal(t, "hashed:password123", user.PasswordHash)

	logs, _ := store.Activities().Recent(ctx, 10)
	assert.Len(t, logs, 1)
	assert.Equal(t, "Created User", logs[0].Action)
	assert.Equal(t, entity.ActivityEntityUser, logs[0].EntityType)
	assert.Contains(t, logs[0].Details, "salesperson")
	assert.Contains(t, logs[0].Details, "John Sales")
}

func TestUserService_CreateForbiddenForSalespeople(t *testing.T) {
	svc := NewUserService(newMemStore(), fakeHasher{})

	_, err := svc.Create(context.Background(), salesCaller("sp-1"), CreateUserInput{
		Name:     "Sneaky",
		Email:    "sneaky@example.com",
		Password: "password123",
		Role:     entity.RoleAdmin,
	})

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeForbidden, domainErr.Code)
}

func TestUserService_DuplicateEmailRejected(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewUserService(store, fakeHasher{})

	input := CreateUserInput{
		Name:     "John Sales",
		Email:    "sales@example.com",
		Password: "password123",
		Role:     entity.RoleSalesperson,
	}
	_, err := svc.Create(ctx, adminCaller(), input)
	assert.NoError(t, err)

	_, err = svc.Create(ctx, adminCaller(), input)
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, domainErr.Code)
	assert.Equal(t, "email already exists", domainErr.Message)

	// Failed creation leaves no audit trace behind.
	logs, _ := store.Activities().Recent(ctx, 10)
	assert.Len(t, logs, 1)
}

func TestUserService_DeleteAuditsAndRemoves(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewUserService(store, fakeHasher{})

	user := entity.NewUser("John Sales", "sales@example.com", "hash", entity.RoleSalesperson, "")
	assert.NoError(t, store.Users().Create(ctx, user))

	assert.NoError(t, svc.Delete(ctx, adminCaller(), user.ID))

	_, err := store.Users().FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	logs, _ := store.Activities().Recent(ctx, 10)
	assert.Len(t, logs, 1)
	assert.Equal(t, "Deleted User", logs[0].Action)
}

func TestUserService_SalespersonsAdminOnly(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewUserService(store, fakeHasher{})

	assert.NoError(t, store.Users().Create(ctx, entity.NewUser("Admin User", "admin@example.com", "h", entity.RoleAdmin, "")))
	assert.NoError(t, store.Users().Create(ctx, entity.NewUser("John Sales", "sales@example.com", "h", entity.RoleSalesperson, "")))

	users, err := svc.Salespersons(ctx, adminCaller())
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, entity.RoleSalesperson, users[0].Role)

	_, err = svc.Salespersons(ctx, salesCaller("sp-1"))
	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeForbidden, domainErr.Code)
}
