package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/imnahmed17/user-order-api/internal/domain/entity"
	"github.com/imnahmed17/user-order-api/internal/domain/repository"
)

func seed(userID, username, email string) *entity.User {
	return &entity.User{
		UserID:   userID,
		Username: username,
		Password: "hash",
		Email:    email,
		IsActive: true,
	}
}

func TestCreate_UniquenessAmongNonDeleted(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		second  *entity.User
		wantErr error
	}{
		{name: "duplicate userId", second: seed("u1", "other", "other@example.com"), wantErr: repository.ErrDuplicateKey},
		{name: "duplicate username", second: seed("u2", "alice", "other@example.com"), wantErr: repository.ErrDuplicateKey},
		{name: "duplicate email", second: seed("u2", "other", "alice@example.com"), wantErr: repository.ErrDuplicateKey},
		{name: "all keys fresh", second: seed("u2", "other", "other@example.com"), wantErr: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := NewUserRepository()
			if err := repo.Create(ctx, seed("u1", "alice", "alice@example.com")); err != nil {
				t.Fatalf("first Create() error = %v", err)
			}
			err := repo.Create(ctx, tc.second)
			if !errors.Is(err, tc.wantErr) && err != tc.wantErr {
				t.Errorf("second Create() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCreate_ReusesKeysOfDeletedUser(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	if err := repo.Create(ctx, seed("u1", "alice", "alice@example.com")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.SoftDelete(ctx, "u1"); err != nil {
		t.Fatalf("SoftDelete() error = %v", err)
	}
	// uniqueness only binds non-deleted users
	if err := repo.Create(ctx, seed("u1", "alice", "alice@example.com")); err != nil {
		t.Errorf("Create() after soft delete error = %v, want nil", err)
	}
}

func TestAppendOrder_ReturnsFullSequence(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	if err := repo.Create(ctx, seed("u1", "alice", "alice@example.com")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	orders, err := repo.AppendOrder(ctx, "u1", entity.Order{ProductName: "Book", Price: 10, Quantity: 2})
	if err != nil {
		t.Fatalf("AppendOrder() error = %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("got %d orders, want 1", len(orders))
	}

	orders, err = repo.AppendOrder(ctx, "u1", entity.Order{ProductName: "Pen", Price: 2, Quantity: 5})
	if err != nil {
		t.Fatalf("AppendOrder() error = %v", err)
	}
	if len(orders) != 2 || orders[0].ProductName != "Book" || orders[1].ProductName != "Pen" {
		t.Errorf("unexpected sequence: %+v", orders)
	}
}

func TestClone_IsolatesCallerMutations(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u := seed("u1", "alice", "alice@example.com")
	u.Hobbies = []string{"reading"}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	got.Hobbies[0] = "mutated"

	again, err := repo.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if again.Hobbies[0] != "reading" {
		t.Error("stored document mutated through a returned copy")
	}
}
