package application

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/imnahmed17/user-order-api/internal/domain/entity"
	"github.com/imnahmed17/user-order-api/internal/infrastructure/memory"
	"github.com/imnahmed17/user-order-api/pkg/helpers"
)

func newTestService() (*Service, *memory.UserRepository) {
	repo := memory.NewUserRepository()
	return NewService(repo, nil, bcrypt.MinCost), repo
}

func validUser(userID string) *entity.User {
	return &entity.User{
		UserID:   userID,
		Username: "u-" + userID,
		Password: "secret123",
		FullName: entity.FullName{FirstName: "Alice", LastName: "Rahman"},
		Age:      25,
		Email:    userID + "@example.com",
		IsActive: true,
		Hobbies:  []string{"reading"},
		Address:  entity.Address{Street: "1 Main Road", City: "Dhaka", Country: "Bangladesh"},
		Orders:   []entity.Order{},
	}
}

func TestCreateUser_HashesAndRedactsPassword(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, validUser("u1"))
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if created.Password != "" {
		t.Errorf("returned user carries credential %q", created.Password)
	}

	stored, err := repo.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.Password == "" || stored.Password == "secret123" {
		t.Fatalf("stored credential is not hashed: %q", stored.Password)
	}
	if !helpers.CompareHashAndPassword(stored.Password, "secret123") {
		t.Error("stored hash does not match original plaintext")
	}
}

func TestCreateUser_DuplicateConflicts(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, validUser("u1")); err != nil {
		t.Fatalf("first CreateUser() error = %v", err)
	}
	_, err := svc.CreateUser(ctx, validUser("u1"))
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("second CreateUser() error = %v, want ErrUserExists", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.GetUser(context.Background(), "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUser() error = %v, want ErrUserNotFound", err)
	}
}

func TestDeleteUser_SoftDeleteBoundary(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, validUser("u1")); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if err := svc.DeleteUser(ctx, "u1"); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}

	if _, err := svc.GetUser(ctx, "u1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetUser() after delete error = %v, want ErrUserNotFound", err)
	}

	users, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	for _, u := range users {
		if u.UserID == "u1" {
			t.Error("soft-deleted user surfaced by ListUsers()")
		}
	}

	// the delete is not silently idempotent
	if err := svc.DeleteUser(ctx, "u1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("second DeleteUser() error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateUser_FullReplaceRoundTrip(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, validUser("u1")); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	newData := validUser("u1")
	newData.Username = "renamed"
	newData.Password = "newsecret"
	newData.FullName = entity.FullName{FirstName: "Bob", LastName: "Karim"}
	newData.Age = 30
	newData.Email = "renamed@example.com"
	newData.Hobbies = []string{"chess", "cycling"}

	if _, err := svc.UpdateUser(ctx, "u1", newData); err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}

	got, err := svc.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUser() error = %v", err)
	}
	if got.Username != "renamed" || got.Age != 30 || got.Email != "renamed@example.com" {
		t.Errorf("update did not replace fields: %+v", got)
	}
	if got.FullName.FirstName != "Bob" || got.FullName.LastName != "Karim" {
		t.Errorf("full name not replaced: %+v", got.FullName)
	}
	if len(got.Hobbies) != 2 || got.Hobbies[0] != "chess" {
		t.Errorf("hobbies not replaced: %v", got.Hobbies)
	}
	if got.Password != "" {
		t.Errorf("GetUser() surfaced credential %q", got.Password)
	}

	// a supplied plaintext credential is re-hashed on update
	stored, err := repo.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if !helpers.CompareHashAndPassword(stored.Password, "newsecret") {
		t.Error("updated credential was not re-hashed from the new plaintext")
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.UpdateUser(context.Background(), "missing", validUser("missing"))
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UpdateUser() error = %v, want ErrUserNotFound", err)
	}
}

func TestAddOrder_AndTotalPrice(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, validUser("u1")); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}

	orders, err := svc.AddOrder(ctx, "u1", entity.Order{ProductName: "Book", Price: 10, Quantity: 2})
	if err != nil {
		t.Fatalf("AddOrder() error = %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("AddOrder() returned %d orders, want 1", len(orders))
	}

	orders, err = svc.AddOrder(ctx, "u1", entity.Order{ProductName: "Pen", Price: 2, Quantity: 5})
	if err != nil {
		t.Fatalf("AddOrder() error = %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("AddOrder() returned %d orders, want 2", len(orders))
	}
	// insertion order preserved
	if orders[0].ProductName != "Book" || orders[1].ProductName != "Pen" {
		t.Errorf("orders out of insertion order: %+v", orders)
	}

	total, err := svc.TotalPrice(ctx, "u1")
	if err != nil {
		t.Fatalf("TotalPrice() error = %v", err)
	}
	if total != 30.00 {
		t.Errorf("TotalPrice() = %v, want 30.00", total)
	}
}

func TestTotalPrice_EmptyOrders(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, validUser("u1")); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	_, err := svc.TotalPrice(ctx, "u1")
	if !errors.Is(err, ErrNoOrders) {
		t.Errorf("TotalPrice() error = %v, want ErrNoOrders", err)
	}
}

func TestOrders_NotFoundAfterDelete(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateUser(ctx, validUser("u1")); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if _, err := svc.AddOrder(ctx, "u1", entity.Order{ProductName: "Book", Price: 10, Quantity: 2}); err != nil {
		t.Fatalf("AddOrder() error = %v", err)
	}
	if err := svc.DeleteUser(ctx, "u1"); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}

	if _, err := svc.AddOrder(ctx, "u1", entity.Order{ProductName: "Pen", Price: 2, Quantity: 5}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("AddOrder() after delete error = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.ListOrders(ctx, "u1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("ListOrders() after delete error = %v, want ErrUserNotFound", err)
	}
	if _, err := svc.TotalPrice(ctx, "u1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("TotalPrice() after delete error = %v, want ErrUserNotFound", err)
	}
}
