package application

import (
	"context"
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/imnahmed17/user-order-api/internal/domain/entity"
	repo "github.com/imnahmed17/user-order-api/internal/domain/repository"
	"github.com/imnahmed17/user-order-api/pkg/helpers"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrNoOrders     = errors.New("no orders found")
)

type Service struct {
	Repo       repo.UserRepository
	Logger     *logrus.Logger
	BcryptCost int
}

func NewService(r repo.UserRepository, logger *logrus.Logger, bcryptCost int) *Service {
	return &Service{Repo: r, Logger: logger, BcryptCost: bcryptCost}
}

// CreateUser hashes the plaintext credential exactly once, persists the
// user and returns the stored form with the credential redacted.
func (s *Service) CreateUser(ctx context.Context, u *entity.User) (*entity.User, error) {
	hash, err := helpers.HashPassword(u.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	u.Password = hash

	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.UserID).Error("create user failed")
		}
		return nil, err
	}

	return redact(u), nil
}

func (s *Service) ListUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.Repo.FindAll(ctx)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("list users failed")
		}
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return redact(u), nil
}

// UpdateUser replaces the document's fields with the supplied data.
// The userId is immutable; whatever the payload carries, the stored key
// stays the one addressed by the caller. A supplied plaintext credential
// is re-hashed before persisting.
func (s *Service) UpdateUser(ctx context.Context, userID string, u *entity.User) (*entity.User, error) {
	u.UserID = userID

	hash, err := helpers.HashPassword(u.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	u.Password = hash

	if err := s.Repo.Replace(ctx, userID, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, repo.ErrDuplicateKey):
			return nil, ErrUserExists
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("update user failed")
		}
		return nil, err
	}

	return redact(u), nil
}

// DeleteUser marks the user deleted without removing the document.
// Deleting an already soft-deleted user fails with ErrUserNotFound; the
// delete is not silently idempotent.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	if err := s.Repo.SoftDelete(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// AddOrder appends the order to the user's embedded sequence and returns
// the full updated sequence in insertion order.
func (s *Service) AddOrder(ctx context.Context, userID string, o entity.Order) ([]entity.Order, error) {
	orders, err := s.Repo.AppendOrder(ctx, userID, o)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return orders, nil
}

func (s *Service) ListOrders(ctx context.Context, userID string) ([]entity.Order, error) {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if u.Orders == nil {
		return []entity.Order{}, nil
	}
	return u.Orders, nil
}

// TotalPrice sums price times quantity across the user's orders, rounded
// to two decimal places. An empty sequence is a distinct failure rather
// than a zero total.
func (s *Service) TotalPrice(ctx context.Context, userID string) (float64, error) {
	u, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	if len(u.Orders) == 0 {
		return 0, ErrNoOrders
	}
	var total float64
	for _, o := range u.Orders {
		total += o.Total()
	}
	return math.Round(total*100) / 100, nil
}

func redact(u *entity.User) *entity.User {
	u.Password = ""
	return u
}
