package services

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/users-crud/internal/logger"
	"github.com/sbilibin2017/users-crud/internal/models"
	"github.com/sbilibin2017/users-crud/internal/repositories"
)

// Error variables
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, offset, limit int) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
	Update(ctx context.Context, user models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserService implements the user resource rules on top of the repositories.
type UserService struct {
	reader    UserReader
	writer    UserWriter
	publisher *EventPublisher
}

// NewUserService creates a new UserService instance.
// publisher may be nil, in which case no events are sent.
func NewUserService(reader UserReader, writer UserWriter, publisher *EventPublisher) *UserService {
	return &UserService{
		reader:    reader,
		writer:    writer,
		publisher: publisher,
	}
}

// now returns the current time at storage precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// CreateUser stores a new user unless the email is already taken.
func (svc *UserService) CreateUser(ctx context.Context, name, email string) (*models.User, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "email", email, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Warnw("email already registered", "email", email)
		return nil, ErrEmailAlreadyRegistered
	}

	ts := now()
	created, err := svc.writer.Create(ctx, models.User{
		Name:      name,
		Email:     email,
		CreatedAt: ts,
		UpdatedAt: ts,
	})
	if errors.Is(err, repositories.ErrUniqueViolation) {
		logger.Log.Warnw("email registered concurrently", "email", email)
		return nil, ErrEmailAlreadyRegistered
	}
	if err != nil {
		logger.Log.Errorw("failed to create user", "email", email, "err", err)
		return nil, err
	}

	svc.publisher.Publish(ctx, models.UserCreated, *created)
	return created, nil
}

// ListUsers returns a page of users ordered by id.
func (svc *UserService) ListUsers(ctx context.Context, skip, limit int) ([]models.User, error) {
	users, err := svc.reader.List(ctx, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list users", "skip", skip, "limit", limit, "err", err)
		return nil, err
	}
	return users, nil
}

// GetUser returns the user with the given id.
func (svc *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser applies the supplied fields of upd to the stored user.
func (svc *UserService) UpdateUser(ctx context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	current, err := svc.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.ChangesEmail(current.Email) {
		holder, err := svc.reader.GetByEmail(ctx, *upd.Email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "email", *upd.Email, "err", err)
			return nil, err
		}
		if holder != nil && holder.ID != id {
			logger.Log.Warnw("email already registered", "email", *upd.Email, "id", id)
			return nil, ErrEmailAlreadyRegistered
		}
	}

	merged := upd.Apply(*current)
	merged.UpdatedAt = now()
	if !merged.UpdatedAt.After(current.UpdatedAt) {
		merged.UpdatedAt = current.UpdatedAt.Add(time.Microsecond)
	}

	updated, err := svc.writer.Update(ctx, merged)
	if errors.Is(err, repositories.ErrUniqueViolation) {
		logger.Log.Warnw("email registered concurrently", "email", merged.Email, "id", id)
		return nil, ErrEmailAlreadyRegistered
	}
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	svc.publisher.Publish(ctx, models.UserUpdated, *updated)
	return updated, nil
}

// DeleteUser permanently removes the user with the given id.
func (svc *UserService) DeleteUser(ctx context.Context, id int64) error {
	current, err := svc.GetUser(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	svc.publisher.Publish(ctx, models.UserDeleted, *current)
	return nil
}
