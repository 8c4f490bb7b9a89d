package storage

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
)

// ListUsers returns one page of users ordered by ID ascending, plus the total row count.
//
// Parameters:
//   - page: 1-based page number
//   - perPage: page size, must be positive
//
// It returns ErrInvalidPage when the window is not positive or its offset
// does not fit in an int.
func (s *Storage) ListUsers(ctx context.Context, page, perPage int) ([]User, int64, error) {
	if page < 1 || perPage < 1 || page-1 > math.MaxInt/perPage {
		return nil, 0, fmt.Errorf("page=%d per_page=%d: %w", page, perPage, ErrInvalidPage)
	}

	query := s.db.WithContext(ctx).Model(&User{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	users := make([]User, 0, perPage)
	if err := query.
		Order("id ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// GetUser loads a single user by ID. It returns ErrNotFound when no row matches.
func (s *Storage) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, translateError(err))
	}
	return &user, nil
}

// CreateUser inserts user and fills in its ID and timestamps.
// It returns ErrDuplicate when the email is already taken.
func (s *Storage) CreateUser(ctx context.Context, user *User) error {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", translateError(err))
	}
	return nil
}

// DeleteUser removes the user with the given ID. It returns ErrNotFound when no row matches.
func (s *Storage) DeleteUser(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&User{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete user %d: %w", id, ErrNotFound)
	}
	return nil
}
