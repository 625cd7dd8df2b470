package domain

import (
	"context"
	"time"
)

// User represents a registered account. Users act both as buyers and as
// sellers; there is no separate role.
type User struct {
	ID           int64
	Name         string
	PhoneNumber  string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
}
