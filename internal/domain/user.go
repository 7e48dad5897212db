package domain

import (
	"context"
	"fmt"
)

// User is the typed view of a users row.
type User struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	RoleID    Role   `json:"role_id"`
}

// UserFromRow decodes a `SELECT * FROM users` row.
func UserFromRow(row Row) (User, error) {
	if len(row) < 6 {
		return User{}, fmt.Errorf("users row has %d columns, want 6", len(row))
	}
	role, err := row.Int(5)
	if err != nil {
		return User{}, fmt.Errorf("decode role_id: %w", err)
	}
	return User{
		UserID:    row.String(0),
		FirstName: row.String(1),
		LastName:  row.String(2),
		Email:     row.String(3),
		Password:  row.String(4),
		RoleID:    Role(role),
	}, nil
}

// UserRepository defines the data access interface for the users table and
// the likes join table.
type UserRepository interface {
	Add(ctx context.Context, values Pairs) error
	Update(ctx context.Context, values Pairs, userID string) error
	ListAll(ctx context.Context) ([]Row, error)
	DeleteByID(ctx context.Context, userID string) error
	GetColumnByID(ctx context.Context, userID string, columns ...string) ([]Row, error)

	// FindByEmailAndPassword matches both fields exactly. Passwords are
	// stored and compared in plaintext.
	FindByEmailAndPassword(ctx context.Context, email, password string) ([]Row, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	Like(ctx context.Context, userID, vacationID string) error
	Unlike(ctx context.Context, userID, vacationID string) error
	LikeExists(ctx context.Context, userID, vacationID string) (bool, error)
}

// UserFacade defines the business rules for users and likes.
type UserFacade interface {
	Register(ctx context.Context, userID, firstName, lastName, email, password, roleID string) error
	// LogIn returns the matching users, or nil without error when no user
	// has the given email.
	LogIn(ctx context.Context, email, password string) ([]User, error)
	Like(ctx context.Context, userID, vacationID string) error
	Unlike(ctx context.Context, userID, vacationID string) error
}
