package user

import (
	"github.com/simp-lee/vacations/internal/domain"
	"github.com/simp-lee/vacations/internal/pkg"
)

// RegisterRequest represents the input for registering a new user.
type RegisterRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	RoleID    string `json:"role_id" validate:"required"`
}

func (r RegisterRequest) Validate() error { return pkg.Validate(r) }

// Pairs lays the request out in users column order with the parsed role.
func (r RegisterRequest) Pairs(role domain.Role) domain.Pairs {
	return domain.NewPairs(
		domain.P(userIDColumn, r.UserID),
		domain.P("first_name", r.FirstName),
		domain.P("last_name", r.LastName),
		domain.P(emailColumn, r.Email),
		domain.P(passwordColumn, r.Password),
		domain.P(roleIDColumn, int(role)),
	)
}

// LogInRequest represents the input for logging in.
type LogInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r LogInRequest) Validate() error { return pkg.Validate(r) }

// LikeRequest identifies one row of the likes table.
type LikeRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	VacationID string `json:"vacation_id" validate:"required"`
}

func (r LikeRequest) Validate() error { return pkg.Validate(r) }
