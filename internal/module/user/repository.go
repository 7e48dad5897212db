package user

import (
	"context"

	"github.com/simp-lee/vacations/internal/domain"
	"github.com/simp-lee/vacations/internal/pkg"
)

const (
	usersTable       = "users"
	likesTable       = "likes"
	userIDColumn     = "user_id"
	vacationIDColumn = "vacation_id"
	emailColumn      = "email"
	passwordColumn   = "password"
	roleIDColumn     = "role_id"
)

var errAdminInsert = domain.NewAppError(domain.CodePermission,
	"admins can only be added through the database itself", nil)

// userRepository implements domain.UserRepository on top of a BaseDAO.
type userRepository struct {
	dao *pkg.BaseDAO
}

// NewUserRepository creates a new UserRepository backed by the given BaseDAO.
func NewUserRepository(dao *pkg.BaseDAO) domain.UserRepository {
	return &userRepository{dao: dao}
}

// Add inserts a user row. Rows carrying the admin role are refused.
func (r *userRepository) Add(ctx context.Context, values domain.Pairs) error {
	if v, ok := values.Lookup(roleIDColumn); ok && isAdminRole(v) {
		return errAdminInsert
	}
	return r.dao.Add(ctx, usersTable, values)
}

func (r *userRepository) Update(ctx context.Context, values domain.Pairs, userID string) error {
	return r.dao.Update(ctx, usersTable, values, byUserID(userID))
}

func (r *userRepository) ListAll(ctx context.Context) ([]domain.Row, error) {
	return r.dao.ListAll(ctx, usersTable, userIDColumn)
}

func (r *userRepository) DeleteByID(ctx context.Context, userID string) error {
	return r.dao.DeleteByID(ctx, usersTable, byUserID(userID))
}

func (r *userRepository) GetColumnByID(ctx context.Context, userID string, columns ...string) ([]domain.Row, error) {
	return r.dao.GetColumnByID(ctx, usersTable, columns, byUserID(userID))
}

// FindByEmailAndPassword compares the stored plaintext password.
func (r *userRepository) FindByEmailAndPassword(ctx context.Context, email, password string) ([]domain.Row, error) {
	where := domain.NewPairs(domain.P(emailColumn, email), domain.P(passwordColumn, password))
	return r.dao.GetColumnByID(ctx, usersTable, nil, where)
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	rows, err := r.dao.GetColumnByID(ctx, usersTable, []string{userIDColumn},
		domain.NewPairs(domain.P(emailColumn, email)))
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// Like inserts a (user_id, vacation_id) row into likes.
func (r *userRepository) Like(ctx context.Context, userID, vacationID string) error {
	return r.dao.Add(ctx, likesTable, likeKey(userID, vacationID))
}

// Unlike deletes exactly one like by its composite key.
func (r *userRepository) Unlike(ctx context.Context, userID, vacationID string) error {
	return r.dao.DeleteByID(ctx, likesTable, likeKey(userID, vacationID))
}

func (r *userRepository) LikeExists(ctx context.Context, userID, vacationID string) (bool, error) {
	rows, err := r.dao.GetColumnByID(ctx, likesTable,
		[]string{userIDColumn, vacationIDColumn}, likeKey(userID, vacationID))
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func byUserID(userID string) domain.Pairs {
	return domain.NewPairs(domain.P(userIDColumn, userID))
}

func likeKey(userID, vacationID string) domain.Pairs {
	return domain.NewPairs(domain.P(userIDColumn, userID), domain.P(vacationIDColumn, vacationID))
}

// isAdminRole recognises the admin role in whatever form a caller bound it.
func isAdminRole(v any) bool {
	switch role := v.(type) {
	case domain.Role:
		return role.IsAdmin()
	case int:
		return domain.Role(role).IsAdmin()
	case int64:
		return domain.Role(role).IsAdmin()
	case string:
		parsed, err := domain.ParseRole(role)
		return err == nil && parsed.IsAdmin()
	default:
		return false
	}
}
