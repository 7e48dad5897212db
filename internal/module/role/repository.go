package role

import (
	"context"

	"github.com/simp-lee/vacations/internal/domain"
	"github.com/simp-lee/vacations/internal/pkg"
)

const (
	rolesTable   = "roles"
	roleIDColumn = "role_id"
)

// roleRepository implements domain.RoleRepository on top of a BaseDAO.
type roleRepository struct {
	dao *pkg.BaseDAO
}

// NewRoleRepository creates a new RoleRepository backed by the given BaseDAO.
func NewRoleRepository(dao *pkg.BaseDAO) domain.RoleRepository {
	return &roleRepository{dao: dao}
}

func (r *roleRepository) Add(ctx context.Context, values domain.Pairs) error {
	return r.dao.Add(ctx, rolesTable, values)
}

func (r *roleRepository) Update(ctx context.Context, values domain.Pairs, roleID string) error {
	return r.dao.Update(ctx, rolesTable, values, byRoleID(roleID))
}

func (r *roleRepository) ListAll(ctx context.Context) ([]domain.Row, error) {
	return r.dao.ListAll(ctx, rolesTable, roleIDColumn)
}

// List returns every role ordered by id.
func (r *roleRepository) List(ctx context.Context) ([]domain.RoleRecord, error) {
	rows, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	roles := make([]domain.RoleRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := domain.RoleRecordFromRow(row)
		if err != nil {
			return nil, domain.NewAppError(domain.CodeInternal, "cannot decode role", err)
		}
		roles = append(roles, rec)
	}
	return roles, nil
}

func (r *roleRepository) DeleteByID(ctx context.Context, roleID string) error {
	return r.dao.DeleteByID(ctx, rolesTable, byRoleID(roleID))
}

func (r *roleRepository) GetColumnByID(ctx context.Context, roleID string, columns ...string) ([]domain.Row, error) {
	return r.dao.GetColumnByID(ctx, rolesTable, columns, byRoleID(roleID))
}

func byRoleID(roleID string) domain.Pairs {
	return domain.NewPairs(domain.P(roleIDColumn, roleID))
}
