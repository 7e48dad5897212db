package vacation

import (
	"context"

	"github.com/simp-lee/vacations/internal/domain"
	"github.com/simp-lee/vacations/internal/pkg"
)

const (
	vacationsTable      = "vacations"
	vacationIDColumn    = "vacation_id"
	beginningDateColumn = "beginning_date"
)

// vacationRepository implements domain.VacationRepository on top of a BaseDAO.
type vacationRepository struct {
	dao *pkg.BaseDAO
}

// NewVacationRepository creates a new VacationRepository backed by the given BaseDAO.
func NewVacationRepository(dao *pkg.BaseDAO) domain.VacationRepository {
	return &vacationRepository{dao: dao}
}

func (r *vacationRepository) Add(ctx context.Context, values domain.Pairs) error {
	return r.dao.Add(ctx, vacationsTable, values)
}

func (r *vacationRepository) Update(ctx context.Context, values domain.Pairs, vacationID string) error {
	return r.dao.Update(ctx, vacationsTable, values, byVacationID(vacationID))
}

// ListAll returns every vacation, ordered by the given columns if any.
func (r *vacationRepository) ListAll(ctx context.Context, orderBy ...string) ([]domain.Row, error) {
	return r.dao.ListAll(ctx, vacationsTable, orderBy...)
}

func (r *vacationRepository) DeleteByID(ctx context.Context, vacationID string) error {
	return r.dao.DeleteByID(ctx, vacationsTable, byVacationID(vacationID))
}

func (r *vacationRepository) GetColumnByID(ctx context.Context, vacationID string, columns ...string) ([]domain.Row, error) {
	return r.dao.GetColumnByID(ctx, vacationsTable, columns, byVacationID(vacationID))
}

func byVacationID(vacationID string) domain.Pairs {
	return domain.NewPairs(domain.P(vacationIDColumn, vacationID))
}
