package country

import (
	"context"

	"github.com/simp-lee/vacations/internal/domain"
	"github.com/simp-lee/vacations/internal/pkg"
)

const (
	countriesTable  = "countries"
	countryIDColumn = "country_id"
)

// countryRepository implements domain.CountryRepository on top of a BaseDAO.
type countryRepository struct {
	dao *pkg.BaseDAO
}

// NewCountryRepository creates a new CountryRepository backed by the given BaseDAO.
func NewCountryRepository(dao *pkg.BaseDAO) domain.CountryRepository {
	return &countryRepository{dao: dao}
}

func (r *countryRepository) Add(ctx context.Context, values domain.Pairs) error {
	return r.dao.Add(ctx, countriesTable, values)
}

func (r *countryRepository) Update(ctx context.Context, values domain.Pairs, countryID string) error {
	return r.dao.Update(ctx, countriesTable, values, byCountryID(countryID))
}

func (r *countryRepository) ListAll(ctx context.Context) ([]domain.Row, error) {
	return r.dao.ListAll(ctx, countriesTable, countryIDColumn)
}

// List returns every country ordered by id.
func (r *countryRepository) List(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	countries := make([]domain.Country, 0, len(rows))
	for _, row := range rows {
		c, err := domain.CountryFromRow(row)
		if err != nil {
			return nil, domain.NewAppError(domain.CodeInternal, "cannot decode country", err)
		}
		countries = append(countries, c)
	}
	return countries, nil
}

func (r *countryRepository) DeleteByID(ctx context.Context, countryID string) error {
	return r.dao.DeleteByID(ctx, countriesTable, byCountryID(countryID))
}

func (r *countryRepository) GetColumnByID(ctx context.Context, countryID string, columns ...string) ([]domain.Row, error) {
	return r.dao.GetColumnByID(ctx, countriesTable, columns, byCountryID(countryID))
}

func byCountryID(countryID string) domain.Pairs {
	return domain.NewPairs(domain.P(countryIDColumn, countryID))
}
