package domain

import (
	"context"
	"fmt"
)

// Vacation is the typed view of a vacations row.
type Vacation struct {
	VacationID    string `json:"vacation_id"`
	CountryID     string `json:"country_id"`
	Description   string `json:"vacation_description"`
	BeginningDate string `json:"beginning_date"`
	EndDate       string `json:"end_date"`
	Price         int    `json:"price"`
	ImageFileName string `json:"picture_file_name"`
}

// VacationFromRow decodes a `SELECT * FROM vacations` row.
func VacationFromRow(row Row) (Vacation, error) {
	if len(row) < 7 {
		return Vacation{}, fmt.Errorf("vacations row has %d columns, want 7", len(row))
	}
	price, err := row.Int(5)
	if err != nil {
		return Vacation{}, fmt.Errorf("decode price: %w", err)
	}
	return Vacation{
		VacationID:    row.String(0),
		CountryID:     row.String(1),
		Description:   row.String(2),
		BeginningDate: row.String(3),
		EndDate:       row.String(4),
		Price:         price,
		ImageFileName: row.String(6),
	}, nil
}

// VacationInput carries the caller's fields for adding or updating a
// vacation. Price is a pointer so that a missing price is distinguishable
// from zero. An empty ImageFileName on update leaves the stored image as is.
type VacationInput struct {
	VacationID    string
	CountryID     string
	Description   string
	BeginningDate string
	EndDate       string
	Price         *int
	ImageFileName string
}

// VacationRepository defines the data access interface for vacations.
type VacationRepository interface {
	Add(ctx context.Context, values Pairs) error
	Update(ctx context.Context, values Pairs, vacationID string) error
	ListAll(ctx context.Context, orderBy ...string) ([]Row, error)
	DeleteByID(ctx context.Context, vacationID string) error
	GetColumnByID(ctx context.Context, vacationID string, columns ...string) ([]Row, error)
}

// VacationFacade defines the business rules for vacations.
type VacationFacade interface {
	Add(ctx context.Context, in VacationInput) error
	Update(ctx context.Context, in VacationInput) error
	Delete(ctx context.Context, vacationID string) error
	Get(ctx context.Context, vacationID string) (*Vacation, error)
	ListOrderedByStartDate(ctx context.Context) ([]Vacation, error)
}
