package vacation

import (
	"github.com/simp-lee/vacations/internal/domain"
	"github.com/simp-lee/vacations/internal/pkg"
)

// AddRequest represents the input for creating a vacation. Every field,
// including the image, is required.
type AddRequest struct {
	VacationID    string `json:"vacation_id" validate:"required"`
	CountryID     string `json:"country_id" validate:"required"`
	Description   string `json:"vacation_description" validate:"required"`
	BeginningDate string `json:"beginning_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
	Price         *int   `json:"price" validate:"required"`
	ImageFileName string `json:"picture_file_name" validate:"required"`
}

func (r AddRequest) Validate() error { return pkg.Validate(r) }

// Pairs lays the request out in vacations column order.
func (r AddRequest) Pairs() domain.Pairs {
	return domain.NewPairs(
		domain.P(vacationIDColumn, r.VacationID),
		domain.P("country_id", r.CountryID),
		domain.P("vacation_description", r.Description),
		domain.P(beginningDateColumn, r.BeginningDate),
		domain.P("end_date", r.EndDate),
		domain.P("price", *r.Price),
		domain.P("picture_file_name", r.ImageFileName),
	)
}

// UpdateRequest represents the input for rewriting a vacation. An empty
// ImageFileName keeps the stored image.
type UpdateRequest struct {
	VacationID    string `json:"vacation_id" validate:"required"`
	CountryID     string `json:"country_id" validate:"required"`
	Description   string `json:"vacation_description" validate:"required"`
	BeginningDate string `json:"beginning_date" validate:"required"`
	EndDate       string `json:"end_date" validate:"required"`
	Price         *int   `json:"price" validate:"required"`
	ImageFileName string `json:"picture_file_name"`
}

func (r UpdateRequest) Validate() error { return pkg.Validate(r) }

// Pairs returns the columns to rewrite: six without an image, seven with one.
func (r UpdateRequest) Pairs() domain.Pairs {
	set := []domain.Pair{
		domain.P("country_id", r.CountryID),
		domain.P("vacation_description", r.Description),
		domain.P(beginningDateColumn, r.BeginningDate),
		domain.P("end_date", r.EndDate),
		domain.P("price", *r.Price),
	}
	if r.ImageFileName != "" {
		set = append(set, domain.P("picture_file_name", r.ImageFileName))
	}
	return domain.NewPairs(domain.P(vacationIDColumn, r.VacationID), set...)
}

func addRequest(in domain.VacationInput) AddRequest {
	return AddRequest{
		VacationID:    in.VacationID,
		CountryID:     in.CountryID,
		Description:   in.Description,
		BeginningDate: in.BeginningDate,
		EndDate:       in.EndDate,
		Price:         in.Price,
		ImageFileName: in.ImageFileName,
	}
}

func updateRequest(in domain.VacationInput) UpdateRequest {
	return UpdateRequest(addRequest(in))
}
