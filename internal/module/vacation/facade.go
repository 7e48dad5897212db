package vacation

import (
	"context"
	"fmt"
	"time"

	"github.com/simp-lee/vacations/internal/domain"
	"github.com/simp-lee/vacations/internal/pkg"
)

const maxPrice = 10000

var (
	errPriceTooLow  = domain.NewValidationError("Vacation cannot be priced 0 or lower.")
	errPriceTooHigh = domain.NewValidationError("Vacation cannot be priced higher than 10,000")
	errEndTooEarly  = domain.NewValidationError("Vacation end date cannot be earlier than the beginning date.")
	errBeginPassed  = domain.NewValidationError("Vacation beginning date cannot be earlier than today.")
)

// vacationFacade implements domain.VacationFacade.
type vacationFacade struct {
	repo domain.VacationRepository
	now  func() time.Time
}

// NewVacationFacade creates a new VacationFacade with the given repository.
func NewVacationFacade(repo domain.VacationRepository) domain.VacationFacade {
	return &vacationFacade{repo: repo, now: time.Now}
}

// Add validates a new vacation and inserts it. A duplicate id is reported
// by the datastore.
func (f *vacationFacade) Add(ctx context.Context, in domain.VacationInput) error {
	ctx = pkg.WithOperation(ctx, "vacation.add")
	req := addRequest(in)
	if err := req.Validate(); err != nil {
		return err
	}
	begin, err := checkTerms(*req.Price, req.BeginningDate, req.EndDate)
	if err != nil {
		return err
	}
	if begin.Before(f.today()) {
		return errBeginPassed
	}
	return f.repo.Add(ctx, req.Pairs())
}

// Update validates the input and rewrites an existing vacation. A past
// beginning date is accepted.
func (f *vacationFacade) Update(ctx context.Context, in domain.VacationInput) error {
	ctx = pkg.WithOperation(ctx, "vacation.update")
	req := updateRequest(in)
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := checkTerms(*req.Price, req.BeginningDate, req.EndDate); err != nil {
		return err
	}
	if err := f.mustExist(ctx, req.VacationID); err != nil {
		return err
	}
	return f.repo.Update(ctx, req.Pairs(), req.VacationID)
}

func (f *vacationFacade) Delete(ctx context.Context, vacationID string) error {
	ctx = pkg.WithOperation(ctx, "vacation.delete")
	if err := f.mustExist(ctx, vacationID); err != nil {
		return err
	}
	return f.repo.DeleteByID(ctx, vacationID)
}

func (f *vacationFacade) Get(ctx context.Context, vacationID string) (*domain.Vacation, error) {
	ctx = pkg.WithOperation(ctx, "vacation.get")
	rows, err := f.repo.GetColumnByID(ctx, vacationID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, notFound(vacationID)
	}
	v, err := domain.VacationFromRow(rows[0])
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "cannot decode vacation", err)
	}
	return &v, nil
}

// ListOrderedByStartDate returns all vacations, earliest beginning date first.
func (f *vacationFacade) ListOrderedByStartDate(ctx context.Context) ([]domain.Vacation, error) {
	ctx = pkg.WithOperation(ctx, "vacation.list")
	rows, err := f.repo.ListAll(ctx, beginningDateColumn)
	if err != nil {
		return nil, err
	}
	vacations := make([]domain.Vacation, 0, len(rows))
	for _, row := range rows {
		v, err := domain.VacationFromRow(row)
		if err != nil {
			return nil, domain.NewAppError(domain.CodeInternal, "cannot decode vacation", err)
		}
		vacations = append(vacations, v)
	}
	return vacations, nil
}

// checkTerms validates price and dates in that order and returns the
// parsed beginning date.
func checkTerms(price int, beginning, end string) (time.Time, error) {
	if price <= 0 {
		return time.Time{}, errPriceTooLow
	}
	if price > maxPrice {
		return time.Time{}, errPriceTooHigh
	}
	begin, err := parseDate(beginning)
	if err != nil {
		return time.Time{}, err
	}
	finish, err := parseDate(end)
	if err != nil {
		return time.Time{}, err
	}
	if finish.Before(begin) {
		return time.Time{}, errEndTooEarly
	}
	return begin, nil
}

func (f *vacationFacade) mustExist(ctx context.Context, vacationID string) error {
	rows, err := f.repo.GetColumnByID(ctx, vacationID, vacationIDColumn)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return notFound(vacationID)
	}
	return nil
}

// today is the current local date, expressed in UTC like parsed dates.
func (f *vacationFacade) today() time.Time {
	y, m, d := f.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("Invalid date format: %s. Please use 'YYYY-MM-DD'.", s), err)
	}
	return t, nil
}

func notFound(vacationID string) error {
	return domain.NewAppError(domain.CodeNotFound,
		fmt.Sprintf("Vacation with id %s does not exist.", vacationID), nil)
}
