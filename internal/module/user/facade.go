package user

import (
	"context"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/simp-lee/vacations/internal/domain"
	"github.com/simp-lee/vacations/internal/pkg"
)

const minPasswordLength = 4

// emailPattern: a 1-64 character local part that does not start with '.',
// a domain, and an alphabetic TLD of at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_%+-][a-zA-Z0-9._%+-]{0,63}@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	errInvalidEmail  = domain.NewValidationError("Invalid email format")
	errShortPassword = domain.NewValidationError("Password must be at least 4 characters long")
	errInvalidName   = domain.NewValidationError("Both first name and last name can contain alphabet letter only.")
	errEmailTaken    = domain.NewAppError(domain.CodeAlreadyExists,
		"Cannot register with an email that is already registered.", nil)
	errNotLiked = domain.NewAppError(domain.CodeNotFound,
		"Cannot unlike a vacation that was not liked.", nil)
)

// userFacade implements domain.UserFacade.
type userFacade struct {
	repo domain.UserRepository
}

// NewUserFacade creates a new UserFacade with the given repository.
func NewUserFacade(repo domain.UserRepository) domain.UserFacade {
	return &userFacade{repo: repo}
}

// Register validates the input, refuses a taken email, and inserts the user.
// The email check and the insert are separate statements; the unique index
// on users.email rejects a concurrent duplicate with CodeAlreadyExists.
func (f *userFacade) Register(ctx context.Context, userID, firstName, lastName, email, password, roleID string) error {
	ctx = pkg.WithOperation(ctx, "user.register")
	req := RegisterRequest{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		RoleID:    roleID,
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if !emailPattern.MatchString(req.Email) {
		return errInvalidEmail
	}
	if err := checkPassword(req.Password); err != nil {
		return err
	}
	if !isAlphabetic(req.FirstName) || !isAlphabetic(req.LastName) {
		return errInvalidName
	}
	role, err := domain.ParseRole(req.RoleID)
	if err != nil {
		return err
	}

	exists, err := f.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return errEmailTaken
	}
	return f.repo.Add(ctx, req.Pairs(role))
}

// LogIn returns the users matching email and password. An unknown email
// yields (nil, nil); a known email with the wrong password yields
// domain.ErrInvalidCredentials.
func (f *userFacade) LogIn(ctx context.Context, email, password string) ([]domain.User, error) {
	ctx = pkg.WithOperation(ctx, "user.log_in")
	req := LogInRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := checkPassword(req.Password); err != nil {
		return nil, err
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, errInvalidEmail
	}

	exists, err := f.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	rows, err := f.repo.FindByEmailAndPassword(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrInvalidCredentials
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		u, err := domain.UserFromRow(row)
		if err != nil {
			return nil, domain.NewAppError(domain.CodeInternal, "cannot decode user", err)
		}
		users = append(users, u)
	}
	return users, nil
}

// Like records that userID likes vacationID. Duplicates and unknown ids
// are reported by the datastore.
func (f *userFacade) Like(ctx context.Context, userID, vacationID string) error {
	ctx = pkg.WithOperation(ctx, "user.like")
	req := LikeRequest{UserID: userID, VacationID: vacationID}
	if err := req.Validate(); err != nil {
		return err
	}
	return f.repo.Like(ctx, req.UserID, req.VacationID)
}

// Unlike removes a single like and fails when there is none.
func (f *userFacade) Unlike(ctx context.Context, userID, vacationID string) error {
	ctx = pkg.WithOperation(ctx, "user.unlike")
	req := LikeRequest{UserID: userID, VacationID: vacationID}
	if err := req.Validate(); err != nil {
		return err
	}
	liked, err := f.repo.LikeExists(ctx, req.UserID, req.VacationID)
	if err != nil {
		return err
	}
	if !liked {
		return errNotLiked
	}
	return f.repo.Unlike(ctx, req.UserID, req.VacationID)
}

func checkPassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return errShortPassword
	}
	return nil
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
