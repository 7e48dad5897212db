package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/simp-lee/vacations/internal/config"
	"github.com/simp-lee/vacations/internal/domain"
	"github.com/simp-lee/vacations/internal/module/country"
	"github.com/simp-lee/vacations/internal/module/role"
	"github.com/simp-lee/vacations/internal/module/user"
	"github.com/simp-lee/vacations/internal/module/vacation"
	"github.com/simp-lee/vacations/internal/pkg"
	"github.com/simp-lee/vacations/internal/schema"
)

// App holds the wired facades and reference repositories together with the
// resources they share.
type App struct {
	Users     domain.UserFacade
	Vacations domain.VacationFacade
	Countries domain.CountryRepository
	Roles     domain.RoleRepository

	db     *gorm.DB
	logger *logger.Logger
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging and the database, optionally applies the schema and
// seeds reference rows, then builds repositories and facades on one shared
// BaseDAO. On failure everything opened so far is closed again.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup database.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		closeDB(db, log.Logger)
	}()

	// 3. Schema and reference rows.
	if cfg.Schema.Apply {
		if err := schema.Apply(ctx, db); err != nil {
			return nil, fmt.Errorf("apply schema: %w", err)
		}
		log.Info("schema applied")
	}
	if cfg.Schema.Seed {
		if err := schema.Seed(ctx, db); err != nil {
			return nil, fmt.Errorf("seed reference data: %w", err)
		}
		log.Info("reference data seeded")
	}

	// 4. Manual dependency injection: BaseDAO → repository → facade.
	dao := pkg.NewBaseDAO(db, log.Logger)

	success = true
	return &App{
		Users:     user.NewUserFacade(user.NewUserRepository(dao)),
		Vacations: vacation.NewVacationFacade(vacation.NewVacationRepository(dao)),
		Countries: country.NewCountryRepository(dao),
		Roles:     role.NewRoleRepository(dao),
		db:        db,
		logger:    log,
	}, nil
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	if a == nil || a.logger == nil {
		return slog.Default()
	}
	return a.logger.Logger
}

// Close releases the database pool and flushes the logger. It is safe to
// call more than once.
func (a *App) Close() error {
	if a == nil {
		return errors.New("app is nil")
	}

	var errs []error
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close database: %w", err))
			} else if a.logger != nil {
				a.logger.Info("database connection closed")
			}
		}
		a.db = nil
	}
	if a.logger != nil {
		if err := a.logger.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close logger: %w", err))
		}
		a.logger = nil
	}
	return errors.Join(errs...)
}

func closeDB(db *gorm.DB, log *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("database close error", slog.Any("error", err))
	}
}
