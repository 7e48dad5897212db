package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/simp-lee/vacations/internal/config"
	"github.com/simp-lee/vacations/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	color := false
	return &config.Config{
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "data", "vacations.db")},
			Pool:   config.PoolConfig{MaxOpenConns: 4},
		},
		Log:    config.LogConfig{Level: "error", Format: "text", Color: &color},
		Schema: config.SchemaConfig{Apply: true, Seed: true},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Driver = "mysql"
	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestNew_SeedsReferenceData(t *testing.T) {
	a := newTestApp(t, testConfig(t))
	ctx := context.Background()

	countries, err := a.Countries.List(ctx)
	if err != nil {
		t.Fatalf("Countries.List: %v", err)
	}
	if len(countries) != 6 {
		t.Errorf("countries = %d; want 6", len(countries))
	}

	roles, err := a.Roles.List(ctx)
	if err != nil {
		t.Fatalf("Roles.List: %v", err)
	}
	if len(roles) != 2 || !roles[0].RoleID.IsAdmin() {
		t.Errorf("roles = %+v", roles)
	}
}

func TestNew_WithoutSchemaApply(t *testing.T) {
	cfg := testConfig(t)
	cfg.Schema = config.SchemaConfig{}
	a := newTestApp(t, cfg)

	_, err := a.Countries.List(context.Background())
	if !domain.IsDatastore(err) {
		t.Errorf("List on an empty database = %v; want datastore error", err)
	}
}

func TestApp_EndToEnd(t *testing.T) {
	a := newTestApp(t, testConfig(t))
	ctx := context.Background()

	if err := a.Users.Register(ctx, "3", "Jane", "Smith", "jane.smith@example.com", "anotherPassword", "2"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	price := 2500
	err := a.Vacations.Add(ctx, domain.VacationInput{
		VacationID: "13", CountryID: "1", Description: "Relaxing vacation in Israel",
		BeginningDate: "2999-05-01", EndDate: "2999-05-10", Price: &price, ImageFileName: "israel.jpg",
	})
	if err != nil {
		t.Fatalf("Vacations.Add: %v", err)
	}

	if err := a.Users.Like(ctx, "3", "13"); err != nil {
		t.Fatalf("Like: %v", err)
	}
	// Likes cascade with their vacation.
	if err := a.Vacations.Delete(ctx, "13"); err != nil {
		t.Fatalf("Vacations.Delete: %v", err)
	}
	if err := a.Users.Unlike(ctx, "3", "13"); !domain.IsNotFound(err) {
		t.Errorf("Unlike after vacation deletion = %v; want not found", err)
	}

	users, err := a.Users.LogIn(ctx, "jane.smith@example.com", "anotherPassword")
	if err != nil || len(users) != 1 {
		t.Fatalf("LogIn = %v, %v", users, err)
	}
}

func TestApp_CloseTwice(t *testing.T) {
	a, err := New(context.Background(), testConfig(t))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if a.Logger() == nil {
		t.Error("Logger() after Close should fall back to the default logger")
	}
}
