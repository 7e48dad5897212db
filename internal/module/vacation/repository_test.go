package vacation

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/simp-lee/vacations/internal/domain"
	"github.com/simp-lee/vacations/internal/pkg"
	"github.com/simp-lee/vacations/internal/schema"
)

// setupTestDB creates an in-memory SQLite database with the schema, the
// reference rows, and three vacations (ids 5, 6 and 12).
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	ctx := context.Background()
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := schema.Apply(ctx, db); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	if err := schema.Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	insert := `INSERT INTO vacations (vacation_id, country_id, vacation_description, beginning_date, end_date, price, picture_file_name) VALUES (?, ?, ?, ?, ?, ?, ?)`
	fixtures := [][]any{
		{6, 6, "Sydney harbour", "2025-08-01", "2025-08-20", 3800, "sydney.jpg"},
		{5, 2, "Rome in spring", "2025-03-01", "2025-03-05", 1500, "rome.jpg"},
		{12, 3, "Kyoto temples", "2025-04-10", "2025-04-18", 4200, "kyoto.jpg"},
	}
	for _, args := range fixtures {
		if err := db.Exec(insert, args...).Error; err != nil {
			t.Fatalf("fixture: %v", err)
		}
	}
	return db
}

func newTestRepo(t *testing.T) domain.VacationRepository {
	t.Helper()
	return NewVacationRepository(pkg.NewBaseDAO(setupTestDB(t), nil))
}

func TestRepository_ListAllOrdered(t *testing.T) {
	repo := newTestRepo(t)

	rows, err := repo.ListAll(context.Background(), beginningDateColumn)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	var ids []string
	for _, r := range rows {
		ids = append(ids, r.String(0))
	}
	if len(ids) != 3 || ids[0] != "5" || ids[1] != "12" || ids[2] != "6" {
		t.Errorf("ids = %v; want [5 12 6]", ids)
	}
}

func TestRepository_AddGetUpdateDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	values, err := domain.Zip(
		[]string{"vacation_id", "country_id", "vacation_description", "beginning_date", "end_date", "price", "picture_file_name"},
		[]any{"13", "1", "Relaxing vacation in Israel", "2025-05-01", "2025-05-10", 2500, "israel.jpg"},
	)
	if err != nil {
		t.Fatalf("Zip: %v", err)
	}
	if err := repo.Add(ctx, values); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := repo.Add(ctx, values); !domain.IsAlreadyExists(err) {
		t.Errorf("duplicate Add = %v; want already exists", err)
	}

	rows, err := repo.GetColumnByID(ctx, "13")
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetColumnByID = %v, %v", rows, err)
	}
	got, err := domain.VacationFromRow(rows[0])
	if err != nil {
		t.Fatalf("VacationFromRow: %v", err)
	}
	want := domain.Vacation{VacationID: "13", CountryID: "1", Description: "Relaxing vacation in Israel",
		BeginningDate: "2025-05-01", EndDate: "2025-05-10", Price: 2500, ImageFileName: "israel.jpg"}
	if got != want {
		t.Errorf("got %+v; want %+v", got, want)
	}

	if err := repo.Update(ctx, domain.NewPairs(domain.P("price", 2600)), "13"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	rows, _ = repo.GetColumnByID(ctx, "13", "price")
	if p, _ := rows[0].Int(0); p != 2600 {
		t.Errorf("price = %d; want 2600", p)
	}

	if err := repo.DeleteByID(ctx, "13"); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	rows, _ = repo.GetColumnByID(ctx, "13")
	if len(rows) != 0 {
		t.Errorf("vacation 13 still present: %v", rows)
	}
}

func TestRepository_UnknownCountry(t *testing.T) {
	repo := newTestRepo(t)

	values := domain.NewPairs(
		domain.P("vacation_id", "20"),
		domain.P("country_id", "99"),
		domain.P("vacation_description", "Nowhere"),
		domain.P("beginning_date", "2025-05-01"),
		domain.P("end_date", "2025-05-02"),
		domain.P("price", 100),
		domain.P("picture_file_name", "x.jpg"),
	)
	if err := repo.Add(context.Background(), values); !domain.IsDatastore(err) {
		t.Errorf("Add with unknown country = %v; want datastore error", err)
	}
}
