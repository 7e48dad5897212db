package schema

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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
	return db
}

func TestStatements(t *testing.T) {
	src := `-- header comment
CREATE TABLE a (id INTEGER);

-- comment only;
INSERT INTO a (id) VALUES (1);
   ;
`
	got := Statements(src)
	want := []string{
		"CREATE TABLE a (id INTEGER)",
		"INSERT INTO a (id) VALUES (1)",
	}
	if len(got) != len(want) {
		t.Fatalf("Statements() returned %d statements: %q", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("statement %d = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestStatements_EmbeddedScripts(t *testing.T) {
	if n := len(Statements(schemaSQL)); n != 5 {
		t.Errorf("schema.sql has %d statements; want 5", n)
	}
	if n := len(Statements(seedSQL)); n == 0 {
		t.Error("seed.sql has no statements")
	}
}

func TestApplyAndSeed(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := Apply(ctx, db); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// Idempotent.
	if err := Apply(ctx, db); err != nil {
		t.Fatalf("second Apply: %v", err)
	}

	for _, table := range []string{"roles", "countries", "users", "vacations", "likes"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s was not created", table)
		}
	}

	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var roles int64
	if err := db.Raw("SELECT COUNT(*) FROM roles").Scan(&roles).Error; err != nil {
		t.Fatalf("count roles: %v", err)
	}
	if roles != 2 {
		t.Errorf("roles = %d; want 2", roles)
	}

	var admin string
	if err := db.Raw("SELECT role_name FROM roles WHERE role_id = ?", 1).Scan(&admin).Error; err != nil {
		t.Fatalf("select admin: %v", err)
	}
	if admin != "admin" {
		t.Errorf("role 1 = %q; want admin", admin)
	}

	var countries int64
	if err := db.Raw("SELECT COUNT(*) FROM countries").Scan(&countries).Error; err != nil {
		t.Fatalf("count countries: %v", err)
	}
	if countries != 6 {
		t.Errorf("countries = %d; want 6", countries)
	}
}

func TestApply_PriceCheckConstraint(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	if err := Apply(ctx, db); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	err := db.Exec(`INSERT INTO vacations (vacation_id, country_id, vacation_description, beginning_date, end_date, price, picture_file_name)
		VALUES (1, 1, 'x', '2030-01-01', '2030-01-02', 20000, 'x.jpg')`).Error
	if err == nil {
		t.Fatal("expected CHECK constraint to reject price above 10000")
	}
}
