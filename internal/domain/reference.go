package domain

import (
	"context"
	"fmt"
)

// Country is a row of the countries reference table.
type Country struct {
	CountryID string `json:"country_id"`
	Name      string `json:"country_name"`
}

// RoleRecord is a row of the roles reference table.
type RoleRecord struct {
	RoleID Role   `json:"role_id"`
	Name   string `json:"role_name"`
}

// CountryFromRow decodes a `SELECT * FROM countries` row.
func CountryFromRow(row Row) (Country, error) {
	if len(row) < 2 {
		return Country{}, fmt.Errorf("countries row has %d columns, want 2", len(row))
	}
	return Country{CountryID: row.String(0), Name: row.String(1)}, nil
}

// RoleRecordFromRow decodes a `SELECT * FROM roles` row.
func RoleRecordFromRow(row Row) (RoleRecord, error) {
	if len(row) < 2 {
		return RoleRecord{}, fmt.Errorf("roles row has %d columns, want 2", len(row))
	}
	id, err := row.Int(0)
	if err != nil {
		return RoleRecord{}, fmt.Errorf("decode role_id: %w", err)
	}
	return RoleRecord{RoleID: Role(id), Name: row.String(1)}, nil
}

// CountryRepository defines the data access interface for countries.
type CountryRepository interface {
	Add(ctx context.Context, values Pairs) error
	Update(ctx context.Context, values Pairs, countryID string) error
	ListAll(ctx context.Context) ([]Row, error)
	List(ctx context.Context) ([]Country, error)
	DeleteByID(ctx context.Context, countryID string) error
	GetColumnByID(ctx context.Context, countryID string, columns ...string) ([]Row, error)
}

// RoleRepository defines the data access interface for roles.
type RoleRepository interface {
	Add(ctx context.Context, values Pairs) error
	Update(ctx context.Context, values Pairs, roleID string) error
	ListAll(ctx context.Context) ([]Row, error)
	List(ctx context.Context) ([]RoleRecord, error)
	DeleteByID(ctx context.Context, roleID string) error
	GetColumnByID(ctx context.Context, roleID string, columns ...string) ([]Row, error)
}
