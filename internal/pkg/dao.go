package pkg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/simp-lee/vacations/internal/domain"
)

// identifierPattern restricts what may be written into SQL text. Values
// never go into the text; they are always bound as parameters.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// BaseDAO builds parameterized SQL for an arbitrary table and executes it.
// Entity repositories compose a BaseDAO and fix their table and key columns.
type BaseDAO struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewBaseDAO creates a BaseDAO. A nil logger falls back to slog.Default().
func NewBaseDAO(db *gorm.DB, logger *slog.Logger) *BaseDAO {
	if logger == nil {
		logger = slog.Default()
	}
	return &BaseDAO{db: db, logger: logger}
}

// Execute runs query with positional args on a connection held only for
// this statement. A SELECT returns all rows (never nil); any other
// statement runs in its own transaction, is committed, and returns nil rows.
// Failures are logged and returned as *domain.AppError wrapping the driver
// error.
func (d *BaseDAO) Execute(ctx context.Context, query string, args ...any) ([]domain.Row, error) {
	var rows []domain.Row
	err := d.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		if isRead(query) {
			var err error
			rows, err = fetchAll(conn, query, args)
			return err
		}
		return WithTx(conn, func(tx *gorm.DB) error {
			return tx.Exec(query, args...).Error
		})
	})
	if err != nil {
		d.logger.ErrorContext(ctx, "query failed",
			slog.String("query", query),
			slog.Any("error", err),
		)
		return nil, mapError(err)
	}
	return rows, nil
}

// Update runs UPDATE table SET c1 = ?, ... WHERE k1 = ? AND ...
func (d *BaseDAO) Update(ctx context.Context, table string, set, where domain.Pairs) error {
	query, args, err := buildUpdate(table, set, where)
	if err != nil {
		return d.reject(ctx, err)
	}
	_, err = d.Execute(ctx, query, args...)
	return err
}

// Add runs INSERT INTO table (c1, ...) VALUES (?, ...).
func (d *BaseDAO) Add(ctx context.Context, table string, values domain.Pairs) error {
	query, args, err := buildInsert(table, values)
	if err != nil {
		return d.reject(ctx, err)
	}
	_, err = d.Execute(ctx, query, args...)
	return err
}

// ListAll runs SELECT * FROM table, optionally ordered by the given columns.
func (d *BaseDAO) ListAll(ctx context.Context, table string, orderBy ...string) ([]domain.Row, error) {
	query, err := buildSelectAll(table, orderBy)
	if err != nil {
		return nil, d.reject(ctx, err)
	}
	return d.Execute(ctx, query)
}

// DeleteByID runs DELETE FROM table WHERE k1 = ? AND ...
// A composite key is expressed as several pairs in where.
func (d *BaseDAO) DeleteByID(ctx context.Context, table string, where domain.Pairs) error {
	query, args, err := buildDelete(table, where)
	if err != nil {
		return d.reject(ctx, err)
	}
	_, err = d.Execute(ctx, query, args...)
	return err
}

// GetColumnByID runs SELECT columns FROM table WHERE k1 = ? AND ...
// No columns selects *.
func (d *BaseDAO) GetColumnByID(ctx context.Context, table string, columns []string, where domain.Pairs) ([]domain.Row, error) {
	query, args, err := buildSelect(table, columns, where)
	if err != nil {
		return nil, d.reject(ctx, err)
	}
	return d.Execute(ctx, query, args...)
}

func (d *BaseDAO) reject(ctx context.Context, err error) error {
	d.logger.ErrorContext(ctx, "query rejected", slog.Any("error", err))
	return domain.NewAppError(domain.CodeInternal, "invalid query", err)
}

func buildUpdate(table string, set, where domain.Pairs) (string, []any, error) {
	if set.IsEmpty() {
		return "", nil, errors.New("update requires at least one column")
	}
	if err := checkIdentifiers(append([]string{table}, set.Columns()...)...); err != nil {
		return "", nil, err
	}
	cond, condArgs, err := buildWhere(where)
	if err != nil {
		return "", nil, err
	}

	assignments := make([]string, 0, set.Len())
	for _, c := range set.Columns() {
		assignments = append(assignments, c+" = ?")
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s", table, strings.Join(assignments, ", "), cond)
	args := append(set.Values(), condArgs...)
	return query, args, nil
}

func buildInsert(table string, values domain.Pairs) (string, []any, error) {
	if values.IsEmpty() {
		return "", nil, errors.New("insert requires at least one column")
	}
	if err := checkIdentifiers(append([]string{table}, values.Columns()...)...); err != nil {
		return "", nil, err
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", values.Len()), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(values.Columns(), ", "), placeholders)
	return query, values.Values(), nil
}

func buildSelectAll(table string, orderBy []string) (string, error) {
	if err := checkIdentifiers(append([]string{table}, orderBy...)...); err != nil {
		return "", err
	}
	query := "SELECT * FROM " + table
	if len(orderBy) > 0 {
		query += " ORDER BY " + strings.Join(orderBy, ", ")
	}
	return query, nil
}

func buildDelete(table string, where domain.Pairs) (string, []any, error) {
	if err := checkIdentifiers(table); err != nil {
		return "", nil, err
	}
	cond, args, err := buildWhere(where)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("DELETE FROM %s WHERE %s", table, cond), args, nil
}

func buildSelect(table string, columns []string, where domain.Pairs) (string, []any, error) {
	if err := checkIdentifiers(append([]string{table}, columns...)...); err != nil {
		return "", nil, err
	}
	cond, args, err := buildWhere(where)
	if err != nil {
		return "", nil, err
	}
	selected := "*"
	if len(columns) > 0 {
		selected = strings.Join(columns, ", ")
	}
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s", selected, table, cond), args, nil
}

// buildWhere renders where as equality conjuncts joined with AND.
func buildWhere(where domain.Pairs) (string, []any, error) {
	if where.IsEmpty() {
		return "", nil, errors.New("where clause requires at least one column")
	}
	if err := checkIdentifiers(where.Columns()...); err != nil {
		return "", nil, err
	}
	conds := make([]string, 0, where.Len())
	for _, c := range where.Columns() {
		conds = append(conds, c+" = ?")
	}
	return strings.Join(conds, " AND "), where.Values(), nil
}

func checkIdentifiers(names ...string) error {
	for _, n := range names {
		if !identifierPattern.MatchString(n) {
			return fmt.Errorf("invalid identifier %q", n)
		}
	}
	return nil
}

func isRead(query string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(query)), "select")
}

func fetchAll(conn *gorm.DB, query string, args []any) ([]domain.Row, error) {
	rs, err := conn.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	cols, err := rs.Columns()
	if err != nil {
		return nil, err
	}

	rows := make([]domain.Row, 0)
	for rs.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return nil, err
		}
		rows = append(rows, domain.Row(vals))
	}
	return rows, rs.Err()
}

// mapError converts driver errors to domain errors.
func mapError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return domain.NewAppError(domain.CodeAlreadyExists, "already exists", err)
	}
	return domain.NewAppError(domain.CodeDatastore, "datastore error", err)
}

// isDuplicateKeyError detects unique constraint violations by examining the
// error message. This is needed because not all GORM dialectors translate
// driver-level errors to gorm.ErrDuplicatedKey (e.g. the pure-Go SQLite driver).
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
