package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	mysqlDuplicateEntry   = 1062
	postgresUniqueViolate = "23505"
)

// DuplicateKeyError 唯一约束冲突，Field 为冲突的列
type DuplicateKeyError struct {
	Field string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return "duplicate value for " + e.Field
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// asDuplicateKeyError 识别 MySQL / PostgreSQL 的唯一约束错误，fields 为候选列名
func asDuplicateKeyError(err error, fields ...string) error {
	if err == nil {
		return nil
	}

	var detail string
	var mysqlErr *mysql.MySQLError
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry:
		detail = mysqlErr.Message
	case errors.As(err, &pgErr) && pgErr.Code == postgresUniqueViolate:
		detail = pgErr.ConstraintName + " " + pgErr.Detail
	default:
		return err
	}

	field := ""
	for _, f := range fields {
		if strings.Contains(detail, f) {
			field = f
			break
		}
	}
	return &DuplicateKeyError{Field: field, Err: err}
}
