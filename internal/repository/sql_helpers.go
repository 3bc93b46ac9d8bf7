package repository

import (
	"errors"
	"strings"

	sentinal_errors "chatdb/pkg/errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation   = "23505"
	mysqlDuplicateEntry = 1062
	sqliteUniqueFailure = "UNIQUE constraint failed"
)

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	return strings.Contains(err.Error(), sqliteUniqueFailure)
}

// conflict keeps the driver error in the chain next to ErrConflict.
func conflict(err error) error {
	return errors.Join(sentinal_errors.ErrConflict, err)
}
