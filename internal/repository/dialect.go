package repository

import (
	"fmt"

	sentinal_errors "chatdb/pkg/errors"
)

// Dialect identifies a store engine the message table can live in.
type Dialect int

const (
	DialectUnknown Dialect = iota
	DialectSQLite
	DialectMySQL
	DialectPostgres
)

// dialects maps gorm dialector names to the engines we know the clock of.
var dialects = map[string]Dialect{
	"sqlite":   DialectSQLite,
	"mysql":    DialectMySQL,
	"postgres": DialectPostgres,
}

// nowUTC holds each engine's own "current UTC time" expression, truncated to
// whole seconds.
var nowUTC = map[Dialect]string{
	DialectSQLite:   "datetime('now')",
	DialectMySQL:    "UTC_TIMESTAMP()",
	DialectPostgres: "date_trunc('second', CURRENT_TIMESTAMP)",
}

// ParseDialect resolves a dialector name. Names outside the closed set fail
// with ErrUnsupportedBackend.
func ParseDialect(name string) (Dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return DialectUnknown, fmt.Errorf("%w [%s]", sentinal_errors.ErrUnsupportedBackend, name)
	}
	return d, nil
}

func (d Dialect) String() string {
	for name, v := range dialects {
		if v == d {
			return name
		}
	}
	return "unknown"
}

// NowUTC returns the SQL expression that makes the store stamp a row with its
// own clock, in UTC.
func (d Dialect) NowUTC() (string, error) {
	expr, ok := nowUTC[d]
	if !ok {
		return "", fmt.Errorf("%w [%s]", sentinal_errors.ErrUnsupportedBackend, d)
	}
	return expr, nil
}
