package repository

import (
	"testing"

	sentinal_errors "chatdb/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	tests := []struct {
		name string
		want Dialect
		expr string
	}{
		{"sqlite", DialectSQLite, "datetime('now')"},
		{"mysql", DialectMySQL, "UTC_TIMESTAMP()"},
		{"postgres", DialectPostgres, "date_trunc('second', CURRENT_TIMESTAMP)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDialect(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
			assert.Equal(t, tt.name, d.String())

			expr, err := d.NowUTC()
			require.NoError(t, err)
			assert.Equal(t, tt.expr, expr)
		})
	}
}

func TestParseDialect_Unsupported(t *testing.T) {
	for _, name := range []string{"oracle", "sqlserver", "", "SQLite"} {
		d, err := ParseDialect(name)
		assert.ErrorIs(t, err, sentinal_errors.ErrUnsupportedBackend, name)
		assert.Equal(t, DialectUnknown, d)
	}

	_, err := DialectUnknown.NowUTC()
	assert.ErrorIs(t, err, sentinal_errors.ErrUnsupportedBackend)
}
