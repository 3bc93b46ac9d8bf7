package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimestamp_ConvertsToUTC(t *testing.T) {
	paris := time.FixedZone("CEST", 2*60*60)
	ts := NewTimestamp(time.Date(2024, 6, 1, 14, 30, 5, 999, paris))

	assert.Equal(t, Timestamp("2024-06-01 12:30:05"), ts)
}

func TestTimestamp_Scan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  Timestamp
	}{
		{"nil", nil, ""},
		{"time in UTC", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02 03:04:05"},
		{"time with offset", time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("", -5*60*60)), "2024-01-02 08:04:05"},
		{"sqlite text", "2024-01-02 03:04:05", "2024-01-02 03:04:05"},
		{"bytes", []byte("2024-01-02 03:04:05"), "2024-01-02 03:04:05"},
		{"fractional seconds", "2024-01-02 03:04:05.123456", "2024-01-02 03:04:05"},
		{"rfc3339", "2024-01-02T03:04:05Z", "2024-01-02 03:04:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, ts.Scan(tt.value))
			assert.Equal(t, tt.want, ts)
		})
	}
}

func TestTimestamp_ScanRejectsGarbage(t *testing.T) {
	var ts Timestamp

	assert.Error(t, ts.Scan("yesterday"))
	assert.Error(t, ts.Scan(42))
}

func TestTimestamp_Time(t *testing.T) {
	parsed, err := Timestamp("2024-01-02 03:04:05").Time()

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), parsed)
}

func TestTimestamp_Value(t *testing.T) {
	v, err := Timestamp("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = Timestamp("2024-01-02 03:04:05").Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02 03:04:05", v)
}
