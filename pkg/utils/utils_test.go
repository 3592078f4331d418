package utils

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRounding(t *testing.T) {
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.346))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 50.0, RoundWithOneDecimalPlace(49.96))
	assert.Equal(t, -33.3, RoundWithOneDecimalPlace(-33.333))
}

func TestFinite(t *testing.T) {
	assert.Equal(t, 0.0, Finite(math.NaN()))
	assert.Equal(t, 0.0, Finite(math.Inf(1)))
	assert.Equal(t, 0.0, Finite(math.Inf(-1)))
	assert.Equal(t, 1.5, Finite(1.5))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *date)

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("02-2024")
	require.NoError(t, err)
	assert.Equal(t, time.February, month.Month())
	assert.Equal(t, 2024, month.Year())

	_, err = ParseMonth("2024-02")
	assert.Error(t, err)
}

func TestDayBoundaries(t *testing.T) {
	date := time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), StartOfDay(date))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), NextDay(date))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), FirstDayOfMonth(date))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID("rk")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "rk_"))
	assert.Len(t, id, len("rk_")+idLength)

	other, err := GenerateID("")
	require.NoError(t, err)
	assert.Len(t, other, idLength)
}
