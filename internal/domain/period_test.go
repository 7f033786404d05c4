package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakturo/internal/domain"
)

func TestPeriodValidate(t *testing.T) {
	assert.NoError(t, domain.Period{Month: 1, Year: 2000}.Validate())
	assert.NoError(t, domain.Period{Month: 12, Year: 2100}.Validate())
	assert.NoError(t, domain.Period{Month: 6, Year: 2024}.Validate())
}

func TestPeriodValidate_MonthOutOfRange(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		err := domain.Period{Month: month, Year: 2024}.Validate()
		require.Error(t, err)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "month", verr.Field)
	}
}

func TestPeriodValidate_YearOutOfRange(t *testing.T) {
	for _, year := range []int{1999, 2101} {
		err := domain.Period{Month: 5, Year: year}.Validate()
		require.Error(t, err)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "year", verr.Field)
	}
}

func TestPeriodRange_MonthLengths(t *testing.T) {
	tests := []struct {
		month   int
		year    int
		lastDay int
	}{
		{1, 2024, 31},
		{2, 2024, 29}, // leap year
		{2, 2023, 28},
		{4, 2024, 30},
		{12, 2024, 31},
	}
	for _, tt := range tests {
		start, end := domain.Period{Month: tt.month, Year: tt.year}.Range()

		assert.Equal(t, 1, start.Day())
		assert.Equal(t, time.Month(tt.month), start.Month())
		assert.Equal(t, tt.lastDay, end.Day())
		assert.Equal(t, time.Month(tt.month), end.Month())
		assert.Equal(t, tt.year, end.Year())
	}
}

func TestPeriodString(t *testing.T) {
	assert.Equal(t, "2024-03", domain.Period{Month: 3, Year: 2024}.String())
}
