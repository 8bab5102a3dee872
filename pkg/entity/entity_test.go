package entity_test

import (
	"testing"
	"time"

	"github.com/limbo/eventtracker/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		Desc    string
		Raw     string
		Skipped bool
		Want    time.Time
	}{
		{Desc: "padded", Raw: "05.03.2024", Want: date(2024, 3, 5)},
		{Desc: "non padded", Raw: "5.3.2024", Want: date(2024, 3, 5)},
		{Desc: "surrounding spaces", Raw: " 31.12.2023 ", Want: date(2023, 12, 31)},
		{Desc: "iso format", Raw: "2024-03-05", Skipped: true},
		{Desc: "impossible day", Raw: "31.02.2024", Skipped: true},
		{Desc: "garbage", Raw: "[12:00] hello", Skipped: true},
		{Desc: "empty", Raw: "", Skipped: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			res := entity.ParseDate(tc.Raw)
			assert.Equal(t, tc.Skipped, res.Skipped)
			assert.Equal(t, tc.Raw, res.Raw)
			if !tc.Skipped {
				assert.True(t, tc.Want.Equal(res.Date))
			}
		})
	}
}

func TestBuildSeries(t *testing.T) {
	s := entity.BuildSeries([]string{"10.01.2024", "bad", "01.01.2024", "04.01.2023", "2024/01/02"})
	require.Len(t, s.Dates, 3)
	assert.Equal(t, []string{"bad", "2024/01/02"}, s.Skipped)
	assert.Equal(t, date(2023, 1, 4), s.Dates[0])
	assert.Equal(t, date(2024, 1, 1), s.Dates[1])
	assert.Equal(t, date(2024, 1, 10), s.Dates[2])
}

func TestSeriesFilterAndYears(t *testing.T) {
	s := entity.BuildSeries([]string{"01.05.2022", "01.01.2024", "03.03.2022", "09.09.2023"})

	assert.Equal(t, []int{2024, 2023, 2022}, s.Years())
	assert.Len(t, s.Filter(entity.AllYears), 4)

	only2022 := s.Filter(entity.YearFilter(2022))
	require.Len(t, only2022, 2)
	assert.Equal(t, date(2022, 3, 3), only2022[0])
	assert.Equal(t, date(2022, 5, 1), only2022[1])

	assert.Empty(t, s.Filter(entity.YearFilter(1999)))
}

func TestParseYearFilter(t *testing.T) {
	for _, in := range []string{"", "all", "ALL", " all "} {
		y, err := entity.ParseYearFilter(in)
		assert.NoError(t, err)
		assert.Equal(t, entity.AllYears, y)
	}
	y, err := entity.ParseYearFilter("2024")
	assert.NoError(t, err)
	assert.Equal(t, entity.YearFilter(2024), y)
	assert.Equal(t, "2024", y.String())

	_, err = entity.ParseYearFilter("twenty")
	var yfErr *entity.YearFilterError
	assert.ErrorAs(t, err, &yfErr)
}

func TestSameDateEntryIsTextual(t *testing.T) {
	assert.True(t, entity.SameDateEntry("01.01.2024", "01.01.2024"))
	assert.False(t, entity.SameDateEntry("01.01.2024", "1.1.2024"))
}

func TestDayDropsClock(t *testing.T) {
	in := time.Date(2024, 2, 29, 23, 59, 0, 0, time.FixedZone("x", 3*3600))
	assert.Equal(t, date(2024, 2, 29), entity.Day(in))
	assert.Equal(t, "29.02.2024", entity.FormatDate(entity.Day(in)))
}
