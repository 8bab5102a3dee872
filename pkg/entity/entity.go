package entity

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is how occurrence dates are written to storage.
	DateLayout = "02.01.2006"
	// parseLayout also accepts non-padded day and month ("1.1.2024").
	parseLayout = "2.1.2006"

	DefaultCategoryName = "General Event"
)

type Credential struct {
	Username string
	// Record is "<salt-hex>:<hash-hex>".
	Record string
}

// Category is one named event with its raw date strings in insertion order.
type Category struct {
	Name  string   `json:"name" yaml:"name"`
	Dates []string `json:"dates" yaml:"dates"`
}

// ParseResult is either a parsed date or a skipped raw string.
type ParseResult struct {
	Raw     string
	Date    time.Time
	Skipped bool
}

func ParseDate(raw string) ParseResult {
	t, err := time.Parse(parseLayout, strings.TrimSpace(raw))
	if err != nil {
		return ParseResult{Raw: raw, Skipped: true}
	}
	return ParseResult{Raw: raw, Date: t}
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Day returns t as a naive calendar date (UTC midnight).
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDateEntry is the duplicate predicate for recorded dates. The comparison
// is textual, so "01.01.2024" and "1.1.2024" are distinct entries.
func SameDateEntry(a, b string) bool {
	return a == b
}

// Series is the parsed, ascending view over a category's raw dates.
type Series struct {
	Dates   []time.Time
	Skipped []string
}

// BuildSeries parses raw leniently. Unparseable strings end up in Skipped.
func BuildSeries(raw []string) Series {
	s := Series{Dates: make([]time.Time, 0, len(raw))}
	for _, r := range raw {
		res := ParseDate(r)
		if res.Skipped {
			s.Skipped = append(s.Skipped, res.Raw)
			continue
		}
		s.Dates = append(s.Dates, res.Date)
	}
	sort.Slice(s.Dates, func(i, j int) bool { return s.Dates[i].Before(s.Dates[j]) })
	return s
}

// Filter returns the dates matching year, still ascending.
func (s Series) Filter(year YearFilter) []time.Time {
	out := make([]time.Time, 0, len(s.Dates))
	for _, d := range s.Dates {
		if year.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// Years returns the distinct years present, newest first.
func (s Series) Years() []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, d := range s.Dates {
		if _, ok := seen[d.Year()]; ok {
			continue
		}
		seen[d.Year()] = struct{}{}
		years = append(years, d.Year())
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// YearFilter selects a single year; AllYears disables filtering.
type YearFilter int

const AllYears YearFilter = 0

func ParseYearFilter(s string) (YearFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return AllYears, nil
	}
	y, err := strconv.Atoi(s)
	if err != nil || y <= 0 {
		return AllYears, &YearFilterError{Value: s}
	}
	return YearFilter(y), nil
}

func (y YearFilter) Match(t time.Time) bool {
	return y == AllYears || t.Year() == int(y)
}

func (y YearFilter) String() string {
	if y == AllYears {
		return "all"
	}
	return strconv.Itoa(int(y))
}

type YearFilterError struct {
	Value string
}

func (e *YearFilterError) Error() string {
	return "invalid year filter: " + strconv.Quote(e.Value)
}
