package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/limbo/eventtracker/internal/analytics"
	errorvalues "github.com/limbo/eventtracker/internal/error_values"
	"github.com/limbo/eventtracker/pkg/entity"
)

var (
	yearFlag    string
	showDetails bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print occurrence views of an event",
	Long: `Reports read the dates of one event (--category, default the first one),
optionally restricted to one year (--year, default all years). Entries that are
not DD.MM.YYYY dates are left out.`,
}

var reportTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Cumulative number of occurrences over time",
	Args:  cobra.NoArgs,
	RunE:  runTimeline,
}

var reportWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Occurrences per Monday-based week with density tiers",
	Args:  cobra.NoArgs,
	RunE:  runWeekly,
}

var reportGapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "How many days pass between occurrences",
	Args:  cobra.NoArgs,
	RunE:  runGaps,
}

var reportHeatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Day-by-day occurrence grid of a year",
	Long:  "Day-by-day occurrence grid of the selected year, or of the current year when none is selected.",
	Args:  cobra.NoArgs,
	RunE:  runHeatmap,
}

var reportMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Occurrences per month of the selected year",
	Args:  cobra.NoArgs,
	RunE:  runMonthly,
}

var reportYearsCmd = &cobra.Command{
	Use:   "years",
	Short: "Years that have at least one occurrence",
	Args:  cobra.NoArgs,
	RunE:  runYears,
}

func init() {
	reportCmd.AddCommand(reportTimelineCmd, reportWeeklyCmd, reportGapsCmd, reportHeatmapCmd, reportMonthlyCmd, reportYearsCmd)
	for _, c := range reportCmd.Commands() {
		addCategoryFlag(c)
		addFormatFlag(c)
		if c != reportYearsCmd {
			c.Flags().StringVar(&yearFlag, "year", "all", "year to report on, or \"all\"")
		}
	}
	reportGapsCmd.Flags().BoolVar(&showDetails, "details", false, "list the dates behind every gap")
}

// reportView wraps every report for json and yaml output.
type reportView struct {
	Category string `json:"category" yaml:"category"`
	Year     string `json:"year" yaml:"year"`
	Data     any    `json:"data" yaml:"data"`
}

type reportInput struct {
	app      *app
	category string
	year     entity.YearFilter
	dates    []time.Time
}

func loadReport(cmd *cobra.Command) (*reportInput, error) {
	year, err := entity.ParseYearFilter(yearFlag)
	if err != nil {
		return nil, err
	}
	a, err := openedApp(cmd)
	if err != nil {
		return nil, err
	}
	category, err := a.activeCategory(categoryFlag)
	if err != nil {
		return nil, err
	}
	dates, err := a.catalog.ActiveSeries(category, year)
	if err != nil {
		return nil, err
	}
	return &reportInput{app: a, category: category, year: year, dates: dates}, nil
}

func (in *reportInput) view(data any) reportView {
	return reportView{Category: in.category, Year: in.year.String(), Data: data}
}

func (in *reportInput) heading(p palette, w io.Writer, what string) {
	fmt.Fprintln(w, p.title(fmt.Sprintf("%s: %s (%s)", in.category, what, in.year)))
}

func runTimeline(cmd *cobra.Command, args []string) error {
	in, err := loadReport(cmd)
	if err != nil {
		return err
	}
	if len(in.dates) == 0 {
		return errorvalues.ErrNoData
	}
	points := in.app.engine.Timeline(in.dates)
	return render(cmd.OutOrStdout(), in.view(points), func(w io.Writer) error {
		p := newPalette(w)
		in.heading(p, w, "timeline")
		for _, pt := range points {
			fmt.Fprintf(w, "%s  %4d\n", entity.FormatDate(pt.Date), pt.Total)
		}
		return nil
	})
}

func runWeekly(cmd *cobra.Command, args []string) error {
	in, err := loadReport(cmd)
	if err != nil {
		return err
	}
	weeks := in.app.engine.Weekly(in.dates, in.year)
	if len(weeks) == 0 {
		return errorvalues.ErrNoData
	}
	return render(cmd.OutOrStdout(), in.view(weeks), func(w io.Writer) error {
		p := newPalette(w)
		in.heading(p, w, "weekly density")
		for _, wk := range weeks {
			fmt.Fprintf(w, "%s  %s %s\n", entity.FormatDate(wk.Start), p.cell(wk.Tier), p.tier(wk.Tier, fmt.Sprintf("%d %s", wk.Count, bar(wk.Count))))
		}
		fmt.Fprintln(w, p.legend(in.app.engine.Scheme()))
		return nil
	})
}

type gapRow struct {
	Days  int                 `json:"days" yaml:"days"`
	Count int                 `json:"count" yaml:"count"`
	Band  analytics.GapBand   `json:"band" yaml:"band"`
	Pairs []analytics.GapPair `json:"pairs" yaml:"pairs"`
}

func runGaps(cmd *cobra.Command, args []string) error {
	in, err := loadReport(cmd)
	if err != nil {
		return err
	}
	if len(in.dates) == 0 {
		return errorvalues.ErrNoData
	}
	dist := in.app.engine.Gaps(in.dates)
	rows := make([]gapRow, 0, len(dist))
	for _, days := range dist.Lengths() {
		rows = append(rows, gapRow{Days: days, Count: dist.Frequency(days), Band: analytics.Band(days), Pairs: dist[days]})
	}
	return render(cmd.OutOrStdout(), in.view(rows), func(w io.Writer) error {
		p := newPalette(w)
		in.heading(p, w, "days between occurrences")
		if len(rows) == 0 {
			fmt.Fprintln(w, "No gaps yet.")
			return nil
		}
		for _, r := range rows {
			fmt.Fprintf(w, "%4d days  %s %d\n", r.Days, p.band(r.Band, bar(r.Count)), r.Count)
			if showDetails {
				for _, pair := range r.Pairs {
					to := entity.FormatDate(pair.To)
					if pair.ToToday {
						to += " (today)"
					}
					fmt.Fprintf(w, "            %s -> %s\n", entity.FormatDate(pair.From), to)
				}
			}
		}
		fmt.Fprintf(w, "%d gaps\n", dist.Total())
		return nil
	})
}

type heatmapView struct {
	Year  int                  `json:"year" yaml:"year"`
	Cells []analytics.DayCount `json:"cells" yaml:"cells"`
}

var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func runHeatmap(cmd *cobra.Command, args []string) error {
	in, err := loadReport(cmd)
	if err != nil {
		return err
	}
	cells := in.app.engine.Heatmap(in.dates, in.year)
	hv := heatmapView{Cells: cells}
	if len(cells) > 0 {
		hv.Year = cells[0].Date.Year()
	}
	return render(cmd.OutOrStdout(), in.view(hv), func(w io.Writer) error {
		p := newPalette(w)
		fmt.Fprintln(w, p.title(fmt.Sprintf("%s: %d", in.category, hv.Year)))
		weeks := 0
		for _, c := range cells {
			weeks = max(weeks, c.Week+1)
		}
		grid := make([][]string, 7)
		for d := range grid {
			grid[d] = make([]string, weeks)
			for i := range grid[d] {
				grid[d][i] = " "
			}
		}
		for _, c := range cells {
			grid[c.Weekday][c.Week] = p.cell(c.Tier)
		}
		for d, row := range grid {
			fmt.Fprintf(w, "%s %s\n", weekdayLabels[d], strings.Join(row, ""))
		}
		fmt.Fprintln(w, p.legend(in.app.engine.Scheme()))
		return nil
	})
}

type monthCount struct {
	Month string `json:"month" yaml:"month"`
	Count int    `json:"count" yaml:"count"`
}

func runMonthly(cmd *cobra.Command, args []string) error {
	if year, err := entity.ParseYearFilter(yearFlag); err == nil && year == entity.AllYears {
		return errorvalues.ErrYearRequired
	}
	in, err := loadReport(cmd)
	if err != nil {
		return err
	}
	counts := in.app.engine.Monthly(in.dates)
	months := make([]monthCount, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, monthCount{Month: m.String(), Count: counts[m]})
	}
	return render(cmd.OutOrStdout(), in.view(months), func(w io.Writer) error {
		p := newPalette(w)
		in.heading(p, w, "monthly summary")
		for _, mc := range months {
			fmt.Fprintf(w, "%s  %3d %s\n", mc.Month[:3], mc.Count, bar(mc.Count))
		}
		return nil
	})
}

func runYears(cmd *cobra.Command, args []string) error {
	a, err := openedApp(cmd)
	if err != nil {
		return err
	}
	category, err := a.activeCategory(categoryFlag)
	if err != nil {
		return err
	}
	years, err := a.catalog.AvailableYears(category)
	if err != nil {
		return err
	}
	if years == nil {
		years = []int{}
	}
	return render(cmd.OutOrStdout(), years, func(w io.Writer) error {
		for _, y := range years {
			fmt.Fprintln(w, y)
		}
		return nil
	})
}
