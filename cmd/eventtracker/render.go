package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/limbo/eventtracker/internal/analytics"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var outputFormat string

func addFormatFlag(c *cobra.Command) {
	c.Flags().StringVarP(&outputFormat, "format", "o", formatText, "output format: text, json or yaml")
}

// render writes v as JSON or YAML, or calls text for the human-readable form.
func render(w io.Writer, v any, text func(io.Writer) error) error {
	switch strings.ToLower(outputFormat) {
	case formatText, "":
		return text(w)
	case formatJSON:
		data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q, want text, json or yaml", outputFormat)
}

// palette colours report cells. Colours are dropped when w is not a terminal.
type palette struct {
	r *lipgloss.Renderer
}

func newPalette(w io.Writer) palette {
	return palette{r: lipgloss.NewRenderer(w)}
}

var tierColors = map[analytics.Tier]lipgloss.Color{
	analytics.TierNone:     lipgloss.Color("#3a3a3a"),
	analytics.TierLow:      lipgloss.Color("#9be9a8"),
	analytics.TierMedium:   lipgloss.Color("#40c463"),
	analytics.TierHigh:     lipgloss.Color("#30a14e"),
	analytics.TierVeryHigh: lipgloss.Color("#216e39"),
}

// tierGlyphs keep tiers apart without colour.
var tierGlyphs = map[analytics.Tier]string{
	analytics.TierNone:     "·",
	analytics.TierLow:      "░",
	analytics.TierMedium:   "▒",
	analytics.TierHigh:     "▓",
	analytics.TierVeryHigh: "█",
}

var bandColors = map[analytics.GapBand]lipgloss.Color{
	analytics.BandGood: lipgloss.Color("2"),
	analytics.BandFair: lipgloss.Color("3"),
	analytics.BandPoor: lipgloss.Color("1"),
}

func (p palette) tier(t analytics.Tier, s string) string {
	return p.r.NewStyle().Foreground(tierColors[t]).Render(s)
}

func (p palette) cell(t analytics.Tier) string {
	return p.tier(t, tierGlyphs[t])
}

func (p palette) band(b analytics.GapBand, s string) string {
	return p.r.NewStyle().Foreground(bandColors[b]).Render(s)
}

func (p palette) title(s string) string {
	return p.r.NewStyle().Bold(true).Render(s)
}

func (p palette) legend(scheme analytics.TierScheme) string {
	parts := make([]string, 0, 5)
	for _, t := range scheme.Tiers() {
		parts = append(parts, p.cell(t)+" "+string(t))
	}
	return strings.Join(parts, "  ")
}

func bar(n int) string {
	return strings.Repeat("█", n)
}
