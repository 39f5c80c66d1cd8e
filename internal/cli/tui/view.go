package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haskel/statkit/internal/stats/robust"
)

const histogramBins = 12

// View renders the explorer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	s := m.Summary()

	sections := []string{
		m.renderTitleBar(),
		m.renderParameters(s),
		m.renderEstimates(s),
	}
	if len(m.sample) > 0 {
		sections = append(sections, m.renderHistogram(s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("ROBUST LOCATION EXPLORER")

	keys := "q:quit ←→:trim ↑↓:fence g:new sample r:reset"
	if m.config.Generate == nil {
		keys = "q:quit ←→:trim ↑↓:fence r:reset"
	}
	help := helpStyle.Render(keys)

	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(help) - 2
	if spacing < 1 {
		spacing = 1
	}

	return fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", spacing), help)
}

func (m Model) renderParameters(s robust.Summary) string {
	return fmt.Sprintf("  %s %s    %s %s    %s %s",
		labelStyle.Render("n"), valueStyle.Render(fmt.Sprintf("%d", s.N)),
		labelStyle.Render("trim"), valueStyle.Render(fmt.Sprintf("%4.1f%%", s.Percentage)),
		labelStyle.Render("fence"), valueStyle.Render(fmt.Sprintf("%.2f×IQR", s.Multiplier)),
	)
}

func (m Model) renderEstimates(s robust.Summary) string {
	lines := []string{sectionHeaderStyle.Render("  Estimates")}

	row := func(label string, v float64) string {
		gap := ""
		if d := v - s.Mean; label != "Mean" && d != 0 {
			gap = gapStyle.Render(fmt.Sprintf("  (%+.3f vs mean)", d))
		}
		return fmt.Sprintf("  %s %s%s", labelStyle.Render(fmt.Sprintf("%-16s", label)), valueStyle.Render(fmt.Sprintf("%10.3f", v)), gap)
	}

	lines = append(lines,
		row("Mean", s.Mean),
		row("Median", s.Median),
		row("Trimmed mean", s.TrimmedMean),
		row("Winsorized mean", s.WinsorizedMean),
		fmt.Sprintf("  %s %s", labelStyle.Render(fmt.Sprintf("%-16s", "Q1 / Q3")), valueStyle.Render(fmt.Sprintf("%10.3f / %.3f", s.Q1, s.Q3))),
		fmt.Sprintf("  %s %s", labelStyle.Render(fmt.Sprintf("%-16s", "Outliers")), outlierBarStyle.Render(fmt.Sprintf("%10d", s.OutlierCount))),
	)

	return strings.Join(lines, "\n")
}

type bin struct {
	lo, hi float64
	count  int
	kind   binKind
}

// histogram buckets the sample and tags each bucket with the strongest
// classification of the values inside it.
func histogram(sample []float64, s robust.Summary) []bin {
	if len(sample) == 0 {
		return nil
	}

	lo, hi := sample[0], sample[0]
	for _, v := range sample {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	nbins := histogramBins
	if hi == lo {
		nbins = 1
	}
	width := (hi - lo) / float64(nbins)

	bins := make([]bin, nbins)
	for i := range bins {
		bins[i].lo = lo + float64(i)*width
		bins[i].hi = lo + float64(i+1)*width
		bins[i].kind = binTrimmed
	}

	kept := robust.Trim(sample, s.Percentage)
	keptLo, keptHi := math.Inf(1), math.Inf(-1)
	if len(kept) > 0 {
		keptLo, keptHi = kept[0], kept[len(kept)-1]
	}

	for i, v := range sample {
		idx := 0
		if width > 0 {
			idx = min(int((v-lo)/width), nbins-1)
		}
		b := &bins[idx]
		b.count++

		switch {
		case s.Outliers[i]:
			b.kind = binOutlier
		case v >= keptLo && v <= keptHi && b.kind != binOutlier:
			b.kind = binKept
		}
	}

	return bins
}

func (m Model) renderHistogram(s robust.Summary) string {
	lines := []string{sectionHeaderStyle.Render("  Distribution")}

	bins := histogram(m.sample, s)
	maxCount := 0
	for _, b := range bins {
		maxCount = max(maxCount, b.count)
	}

	barWidth := m.width - 30
	if barWidth < 10 {
		barWidth = 10
	}

	for _, b := range bins {
		n := 0
		if maxCount > 0 {
			n = b.count * barWidth / maxCount
		}
		bar := barStyle(b.kind).Render(strings.Repeat("█", n))
		lines = append(lines, fmt.Sprintf("  %s │%s %s",
			labelStyle.Render(fmt.Sprintf("%9.2f", b.lo)), bar, helpStyle.Render(fmt.Sprintf("%d", b.count))))
	}

	lines = append(lines, helpStyle.Render("  green: kept   gray: trimmed tail   red: outside IQR fences"))
	return strings.Join(lines, "\n")
}
