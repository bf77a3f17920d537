package calculation

import (
	"fmt"
	"strings"
)

// Coverage stores the line coverage summary for one source file
type Coverage struct {
	Name         string
	CoveredLines int
	TotalLines   int
}

// Ratio returns the fraction of tracked lines that were executed at least
// once. A file with no tracked lines counts as fully covered.
func (c *Coverage) Ratio() float64 {
	if c.TotalLines == 0 {
		return 1
	}
	return float64(c.CoveredLines) / float64(c.TotalLines)
}

// Percentage returns the coverage ratio in human readable percentage format
func (c *Coverage) Percentage() string {
	return fmt.Sprintf("%.1f%%", c.Ratio()*100)
}

// IsCoverageLow checks if the coverage is less than the threshold.
func (c *Coverage) IsCoverageLow(covThresholdInt int) bool {
	covThreshold := float64(covThresholdInt) / 100
	return c.Ratio() < covThreshold
}

// CoverageList is a collection and summary over multiple file Coverage objects
type CoverageList struct {
	*Coverage
	Group []Coverage
}

func newCoverageList(name string) *CoverageList {
	return &CoverageList{
		Coverage: &Coverage{Name: name},
		Group:    []Coverage{},
	}
}

// Ratio summarizes the group and returns the aggregate coverage ratio
func (g *CoverageList) Ratio() float64 {
	summary := Coverage{Name: g.Name}
	for _, cov := range g.Group {
		summary.CoveredLines += cov.CoveredLines
		summary.TotalLines += cov.TotalLines
	}
	g.CoveredLines = summary.CoveredLines
	g.TotalLines = summary.TotalLines
	return g.Coverage.Ratio()
}

// ContentForCheck builds the coverage table printed by the check command,
// one row per file plus a total row, and reports whether the list fails
// the threshold. Low overall coverage always fails it; a single low file
// fails it only when perFile is set.
func (g *CoverageList) ContentForCheck(covThresholdInt int, perFile bool) (string, bool) {
	var rows []string
	isCoverageLow := false
	for _, cov := range g.Group {
		marker := ""
		if cov.IsCoverageLow(covThresholdInt) {
			marker = "\tLOW"
			if perFile {
				isCoverageLow = true
			}
		}
		rows = append(rows, fmt.Sprintf("%s\t%s%s", cov.Name, cov.Percentage(), marker))
	}
	g.Ratio()
	if g.IsCoverageLow(covThresholdInt) {
		isCoverageLow = true
	}
	rows = append(rows, fmt.Sprintf("total:\t%s", g.Percentage()))
	return strings.Join(rows, "\n"), isCoverageLow
}
