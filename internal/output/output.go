package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/effort"
)

// UI writes colored messages and tables for sprintctl.
type UI struct {
	Verbose bool
	DryRun  bool
	Out     io.Writer
	ErrOut  io.Writer
}

func New() *UI {
	return &UI{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

var (
	infoPrefix    = color.New(color.FgHiBlue).Sprint("i")
	successPrefix = color.New(color.FgHiGreen).Sprint("✓")
	warningPrefix = color.New(color.FgHiYellow).Sprint("⚠")
	errorPrefix   = color.New(color.FgHiRed).Sprint("✗")
	verbosePrefix = color.New(color.FgHiBlue).Sprint("  →")
	cyan          = color.New(color.FgHiCyan).SprintFunc()
	green         = color.New(color.FgHiGreen).SprintFunc()
	yellow        = color.New(color.FgHiYellow).SprintFunc()
	red           = color.New(color.FgHiRed).SprintFunc()
)

func Cyan(s string) string { return cyan(s) }

func Green(s string) string { return green(s) }

func Yellow(s string) string { return yellow(s) }

func Red(s string) string { return red(s) }

// SprintStatusColor colors a sprint status by how far the sprint has progressed.
func SprintStatusColor(status domain.SprintStatus) string {
	s := string(status)
	switch status {
	case domain.SprintStatusSaved:
		return green(s)
	case domain.SprintStatusPlanning:
		return yellow(s)
	case domain.SprintStatusCompleted:
		return cyan(s)
	default:
		return s
	}
}

// LoadColor formats a utilization percentage colored by its load level.
func LoadColor(p effort.PersonEffort) string {
	if p.UtilizationPercent == nil {
		return "-"
	}
	s := fmt.Sprintf("%.0f%%", *p.UtilizationPercent)
	switch p.LoadLevel {
	case effort.LoadOver:
		return red(s)
	case effort.LoadHigh:
		return yellow(s)
	default:
		return green(s)
	}
}

// Hours formats hours with one decimal; negative values are shown in red.
func Hours(h float64) string {
	s := fmt.Sprintf("%.1f", h)
	if h < 0 {
		return red(s)
	}
	return s
}

func (u *UI) Info(format string, a ...any) {
	fmt.Fprintf(u.Out, "%s %s\n", infoPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Success(format string, a ...any) {
	fmt.Fprintf(u.Out, "%s %s\n", successPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Warning(format string, a ...any) {
	fmt.Fprintf(u.ErrOut, "%s %s\n", warningPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Error(format string, a ...any) {
	fmt.Fprintf(u.ErrOut, "%s %s\n", errorPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) VerboseLog(format string, a ...any) {
	if u.Verbose {
		fmt.Fprintf(u.Out, "%s %s\n", verbosePrefix, fmt.Sprintf(format, a...))
	}
}

func (u *UI) DryRunMsg(format string, a ...any) {
	if u.DryRun {
		u.Warning("[DRY-RUN] "+format, a...)
	}
}

// Table creates a new tablewriter configured with consistent styling.
func (u *UI) Table(headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(u.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}

// EffortTable prints one row per person of the effort summary.
func (u *UI) EffortTable(summary effort.Summary) error {
	table := u.Table([]string{"Person", "Role", "Planned", "Leave", "Remaining", "Load"})
	for _, p := range summary.People {
		if err := table.Append([]string{
			p.FullName,
			string(p.Role),
			Hours(p.PlannedHours),
			Hours(p.LeaveHours),
			Hours(p.RemainingHours),
			LoadColor(p),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}
