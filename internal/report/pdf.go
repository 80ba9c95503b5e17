package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/effort"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/utils"
)

type column struct {
	title string
	width float64
	align string
}

var peopleColumns = []column{
	{"Person", 50, "L"},
	{"Role", 25, "L"},
	{"Planned", 22, "R"},
	{"Leave", 20, "R"},
	{"Remaining", 25, "R"},
	{"Load", 28, "R"},
}

var taskColumns = []column{
	{"Task", 70, "L"},
	{"Status", 28, "L"},
	{"Component", 42, "L"},
	{"Analysis", 15, "R"},
	{"Software", 15, "R"},
}

// the core fonts only cover cp1252, so Turkish letters are folded to ASCII
func text(s string) string {
	return utils.ToASCII(s)
}

func hours(h float64) string {
	return fmt.Sprintf("%.1f h", h)
}

func load(p effort.PersonEffort) string {
	if p.UtilizationPercent == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f%% %s", *p.UtilizationPercent, p.LoadLevel)
}

func header(pdf *fpdf.Fpdf, cols []column) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range cols {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
}

func row(pdf *fpdf.Fpdf, cols []column, values ...string) {
	for i, c := range cols {
		pdf.CellFormat(c.width, 6, text(values[i]), "1", 0, c.align, false, 0, "")
	}
	pdf.Ln(-1)
}

// WritePDF renders the capacity report for data into w.
func WritePDF(w io.Writer, data *Data) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(text("Sprint capacity: "+data.Sprint.Name), false)
	pdf.SetCreationDate(data.GeneratedAt)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, text(fmt.Sprintf("Sprint capacity: %s", data.Sprint.Name)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%s - %s (%s)", data.Sprint.StartDate, data.Sprint.EndDate, text(string(data.Sprint.EffectiveStatus()))))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("%d business days x %.2f h = %s", data.Capacity.BusinessDays, data.Capacity.DailyHours, hours(data.Capacity.PlannedHours)))
	pdf.Ln(6)
	if !data.Capacity.IncludeHolidays {
		pdf.Cell(0, 6, "Holidays are subtracted from the business days.")
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Remaining effort")
	pdf.Ln(9)
	header(pdf, peopleColumns)
	for _, p := range data.Summary.People {
		row(pdf, peopleColumns, p.FullName, string(p.Role), hours(p.PlannedHours), hours(p.LeaveHours), hours(p.RemainingHours), load(p))
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(peopleColumns[0].width+peopleColumns[1].width, 6, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(peopleColumns[2].width, 6, hours(data.Summary.TotalPlannedHours), "1", 0, "R", false, 0, "")
	pdf.CellFormat(peopleColumns[3].width, 6, hours(data.Summary.TotalLeaveHours), "1", 0, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Tasks")
	pdf.Ln(9)
	if len(data.Tasks) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, "No tasks planned.")
		pdf.Ln(6)
	} else {
		header(pdf, taskColumns)
		for _, t := range data.Tasks {
			row(pdf, taskColumns, t.TaskName, string(t.EffectiveStatus()), t.Component,
				fmt.Sprintf("%.1f", t.AnalysisCost), fmt.Sprintf("%.1f", t.SoftwareCost))
		}
	}

	if len(data.Summary.DanglingReferences) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 7, "Unknown people referenced (not counted)")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		for _, ref := range data.Summary.DanglingReferences {
			pdf.MultiCell(0, 5, text(fmt.Sprintf("%s %s in %s", ref.Kind, ref.PersonID, ref.SourceID)), "", "", false)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 5, "Generated "+data.GeneratedAt.Format("2006-01-02 15:04"))

	return pdf.Output(w)
}
