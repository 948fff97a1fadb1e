// Package output renders planning results for the terminal
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/magliflex/planner/pkg/application/dto"
	"github.com/magliflex/planner/pkg/application/services/planning"
	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/services/bomcheck"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	offDayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
	statusStyles = map[entities.LotStatus]lipgloss.Style{
		entities.StatusPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		entities.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

// Renderer writes formatted planning output
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a Renderer writing to w
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// row prints aligned columns with the shared cell padding
func (r *Renderer) row(style lipgloss.Style, widths []int, cells ...string) {
	parts := make([]string, len(cells))
	for i, c := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		parts[i] = cellStyle.Render(style.Width(w).Render(c))
	}
	r.printf("%s\n", strings.Join(parts, ""))
}

// ForwardSchedule renders a piece-throughput scheduling result
func (r *Renderer) ForwardSchedule(lot *entities.Lot, result *dto.ForwardScheduleResult) {
	r.printf("%s\n", titleStyle.Render(fmt.Sprintf("Lot %s — %d pieces of %s", lot.ID, lot.Quantity, lot.ArticleID)))
	r.printf("  start:              %s\n", lot.StartDate)
	r.printf("  estimated delivery: %s\n", lot.EstimatedDeliveryDate)
	if result.CapReached {
		r.printf("  %s\n", errorStyle.Render(fmt.Sprintf("planning cap reached: %d of %d pieces scheduled, %d remaining",
			result.Scheduled, lot.Quantity, result.Remaining)))
	}
	r.warnings(result.Warnings)

	dates := make([]string, 0, len(result.DailyWorkload))
	for d := range result.DailyWorkload {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	if len(dates) == 0 {
		return
	}
	widths := []int{10, 28, 8, 20}
	r.row(headerStyle, widths, "Date", "Phase", "Pieces", "Machine")
	for _, d := range dates {
		day := result.DailyWorkload[d]
		phases := make([]entities.PhaseID, 0, len(day))
		for p := range day {
			phases = append(phases, p)
		}
		sort.Slice(phases, func(a, b int) bool { return phases[a] < phases[b] })
		for _, p := range phases {
			load := day[p]
			machine := string(load.Machine)
			if machine == "" {
				machine = mutedStyle.Render("-")
			}
			r.row(lipgloss.NewStyle(), widths, d, string(p), fmt.Sprintf("%d", load.Quantity), machine)
		}
	}
}

// BackwardSchedule renders an hour-budget scheduling result
func (r *Renderer) BackwardSchedule(lot *entities.Lot, result *dto.BackwardScheduleResult) {
	r.printf("%s\n", titleStyle.Render(fmt.Sprintf("Lot %s — %d pieces of %s", lot.ID, lot.Quantity, lot.ArticleID)))
	r.printf("  delivery:        %s\n", lot.DeliveryDate)
	r.printf("  suggested start: %s\n", lot.SuggestedStartDate)
	r.printf("  working days:    %d (including %d handoff buffer)\n", result.TotalWorkingDays, result.BufferDays)
	r.warnings(result.Warnings)

	if len(result.DepartmentHours) == 0 {
		return
	}
	departments := make([]entities.DepartmentID, 0, len(result.DepartmentHours))
	for d := range result.DepartmentHours {
		departments = append(departments, d)
	}
	sort.Slice(departments, func(a, b int) bool { return departments[a] < departments[b] })

	widths := []int{30, 10}
	r.row(headerStyle, widths, "Department", "Hours")
	for _, d := range departments {
		r.row(lipgloss.NewStyle(), widths, string(d), fmt.Sprintf("%.1f", result.DepartmentHours[d]))
	}
}

// Lots renders the production plan as a table
func (r *Renderer) Lots(lots []*entities.Lot) {
	if len(lots) == 0 {
		r.printf("%s\n", mutedStyle.Render("no lots planned"))
		return
	}
	widths := []int{22, 12, 8, 10, 10, 12, 12, 10}
	r.row(headerStyle, widths, "ID", "Article", "Qty", "Type", "Priority", "Start", "Delivery", "Status")
	for _, lot := range lots {
		start := lot.StartDate
		if start == "" {
			start = lot.SuggestedStartDate
		}
		delivery := lot.EstimatedDeliveryDate
		if delivery == "" {
			delivery = lot.DeliveryDate
		}
		status := statusStyles[lot.Status].Render(string(lot.Status))
		r.row(lipgloss.NewStyle(), widths,
			string(lot.ID), string(lot.ArticleID), fmt.Sprintf("%d", lot.Quantity),
			string(lot.Type), string(lot.Priority), start, delivery, status)
	}
}

// DeliveryWeek renders the weekly delivery calendar
func (r *Renderer) DeliveryWeek(week *planning.DeliveryWeek) {
	r.printf("%s\n", titleStyle.Render(fmt.Sprintf("Deliveries — week of %s", week.WeekStart.Format("2006-01-02"))))
	for _, day := range week.Days {
		label := day.Date.Format("Mon 2006-01-02")
		if !day.Working {
			r.printf("%s\n", offDayStyle.Render(label))
			continue
		}
		r.printf("%s\n", headerStyle.Render(label))
		if len(day.Lots) == 0 {
			r.printf("  %s\n", mutedStyle.Render("-"))
			continue
		}
		for _, lot := range day.Lots {
			r.printf("  %s  %s x%d (%s)\n", lot.ID, lot.ArticleID, lot.Quantity, lot.Status)
		}
	}
}

// WorkloadWeek renders the weekly per-department workload calendar
func (r *Renderer) WorkloadWeek(week *planning.WorkloadWeek) {
	r.printf("%s\n", titleStyle.Render(fmt.Sprintf("Workload — week of %s", week.WeekStart.Format("2006-01-02"))))
	for _, day := range week.Days {
		label := day.Date.Format("Mon 2006-01-02")
		if !day.Working {
			r.printf("%s\n", offDayStyle.Render(label))
			continue
		}
		r.printf("%s\n", headerStyle.Render(label))
		if len(day.Departments) == 0 {
			r.printf("  %s\n", mutedStyle.Render("idle"))
			continue
		}
		for _, load := range day.Departments {
			var parts []string
			if load.Pieces > 0 {
				parts = append(parts, fmt.Sprintf("%d pieces", load.Pieces))
			}
			if load.Hours > 0 {
				parts = append(parts, fmt.Sprintf("%.1f h", load.Hours))
			}
			r.printf("  %-40s %s\n", load.Department.Name, strings.Join(parts, ", "))
		}
	}
}

// Journal renders the warehouse movement journal
func (r *Renderer) Journal(entries []*entities.JournalEntry, materials map[entities.MaterialID]*entities.RawMaterial) {
	if len(entries) == 0 {
		r.printf("%s\n", mutedStyle.Render("journal is empty"))
		return
	}
	widths := []int{22, 10, 6, 26, 12, 12, 18}
	r.row(headerStyle, widths, "ID", "Date", "Type", "Material", "Quantity", "Consumed", "Reference")
	for _, e := range entries {
		name := string(e.MaterialID)
		unit := ""
		if m, ok := materials[e.MaterialID]; ok {
			name = m.Name
			unit = m.Unit
		}
		consumed := mutedStyle.Render("-")
		if e.ActualConsumed != nil {
			consumed = fmt.Sprintf("%s %s", e.ActualConsumed, unit)
		}
		r.row(lipgloss.NewStyle(), widths,
			string(e.ID), e.Date, string(e.Type), name,
			fmt.Sprintf("%s %s", e.Quantity, unit), consumed, e.Reference)
	}
}

// Notifications renders stored notifications
func (r *Renderer) Notifications(notifications []*entities.Notification) {
	if len(notifications) == 0 {
		r.printf("%s\n", mutedStyle.Render("no notifications"))
		return
	}
	for _, n := range notifications {
		style := mutedStyle
		switch n.Type {
		case entities.NotifyWarning:
			style = warnStyle
		case entities.NotifyError:
			style = errorStyle
		}
		r.printf("%s  %s\n", style.Render(string(n.Type)), n.Message)
	}
}

// Shortages renders a material shortage report
func (r *Renderer) Shortages(shortages []bomcheck.Shortage) {
	if len(shortages) == 0 {
		r.printf("%s\n", titleStyle.Render("materials sufficient"))
		return
	}
	r.printf("%s\n", errorStyle.Render("insufficient raw materials:"))
	widths := []int{28, 12, 12, 12}
	r.row(headerStyle, widths, "Material", "Required", "Available", "Deficit")
	for _, s := range shortages {
		r.row(lipgloss.NewStyle(), widths,
			s.MaterialName,
			fmt.Sprintf("%s %s", s.Required, s.Unit),
			fmt.Sprintf("%s %s", s.Available, s.Unit),
			errorStyle.Render(fmt.Sprintf("%s %s", s.Deficit, s.Unit)))
	}
}

func (r *Renderer) warnings(warnings []string) {
	for _, w := range warnings {
		r.printf("  %s\n", warnStyle.Render("warning: "+w))
	}
}
