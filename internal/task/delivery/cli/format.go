package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"smart-task-assistant/internal/model"
	"smart-task-assistant/internal/normalizer"
	"smart-task-assistant/internal/priority"
	"smart-task-assistant/internal/task"
)

const dueLayout = "Mon 2006-01-02 15:04"

var (
	heading = color.New(color.FgBlue, color.Bold)
	faint   = color.New(color.FgHiBlack)
	green   = color.New(color.FgGreen)
	red     = color.New(color.FgRed, color.Bold)
)

func tierColor(tier int) *color.Color {
	switch tier {
	case priority.TierUrgent:
		return color.New(color.FgRed, color.Bold)
	case priority.TierHigh:
		return color.New(color.FgYellow)
	case priority.TierMedium:
		return color.New(color.FgBlue)
	default:
		return faint
	}
}

func tierBadge(tier int) string {
	return tierColor(tier).Sprintf("[P%d %s]", tier, priority.Label(tier))
}

// dueText renders a due instant with its distance from now, e.g. "Sat 2025-01-11 00:00 (15 hours from now)".
func dueText(dueAt *time.Time, now time.Time) string {
	if dueAt == nil {
		return "no due date"
	}
	return fmt.Sprintf("%s (%s)", dueAt.Format(dueLayout), humanize.RelTime(*dueAt, now, "ago", "from now"))
}

func printEnrichment(w io.Writer, e task.Enrichment, now time.Time) {
	field(w, "Title", e.Title)
	field(w, "Due", dueText(e.Parsed.DueAt, now))
	if e.Parsed.Resolution == normalizer.ResolutionAmbiguous {
		faint.Fprintf(w, "%13s%d date phrases found, kept one\n", "", len(e.Parsed.Candidates))
	}
	field(w, "Priority", tierBadge(e.Priority))
	field(w, "Status", string(e.Status))
	list(w, "Subtasks", e.Suggestions, false)
	list(w, "Related", e.ComplementaryTasks, false)
	list(w, "Similar", e.SimilarTasks, false)
	list(w, "Plan", e.Plan, true)
}

func printTask(w io.Writer, t model.Task, now time.Time) {
	title := t.Title
	if t.Status == model.StatusCompleted {
		title = green.Sprint(title)
	}
	due := dueText(t.DueAt, now)
	if t.IsOverdue(now) {
		due = red.Sprint(due)
	}
	fmt.Fprintf(w, "%s %s %s\n", tierBadge(t.Priority), title, faint.Sprintf("(%s)", t.Status))
	fmt.Fprintf(w, "    %s  %s\n", faint.Sprint(t.ID), due)
}

func printTitles(w io.Writer, titles []string, empty string) {
	if len(titles) == 0 {
		faint.Fprintln(w, empty)
		return
	}
	for i, title := range titles {
		fmt.Fprintf(w, "%d. %s\n", i+1, title)
	}
}

func printOverview(w io.Writer, o task.OverviewOutput) {
	heading.Fprintf(w, "Overview as of %s\n", o.AsOf.Format(dueLayout))
	field(w, "Total", humanize.Comma(int64(o.Total)))
	field(w, "Completed", humanize.Comma(int64(o.Completed)))
	field(w, "Pending", humanize.Comma(int64(o.Pending)))
	field(w, "Overdue", humanize.Comma(int64(o.Overdue)))
	heading.Fprintln(w, "Last 7 days:")
	for _, d := range o.Weekly {
		fmt.Fprintf(w, "  %s %-10s %d\n", d.Date, strings.Repeat("#", min(d.Count, 10)), d.Count)
	}
}

func field(w io.Writer, name, value string) {
	heading.Fprintf(w, "%-12s ", name+":")
	fmt.Fprintln(w, value)
}

func list(w io.Writer, name string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	heading.Fprintf(w, "%s:\n", name)
	for i, item := range items {
		if numbered {
			fmt.Fprintf(w, "  %d. %s\n", i+1, item)
		} else {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}
}
