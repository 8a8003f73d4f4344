package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lxkasmehl/runsync-dispatch/internal/github"
	"github.com/lxkasmehl/runsync-dispatch/internal/history"
	"github.com/lxkasmehl/runsync-dispatch/internal/ui"
)

func writeRuns(w io.Writer, runs []github.WorkflowRun) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, ui.SubtitleStyle.Render("No workflow runs found."))
		return err
	}

	for _, run := range runs {
		if _, err := fmt.Fprintln(w, formatRunLine(run)); err != nil {
			return err
		}
	}

	return nil
}

func formatRunLine(run github.WorkflowRun) string {
	state := run.Status
	if run.IsCompleted() && run.Conclusion != "" {
		state = run.Conclusion
	}

	title := run.DisplayTitle
	if title == "" {
		title = run.Name
	}

	cols := []string{
		ui.HeaderStyle.Render(fmt.Sprintf("#%d", run.RunNumber)),
		ui.ConclusionStyle(run.Status, run.Conclusion).Render(pad(state, 11)),
		ui.NormalStyle.Render(title),
		ui.SubtitleStyle.Render(run.HeadBranch),
		ui.SubtitleStyle.Render(formatTime(run.CreatedAt)),
		ui.LinkStyle.Render(run.HTMLURL),
	}

	return strings.Join(cols, "  ")
}

func writeHistory(w io.Writer, entries []history.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, ui.SubtitleStyle.Render("No dispatches recorded yet."))
		return err
	}

	for _, e := range entries {
		runs := "runs"
		if e.RunCount == 1 {
			runs = "run"
		}

		line := fmt.Sprintf("%s  %s",
			ui.NormalStyle.Render(e.TaskType),
			ui.SubtitleStyle.Render(fmt.Sprintf("%d %s, last %s on %s", e.RunCount, runs, formatTime(e.LastRunAt), e.Ref)),
		)

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func pad(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}

	return s
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.Local().Format("2006-01-02 15:04")
}
