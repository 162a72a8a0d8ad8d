package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/filestat/internal/escaping"
	"github.com/desertwitch/filestat/internal/filesystem"
	"github.com/desertwitch/filestat/internal/record"
	"github.com/desertwitch/filestat/internal/snapshot"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

const (
	timeLayout  = "2006-01-02 15:04:05"
	unknownCell = "-"
)

//nolint:gochecknoglobals
var (
	missingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	modifiedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// printTable renders all entries of a [snapshot.Table] with their decoded
// metadata. Paths are shown escaped, so that every entry takes up one row.
func printTable(w io.Writer, table *snapshot.Table) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Path", "Mode", "Modified"})
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	tw.SetCenterSeparator("|")

	for _, e := range table.Entries() {
		mode, mtime := unknownCell, unknownCell

		rec, err := record.ParseLine(e.Line)
		if err != nil {
			slog.Warn("Failure parsing recorded metadata (was not shown)",
				"path", e.Path,
				"err", err,
			)
		} else {
			mode, mtime = formatMode(rec), formatModTime(rec)
		}

		tw.Append([]string{escaping.Escape(e.Path), mode, mtime})
	}

	tw.Render()
}

func formatMode(rec *record.Record) string {
	if rec.Mode == nil {
		return unknownCell
	}

	return fmt.Sprintf("%06o", *rec.Mode)
}

func formatModTime(rec *record.Record) string {
	if rec.ModTime == nil {
		return unknownCell
	}

	t := time.Unix(rec.ModTime.Sec, rec.ModTime.Nsec)

	return fmt.Sprintf("%s (%s)", t.Format(timeLayout), humanize.Time(t))
}

// printDrift renders a single line describing the [filesystem.Drift] of a path.
func printDrift(w io.Writer, path string, drift filesystem.Drift) {
	if drift.Missing {
		fmt.Fprintf(w, "%s %s\n", missingStyle.Render("missing: "), escaping.Escape(path))

		return
	}

	var changed []string
	if drift.ModeChanged {
		changed = append(changed, "mode")
	}
	if drift.ModTimeChanged {
		changed = append(changed, "mtime")
	}

	fmt.Fprintf(w, "%s %s (%s)\n", modifiedStyle.Render("modified:"), escaping.Escape(path), strings.Join(changed, ", "))
}
