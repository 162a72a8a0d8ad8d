package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/desertwitch/filestat/internal/filesystem"
	"github.com/desertwitch/filestat/internal/record"
	"github.com/desertwitch/filestat/internal/schema"
	"github.com/desertwitch/filestat/internal/snapshot"
	"github.com/desertwitch/filestat/internal/validation"
)

type App struct {
	snapshotFile    string
	fsHandler       *filesystem.Handler
	snapshotHandler *snapshot.Handler
}

func NewApp(snapshotFile string,
	fsHandler *filesystem.Handler,
	snapshotHandler *snapshot.Handler,
) *App {
	return &App{
		snapshotFile:    snapshotFile,
		fsHandler:       fsHandler,
		snapshotHandler: snapshotHandler,
	}
}

// Add records the live metadata of all paths into the snapshot. Paths must be
// relative, trailing slashes are dropped. Paths that are already recorded are
// only updated with force. Either all paths are
// recorded or, on the first failure, nothing at all is written.
func (app *App) Add(paths []string, follow bool, force bool) error {
	table, err := app.snapshotHandler.Load(app.snapshotFile, true)
	if err != nil {
		return fmt.Errorf("(app-add) %w", err)
	}

	for _, path := range paths {
		if trimmed := strings.TrimRight(path, "/"); trimmed != "" {
			path = trimmed
		}

		if err := validation.ValidateRelativePath(path); err != nil {
			return fmt.Errorf("(app-add) %w", schema.WithPath(path, err))
		}

		metadata, err := app.fsHandler.GetMetadata(path, follow)
		if err != nil {
			return fmt.Errorf("(app-add) %w", schema.WithPath(path, err))
		}

		if !table.Put(path, record.MakeLineFromMetadata(path, metadata), force) {
			slog.Info("Skipped (already recorded, use --force to update):",
				"path", path,
			)

			continue
		}

		slog.Debug("Recorded:",
			"path", path,
			"mode", fmt.Sprintf("%o", metadata.Mode),
			"symlink", metadata.IsSymlink(),
		)
	}

	if err := app.snapshotHandler.Write(app.snapshotFile, table); err != nil {
		return fmt.Errorf("(app-add) %w", schema.WithPath(app.snapshotFile, err))
	}

	return nil
}

// Apply restores the recorded metadata of the given paths, or of every
// recorded path if none are given. A failing path does not stop the others
// from being processed, but results in [ErrApplyFailed] at the end.
func (app *App) Apply(ctx context.Context, paths []string, follow bool) error {
	table, err := app.snapshotHandler.Load(app.snapshotFile, false)
	if err != nil {
		return fmt.Errorf("(app-apply) %w", err)
	}

	entries, failed := selectEntries(table, paths)

	for _, e := range entries {
		if ctx.Err() != nil {
			break
		}

		if err := app.applyEntry(e, follow); err != nil {
			slog.Warn("Skipped: failure applying metadata",
				"path", e.Path,
				"err", err,
			)
			failed++

			continue
		}

		slog.Debug("Applied:",
			"path", e.Path,
		)
	}

	if ctx.Err() != nil {
		return fmt.Errorf("(app-apply) %w", ctx.Err())
	}

	if failed > 0 {
		return fmt.Errorf("(app-apply) %w: %d failure(s)", ErrApplyFailed, failed)
	}

	return nil
}

func (app *App) applyEntry(e snapshot.Entry, follow bool) error {
	rec, err := record.ParseLine(e.Line)
	if err != nil {
		return schema.WithPath(e.Path, err)
	}

	return schema.WithPath(e.Path, app.fsHandler.Apply(e.Path, rec, follow))
}

// Status compares the recorded metadata of the given paths, or of every
// recorded path if none are given, with their live metadata. Every difference
// is printed to w, and results in [ErrDriftDetected] at the end.
func (app *App) Status(ctx context.Context, w io.Writer, paths []string, follow bool) error {
	table, err := app.snapshotHandler.Load(app.snapshotFile, false)
	if err != nil {
		return fmt.Errorf("(app-status) %w", err)
	}

	entries, failed := selectEntries(table, paths)
	drifted := 0

	for _, e := range entries {
		if ctx.Err() != nil {
			break
		}

		rec, err := record.ParseLine(e.Line)
		if err != nil {
			slog.Warn("Skipped: failure parsing recorded metadata",
				"path", e.Path,
				"err", err,
			)
			failed++

			continue
		}

		drift, err := app.fsHandler.Compare(e.Path, rec, follow)
		if err != nil {
			slog.Warn("Skipped: failure comparing metadata",
				"path", e.Path,
				"err", err,
			)
			failed++

			continue
		}

		if drift.Any() {
			printDrift(w, e.Path, drift)
			drifted++
		}
	}

	if ctx.Err() != nil {
		return fmt.Errorf("(app-status) %w", ctx.Err())
	}

	if failed > 0 || drifted > 0 {
		return fmt.Errorf("(app-status) %w: %d differing, %d failure(s)", ErrDriftDetected, drifted, failed)
	}

	return nil
}

// List prints all recorded paths with their metadata to w.
func (app *App) List(w io.Writer) error {
	table, err := app.snapshotHandler.Load(app.snapshotFile, false)
	if err != nil {
		return fmt.Errorf("(app-list) %w", err)
	}

	printTable(w, table)

	return nil
}

// Remove deletes the given paths from the snapshot. If any of them is not
// recorded, nothing is written.
func (app *App) Remove(paths []string) error {
	table, err := app.snapshotHandler.Load(app.snapshotFile, false)
	if err != nil {
		return fmt.Errorf("(app-remove) %w", err)
	}

	for _, path := range paths {
		if !table.Delete(path) {
			return fmt.Errorf("(app-remove) %w", schema.WithPath(path, schema.ErrNotInSnapshot))
		}

		slog.Debug("Removed:",
			"path", path,
		)
	}

	if err := app.snapshotHandler.Write(app.snapshotFile, table); err != nil {
		return fmt.Errorf("(app-remove) %w", schema.WithPath(app.snapshotFile, err))
	}

	return nil
}

// selectEntries returns the entries for the given paths, or all entries if no
// paths are given. Paths without an entry are logged and counted as failed.
func selectEntries(table *snapshot.Table, paths []string) ([]snapshot.Entry, int) {
	if len(paths) == 0 {
		return table.Entries(), 0
	}

	entries := make([]snapshot.Entry, 0, len(paths))
	failed := 0

	for _, path := range paths {
		line, ok := table.Get(path)
		if !ok {
			slog.Warn("Skipped: path is not recorded",
				"path", path,
				"err", schema.WithPath(path, schema.ErrNotInSnapshot),
			)
			failed++

			continue
		}

		entries = append(entries, snapshot.Entry{Path: path, Line: line})
	}

	return entries, failed
}
