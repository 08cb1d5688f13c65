package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"marquee/internal/columns"
	"marquee/internal/config"
	"marquee/internal/enrich"
	"marquee/internal/logging"
	"marquee/internal/lookupcache"
	"marquee/internal/services"
	"marquee/internal/services/tmdb"
	"marquee/internal/services/youtube"
	"marquee/internal/tabular"
)

func runEnrich(cmd *cobra.Command, cfg *config.Config, path string, flags *enrichFlags) error {
	out := cmd.OutOrStdout()

	logger, err := buildLogger(cfg, flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	delay := cfg.Enrich.DelaySeconds
	if cmd.Flags().Changed("delay") {
		delay = flags.delay
	}
	if delay < 0 {
		return fmt.Errorf("delay must be non-negative, got %g", delay)
	}
	if delay < 0.1 {
		logger.Warn("very short delay may cause rate limiting", logging.Float64("delay_seconds", delay))
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file not found: %s", path)
		}
		return fmt.Errorf("inspect file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, expected a CSV file", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		logger.Warn("file does not have a .csv extension", logging.String("file", path))
	}

	fileLock := flock.New(path + ".lock")
	locked, err := fileLock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire file lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another marquee run is already processing %s", path)
	}
	defer func() {
		_ = fileLock.Unlock()
	}()

	ctx := services.WithRequestID(cmd.Context(), uuid.NewString())
	logger = logging.WithContext(ctx, logger)

	doc, err := tabular.LoadFile(path, 0)
	if err != nil {
		return err
	}
	logger.Debug("loaded document",
		logging.String("file", path),
		logging.String("delimiter", string(doc.Delimiter())),
		logging.Int("rows", doc.RowCount()))

	binding, err := columns.Classify(doc.Columns())
	if err != nil {
		return err
	}

	roles := []columns.Role{columns.RoleTrailer}
	if !flags.noRelated {
		roles = append(roles, columns.RoleRelated)
	}
	if missing := columns.Missing(binding, roles); len(missing) > 0 && !flags.force && !flags.dryRun {
		names := make([]string, len(missing))
		for i, role := range missing {
			names[i] = columns.CanonicalColumnName(role)
		}
		if !confirmColumns(cmd.InOrStdin(), out, names) {
			fmt.Fprintln(out, "Operation cancelled.")
			return nil
		}
	}
	binding, created, err := columns.Provision(doc, binding, roles)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Column mapping:")
	fmt.Fprintln(out, columnMappingTable(doc, binding, created))

	trailers, related, closeCache, err := buildLookups(ctx, cfg, flags, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	enrichOpts := []enrich.Option{enrich.WithLogger(logger)}
	var finishProgress func()
	if isTerminal(out) && !flags.verbose {
		reporter := newProgressReporter(out, doc.RowCount())
		enrichOpts = append(enrichOpts, enrich.WithProgress(reporter.update))
		finishProgress = reporter.finish
	}

	fmt.Fprintf(out, "Processing %d movies...\n", doc.RowCount())
	enricher := enrich.New(trailers, related, enrichOpts...)
	summary, runErr := enricher.Run(ctx, doc, binding, enrich.Options{
		DelaySeconds: delay,
		DryRun:       flags.dryRun,
		SkipRelated:  flags.noRelated,
		RelatedLimit: cfg.TMDB.RelatedLimit,
	})
	if finishProgress != nil {
		finishProgress()
	}
	if runErr != nil && !errors.Is(runErr, enrich.ErrInterrupted) {
		return runErr
	}
	interrupted := runErr != nil

	if !flags.dryRun {
		if err := doc.SaveFile(path); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "Summary:")
	fmt.Fprintln(out, summaryTable(summary, !flags.noRelated))

	switch {
	case interrupted:
		if !flags.dryRun {
			fmt.Fprintf(out, "Interrupted - partial results saved to %s\n", path)
		}
		return runErr
	case flags.dryRun:
		fmt.Fprintln(out, "Dry run complete - no changes made")
	default:
		fmt.Fprintf(out, "Processing complete! File updated: %s\n", path)
	}
	return nil
}

func buildLogger(cfg *config.Config, flags *enrichFlags, errOut io.Writer) (*slog.Logger, error) {
	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	return logging.New(logging.Options{
		Level:  level,
		Format: cfg.Logging.Format,
		Output: errOut,
	})
}

// buildLookups assembles the lookup providers, wrapped in the on-disk cache
// when it is enabled. A cache that fails to open degrades to direct lookups
// rather than aborting the run.
func buildLookups(ctx context.Context, cfg *config.Config, flags *enrichFlags, logger *slog.Logger) (enrich.TrailerSearcher, enrich.RelatedFinder, func(), error) {
	noop := func() {}

	youtubeClient, err := youtube.New(cfg.YouTube.BaseURL, cfg.YouTube.UserAgent)
	if err != nil {
		return nil, nil, noop, err
	}
	var trailers enrich.TrailerSearcher = youtubeClient

	var related enrich.RelatedFinder
	if !flags.noRelated {
		if err := cfg.RequireTMDBKey(); err != nil {
			return nil, nil, noop, err
		}
		tmdbClient, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
		if err != nil {
			return nil, nil, noop, err
		}
		related = tmdbClient
	}

	if !cfg.Cache.Enabled || flags.dryRun {
		return trailers, related, noop, nil
	}

	store, err := lookupcache.Open(cfg.Cache.Path, cfg.Cache.TTLDays, logger)
	if err != nil {
		logger.Warn("lookup cache unavailable, continuing without it", logging.Error(err))
		return trailers, related, noop, nil
	}
	if removed, err := store.Prune(ctx); err != nil {
		logger.Warn("prune lookup cache", logging.Error(err))
	} else if removed > 0 {
		logger.Debug("pruned expired cache entries", logging.Int("removed", int(removed)))
	}

	trailers = lookupcache.WrapTrailer(store, trailers)
	if related != nil {
		related = lookupcache.WrapRelated(store, related)
	}
	closeStore := func() {
		if err := store.Close(); err != nil {
			logger.Warn("close lookup cache", logging.Error(err))
		}
	}
	return trailers, related, closeStore, nil
}
