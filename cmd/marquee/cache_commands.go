package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"marquee/internal/logging"
	"marquee/internal/lookupcache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Lookup cache utilities",
	}

	cacheCmd.AddCommand(newCachePruneCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCachePruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove expired lookup cache entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCacheStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Prune(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d expired entries\n", removed)
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all lookup cache entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			store, err := openCacheStore(ctx)
			if errors.Is(err, lookupcache.ErrSchemaMismatch) {
				// The database predates the current schema and cannot be
				// opened, so clearing means deleting it outright.
				cfg, cfgErr := ctx.ensureConfig()
				if cfgErr != nil {
					return cfgErr
				}
				if err := removeCacheDatabase(cfg.Cache.Path); err != nil {
					return err
				}
				fmt.Fprintln(out, "Cache database reset")
				return nil
			}
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed %d entries\n", removed)
			return nil
		},
	}
}

func openCacheStore(ctx *commandContext) (*lookupcache.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Cache.Enabled {
		return nil, errors.New("lookup cache is disabled in configuration")
	}
	return lookupcache.Open(cfg.Cache.Path, cfg.Cache.TTLDays, logging.NewNop())
}

func removeCacheDatabase(path string) error {
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove cache file %s: %w", p, err)
		}
	}
	return nil
}
