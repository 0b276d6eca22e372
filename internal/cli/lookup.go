package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/internal/lookup"
	"github.com/mesh-intelligence/addressbook/internal/paths"
)

func (a *app) newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <index>",
		Short: "Look up the address for a contact's postal code",
		Long: "Lookup queries the configured search service for the postal code of the\n" +
			"contact at the given index and prints the address, or \"" + lookup.NotFound + "\"",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			file, err := a.openStorage()
			if err != nil {
				return err
			}
			book, err := file.Load()
			if err != nil {
				return storageError(err)
			}
			c, err := book.Get(index - 1)
			if err != nil {
				return userError(fmt.Errorf("contact %d: %w", index, err))
			}

			client, closeFn := a.newLookupClient()
			defer closeFn()

			fmt.Fprintln(cmd.OutOrStdout(), client.Lookup(cmd.Context(), c.PostalCode))
			return nil
		},
	}
}

// newLookupClient builds a client from config. The cache is optional: if it
// cannot be opened the client runs without it.
func (a *app) newLookupClient() (*lookup.Client, func()) {
	opts := []lookup.Option{
		lookup.WithBaseURL(a.config.GetString(cfgKeyLookupBaseURL)),
		lookup.WithTimeout(lookupTimeout(a.config)),
		lookup.WithLogger(a.logger),
	}
	closeFn := func() {}

	if a.config.GetBool(cfgKeyLookupCache) {
		cache, err := a.openCache()
		if err != nil {
			a.logger.Warn("lookup cache unavailable", "error", err)
		} else {
			opts = append(opts, lookup.WithCache(cache))
			closeFn = func() { cache.Close() }
		}
	}
	return lookup.New(opts...), closeFn
}

func (a *app) openCache() (*lookup.Cache, error) {
	dataDir, err := paths.ResolveDataDir(a.config.GetString(cfgKeyDataDir))
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return lookup.OpenCache(filepath.Join(dataDir, lookup.DefaultCacheFile))
}
