package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/internal/paths"
	"github.com/mesh-intelligence/addressbook/pkg/types"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and an empty address book",
		Long: "Create the configuration directory and config.yaml if missing, then create\n" +
			"an empty storage file unless one already exists.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	file, err := a.openStorage()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}
	created, err := writeConfigIfMissing(configDir, file.Path())
	if err != nil {
		return sysError(err)
	}
	if created {
		a.logger.Debug("wrote default config", "config_dir", configDir)
	}

	// Loading validates an existing file; a missing one loads as empty.
	book, err := file.Load()
	if err != nil {
		return storageError(err)
	}
	if _, err := os.Stat(file.Path()); errors.Is(err, fs.ErrNotExist) {
		if err := file.Save(types.AddressBook{}); err != nil {
			return storageError(err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Address book initialized at %s (%d contacts)\n", file.Path(), book.Len())
	return nil
}
