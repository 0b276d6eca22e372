// Package cli implements the addressbook command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/addressbook/internal/paths"
	"github.com/mesh-intelligence/addressbook/pkg/storage"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	file      string
	jsonMode  bool
	verbose   bool
}

// app carries state shared by the subcommands of one root command.
type app struct {
	flags  rootFlags
	config *viper.Viper
	logger *slog.Logger
}

// NewRootCmd creates the top-level "addressbook" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "addressbook",
		Short: "A small contact store backed by an XML file",
		Long: "addressbook keeps postal code, street and unit records in a single XML file.\n" +
			"Fields can be marked private to hide them from listings and exports.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.file, "file", "", "storage file (default: $(CWD)/addressbook.xml)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newAddCmd())
	root.AddCommand(a.newListCmd())
	root.AddCommand(a.newDeleteCmd())
	root.AddCommand(a.newLookupCmd())
	root.AddCommand(a.newExportCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err == nil {
		os.Exit(exitSuccess)
	}
	fmt.Fprintln(os.Stderr, err)
	var ee *exitError
	if errors.As(err, &ee) {
		os.Exit(ee.code)
	}
	os.Exit(exitUserError)
}

func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	a.config = cfg
	a.logger.Debug("configuration loaded", "config_dir", configDir, "config_file", cfg.ConfigFileUsed())
	return nil
}

// openStorage resolves the storage file path and validates it.
func (a *app) openStorage() (*storage.File, error) {
	path, err := paths.ResolveStorageFile(a.flags.file, a.config.GetString(cfgKeyFile))
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve storage file: %w", err))
	}
	f, err := storage.NewFile(path, storage.WithLogger(a.logger))
	if err != nil {
		return nil, userError(err)
	}
	return f, nil
}
