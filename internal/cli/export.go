package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/internal/export"
)

func (a *app) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Export contacts to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.openStorage()
			if err != nil {
				return err
			}
			book, err := file.Load()
			if err != nil {
				return storageError(err)
			}
			if err := export.WriteXLSX(args[0], book); err != nil {
				return userError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d contacts to %s\n", book.Len(), args[0])
			return nil
		},
	}
}
