package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

func (a *app) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete a contact by its list index",
		Args:  cobra.ExactArgs(1),
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
			if err := book.Remove(index - 1); err != nil {
				return userError(err)
			}
			if err := file.Save(book); err != nil {
				return storageError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted contact %d: %s\n", index, formatContact(c))
			return nil
		},
	}
}

// parseIndex parses a 1-based contact index.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, userError(fmt.Errorf("invalid index %q: %w", s, types.ErrIndexOutOfRange))
	}
	return n, nil
}
