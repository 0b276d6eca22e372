package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// contactJSON is the --json representation of a contact. Private values are
// masked.
type contactJSON struct {
	Index      int    `json:"index"`
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	Unit       string `json:"unit"`
}

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Long:  "List prints every contact with its 1-based index. Private values are shown as " + types.PrivateMask + ".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := a.openStorage()
			if err != nil {
				return err
			}
			book, err := file.Load()
			if err != nil {
				return storageError(err)
			}

			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				records := make([]contactJSON, 0, book.Len())
				for i, c := range book.Contacts() {
					f := c.DisplayFields()
					records = append(records, contactJSON{Index: i + 1, PostalCode: f[0], Street: f[1], Unit: f[2]})
				}
				data, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return sysError(fmt.Errorf("marshal contacts: %w", err))
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			if book.Len() == 0 {
				fmt.Fprintln(out, "No contacts.")
				return nil
			}
			for i, c := range book.Contacts() {
				fmt.Fprintf(out, "%d. %s\n", i+1, formatContact(c))
			}
			return nil
		},
	}
}

func formatContact(c types.Contact) string {
	return strings.Join(c.DisplayFields(), ", ")
}
