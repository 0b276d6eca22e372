package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

func (a *app) newAddCmd() *cobra.Command {
	var in types.ContactInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		Long: `Add validates the given fields, appends a contact to the address book and
saves it.

Example:
  addressbook add --postal-code 119077 --street "Clementi Ave 3" --unit "#12-34"
  addressbook add --postal-code 119077 --street "Clementi Ave 3" --unit "#12-34" --private-unit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := types.NewContact(in)
			if err != nil {
				return userError(err)
			}

			file, err := a.openStorage()
			if err != nil {
				return err
			}
			book, err := file.Load()
			if err != nil {
				return storageError(err)
			}
			book.Add(c)
			if err := file.Save(book); err != nil {
				return storageError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added contact %d: %s\n", book.Len(), formatContact(c))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.PostalCode, "postal-code", "", "six-digit postal code (required)")
	cmd.Flags().StringVar(&in.Street, "street", "", "street (required)")
	cmd.Flags().StringVar(&in.Unit, "unit", "", "unit (required)")
	cmd.Flags().BoolVar(&in.PrivatePostalCode, "private-postal-code", false, "hide the postal code in listings")
	cmd.Flags().BoolVar(&in.PrivateStreet, "private-street", false, "hide the street in listings")
	cmd.Flags().BoolVar(&in.PrivateUnit, "private-unit", false, "hide the unit in listings")
	_ = cmd.MarkFlagRequired("postal-code")
	_ = cmd.MarkFlagRequired("street")
	_ = cmd.MarkFlagRequired("unit")

	return cmd
}
