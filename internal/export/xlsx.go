// Package export writes an address book to spreadsheet files.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// SheetName is the worksheet holding the contacts.
const SheetName = "Contacts"

// Extension is the required suffix for export paths.
const Extension = ".xlsx"

// Header is the first row of the exported sheet.
var Header = []string{"#", "Postal Code", "Street", "Unit"}

// WriteXLSX writes book to a new workbook at path, one contact per row
// numbered from 1. Private values are written as types.PrivateMask.
func WriteXLSX(path string, book types.AddressBook) error {
	if !strings.EqualFold(filepath.Ext(path), Extension) {
		return fmt.Errorf("export file %s should end with %q", path, Extension)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, c := range book.Contacts() {
		row := []any{i + 1}
		for _, v := range c.DisplayFields() {
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing contact %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
