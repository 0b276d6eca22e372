package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/addressbook/pkg/storage"
	"github.com/mesh-intelligence/addressbook/pkg/types"
)

func TestNewFileRoundTrip(t *testing.T) {
	f, err := storage.NewFile(filepath.Join(t.TempDir(), "contacts.xml"))
	require.NoError(t, err)

	c, err := types.NewContact(types.ContactInput{
		PostalCode: types.ExamplePostalCode,
		Street:     types.ExampleStreet,
		Unit:       types.ExampleUnit,
	})
	require.NoError(t, err)

	require.NoError(t, f.Save(types.NewAddressBook(c)))
	book, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, []types.Contact{c}, book.Contacts())
}

func TestNewFileInvalidPath(t *testing.T) {
	_, err := storage.NewFile("contacts.yaml")
	assert.ErrorIs(t, err, storage.ErrInvalidPath)
}
