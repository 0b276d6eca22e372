package types

// AddressBook is an ordered list of contacts. Duplicates are allowed.
// The zero value is an empty, ready-to-use AddressBook.
type AddressBook struct {
	contacts []Contact
}

// NewAddressBook returns an AddressBook holding a copy of contacts.
func NewAddressBook(contacts ...Contact) AddressBook {
	if len(contacts) == 0 {
		return AddressBook{}
	}
	cp := make([]Contact, len(contacts))
	copy(cp, contacts)
	return AddressBook{contacts: cp}
}

// Add appends c to the end of the book.
func (a *AddressBook) Add(c Contact) {
	a.contacts = append(a.contacts, c)
}

// Remove deletes the contact at the zero-based index i.
// Returns ErrIndexOutOfRange if i is not a valid index.
func (a *AddressBook) Remove(i int) error {
	if i < 0 || i >= len(a.contacts) {
		return ErrIndexOutOfRange
	}
	a.contacts = append(a.contacts[:i:i], a.contacts[i+1:]...)
	return nil
}

// Get returns the contact at the zero-based index i.
func (a AddressBook) Get(i int) (Contact, error) {
	if i < 0 || i >= len(a.contacts) {
		return Contact{}, ErrIndexOutOfRange
	}
	return a.contacts[i], nil
}

// Contacts returns a copy of the contacts in order. Returns an empty slice
// (not nil) for an empty book.
func (a AddressBook) Contacts() []Contact {
	cp := make([]Contact, len(a.contacts))
	copy(cp, a.contacts)
	return cp
}

// Len returns the number of contacts.
func (a AddressBook) Len() int {
	return len(a.contacts)
}
