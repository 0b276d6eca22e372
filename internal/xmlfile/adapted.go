// XML record structures and the adapters between them and pkg/types.
package xmlfile

import (
	"encoding/xml"
	"fmt"

	"github.com/mesh-intelligence/addressbook/pkg/types"
)

// addressBookXML is the root element of the storage file.
type addressBookXML struct {
	XMLName  xml.Name     `xml:"addressBook"`
	Contacts []contactXML `xml:"contact"`
}

// contactXML mirrors types.Contact with every field optional. A nil field
// means the element was absent from the file.
type contactXML struct {
	PostalCode *fieldXML `xml:"postalCode"`
	Street     *fieldXML `xml:"street"`
	Unit       *fieldXML `xml:"unit"`
}

// fieldXML is one field element. Private is written only for private values;
// an absent attribute reads as public.
type fieldXML struct {
	Value   string `xml:",chardata"`
	Private *bool  `xml:"isPrivate,attr,omitempty"`
}

func newFieldXML(value string, private bool) *fieldXML {
	f := &fieldXML{Value: value}
	if private {
		f.Private = &private
	}
	return f
}

func (f *fieldXML) isPrivate() bool {
	return f.Private != nil && *f.Private
}

func contactToXML(c types.Contact) contactXML {
	return contactXML{
		PostalCode: newFieldXML(c.PostalCode.String(), c.PostalCode.IsPrivate()),
		Street:     newFieldXML(c.Street.String(), c.Street.IsPrivate()),
		Unit:       newFieldXML(c.Unit.String(), c.Unit.IsPrivate()),
	}
}

// missingFields returns the names of absent required fields in document order.
func (c contactXML) missingFields() []string {
	var missing []string
	if c.PostalCode == nil {
		missing = append(missing, types.FieldPostalCode)
	}
	if c.Street == nil {
		missing = append(missing, types.FieldStreet)
	}
	if c.Unit == nil {
		missing = append(missing, types.FieldUnit)
	}
	return missing
}

// toModel rebuilds a contact. Returns *types.MissingFieldError for the first
// absent field, or the field's *types.ValidationError unchanged.
func (c contactXML) toModel() (types.Contact, error) {
	if missing := c.missingFields(); len(missing) > 0 {
		return types.Contact{}, &types.MissingFieldError{Field: missing[0]}
	}
	postal, err := types.NewPostalCode(c.PostalCode.Value, c.PostalCode.isPrivate())
	if err != nil {
		return types.Contact{}, err
	}
	street, err := types.NewStreet(c.Street.Value, c.Street.isPrivate())
	if err != nil {
		return types.Contact{}, err
	}
	unit, err := types.NewUnit(c.Unit.Value, c.Unit.isPrivate())
	if err != nil {
		return types.Contact{}, err
	}
	return types.Contact{PostalCode: postal, Street: street, Unit: unit}, nil
}

func addressBookToXML(book types.AddressBook) addressBookXML {
	contacts := book.Contacts()
	doc := addressBookXML{Contacts: make([]contactXML, 0, len(contacts))}
	for _, c := range contacts {
		doc.Contacts = append(doc.Contacts, contactToXML(c))
	}
	return doc
}

// isAnyRequiredFieldMissing must be checked before toModel so that a
// document is rejected as a whole rather than half converted.
func (d addressBookXML) isAnyRequiredFieldMissing() bool {
	return d.firstMissingField() != nil
}

// firstMissingField describes the first absent field in the document, or
// returns nil when every contact is complete. Contacts are numbered from 1.
func (d addressBookXML) firstMissingField() error {
	for i, c := range d.Contacts {
		if missing := c.missingFields(); len(missing) > 0 {
			return fmt.Errorf("contact %d: %w", i+1, &types.MissingFieldError{Field: missing[0]})
		}
	}
	return nil
}

// toModel converts every contact in order. Callers check
// isAnyRequiredFieldMissing first.
func (d addressBookXML) toModel() (types.AddressBook, error) {
	contacts := make([]types.Contact, 0, len(d.Contacts))
	for _, cx := range d.Contacts {
		c, err := cx.toModel()
		if err != nil {
			return types.AddressBook{}, err
		}
		contacts = append(contacts, c)
	}
	return types.NewAddressBook(contacts...), nil
}
