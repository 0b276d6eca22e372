package types

// Contact is one address book entry. Every field is valid once constructed;
// build contacts with NewContact or from values returned by the field
// constructors.
type Contact struct {
	PostalCode PostalCode
	Street     Street
	Unit       Unit
}

// ContactInput carries raw field strings and visibility flags, as read from
// a command line or an on-disk record.
type ContactInput struct {
	PostalCode        string
	Street            string
	Unit              string
	PrivatePostalCode bool
	PrivateStreet     bool
	PrivateUnit       bool
}

// NewContact validates every field of in. The first invalid field is
// returned as a *ValidationError, checked in RequiredFields order.
func NewContact(in ContactInput) (Contact, error) {
	postal, err := NewPostalCode(in.PostalCode, in.PrivatePostalCode)
	if err != nil {
		return Contact{}, err
	}
	street, err := NewStreet(in.Street, in.PrivateStreet)
	if err != nil {
		return Contact{}, err
	}
	unit, err := NewUnit(in.Unit, in.PrivateUnit)
	if err != nil {
		return Contact{}, err
	}
	return Contact{PostalCode: postal, Street: street, Unit: unit}, nil
}

// PrivateMask replaces private values in listings and exports.
const PrivateMask = "(private)"

// DisplayFields returns the postal code, street and unit in order, with
// private values replaced by PrivateMask.
func (c Contact) DisplayFields() []string {
	return []string{
		mask(c.PostalCode.String(), c.PostalCode.IsPrivate()),
		mask(c.Street.String(), c.Street.IsPrivate()),
		mask(c.Unit.String(), c.Unit.IsPrivate()),
	}
}

func mask(v string, private bool) string {
	if private {
		return PrivateMask
	}
	return v
}
