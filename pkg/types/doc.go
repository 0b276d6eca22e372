// Package types defines the contact entity, its self-validating field values,
// the AddressBook collection, and the validation errors shared by the storage
// and CLI layers of the address book.
package types
