// Package entity contains the core business objects of the project.
package entity

import "time"

// Person holds the identity-free value fields shared by people in the
// catalog. Director embeds it; there is no polymorphism across kinds of
// people, so composition is enough.
type Person struct {
	FirstName string
	LastName  string
	BirthDate time.Time
}

// FullName returns "FirstName LastName".
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
