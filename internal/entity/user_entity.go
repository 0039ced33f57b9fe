// FILE: internal/entity/user_entity.go
package entity

// User is one credential record from the user sheet. Passwords are stored and
// compared as plain text; this gate keeps casual visitors out of internal
// sales material, nothing more.
type User struct {
	Username string
	Password string
}
