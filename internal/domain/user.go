package domain

// User mirrors the identity platform's account record. Only the fields
// needed for purchase notifications are carried.
type User struct {
	ID    string
	Email string
	Name  string
}
