// Package accounts manages the set of registered (username, password) pairs.
package accounts

// Account is a registered user. Accounts are never mutated after sign-up;
// the registry is append-only.
//
// The password is stored in the clear: it doubles as part of the note store's
// partition key, so it must survive round-trips verbatim.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
