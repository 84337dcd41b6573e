package entity

import "time"

// User is a credential record. Created at sign-up, immutable thereafter;
// there is no update or delete flow.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
