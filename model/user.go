package model

// UserVerificationState is the slice of the users row the verification
// endpoints expose.
type UserVerificationState struct {
	Name              string  `db:"name"`
	Verified          bool    `db:"verified"`
	VerificationLevel *string `db:"verification_level"`
}
