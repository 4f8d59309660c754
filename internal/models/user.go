package models

import "time"

// User represents a user account in the system. PhoneCipher holds the
// encrypted phone number in "iv:ciphertext" form; the plaintext is only
// ever materialized for the read-self response.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	PhoneCipher  string    `json:"-"`
	Age          int       `json:"age"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile is the public projection of a user returned by auth endpoints.
// Phone is populated only by read-self, where it is decrypted for display.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Age   int    `json:"age,omitempty"`
}
