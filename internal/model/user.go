package model

import "time"

// User represents a registered account. Identity is immutable once
// created: accounts are never updated or deleted. The password hash is
// excluded from JSON so it can never leak through a response.
//
// Fields:
//  ID           – unique numeric identifier allocated by the store.
//  Name         – display name supplied at registration.
//  Email        – unique email address, matched exactly (case-sensitive).
//  PasswordHash – bcrypt digest of the password.
//  CreatedAt    – timestamp of registration.
type User struct {
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
