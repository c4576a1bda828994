package models

import (
	"time"
)

// Account represents a customer account record
type Account struct {
	DateJoined  time.Time `db:"date_joined"`
	PhoneNumber *string   `db:"phone_number"`
	Name        string    `db:"name"`
	Email       string    `db:"email"`
	Address     string    `db:"address"`
	ID          int64     `db:"id"`
}

// AccountPayload is the client-supplied content of an account, used for both
// create and full-replacement update. The id is never part of it.
type AccountPayload struct {
	DateJoined  *time.Time `json:"date_joined"`
	PhoneNumber *string    `json:"phone_number" validate:"omitempty,max=32"`
	Name        string     `json:"name" validate:"required,max=64"`
	Email       string     `json:"email" validate:"required,max=64"`
	Address     string     `json:"address" validate:"required,max=256"`
}

// Apply overwrites every mutable field of the account with the payload.
// The date joined falls back to today when the payload does not carry one.
func (p *AccountPayload) Apply(account *Account, today time.Time) {
	account.Name = p.Name
	account.Email = p.Email
	account.Address = p.Address
	account.PhoneNumber = p.PhoneNumber

	joined := today
	if p.DateJoined != nil {
		joined = *p.DateJoined
	}
	account.DateJoined = dateOf(joined)
}

// dateOf truncates t to midnight of its UTC calendar day.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
