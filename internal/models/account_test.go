package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccountPayload_Apply(t *testing.T) {
	today := time.Date(2024, time.March, 5, 17, 30, 0, 0, time.FixedZone("X", 3600))
	phone := "555-0100"

	t.Run("defaults date joined to today", func(t *testing.T) {
		payload := AccountPayload{Name: "Jane", Email: "jane@example.com", Address: "1 Main St", PhoneNumber: &phone}
		account := &Account{ID: 7}

		payload.Apply(account, today)

		assert.Equal(t, int64(7), account.ID, "id is never touched")
		assert.Equal(t, "Jane", account.Name)
		assert.Equal(t, "jane@example.com", account.Email)
		assert.Equal(t, "1 Main St", account.Address)
		assert.Equal(t, &phone, account.PhoneNumber)
		assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), account.DateJoined)
	})

	t.Run("keeps supplied date joined", func(t *testing.T) {
		joined := time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)
		payload := AccountPayload{Name: "Jane", Email: "jane@example.com", Address: "1 Main St", DateJoined: &joined}
		account := &Account{}

		payload.Apply(account, today)

		assert.Equal(t, joined, account.DateJoined)
		assert.Nil(t, account.PhoneNumber)
	})

	t.Run("replaces previous values", func(t *testing.T) {
		account := &Account{ID: 1, Name: "Old", Email: "old@example.com", Address: "Old", PhoneNumber: &phone}
		payload := AccountPayload{Name: "New", Email: "new@example.com", Address: "New"}

		payload.Apply(account, today)

		assert.Equal(t, "New", account.Name)
		assert.Nil(t, account.PhoneNumber, "full replacement clears optional fields")
	})
}

func TestAccountPayload_Apply_UsesUTCDay(t *testing.T) {
	payload := AccountPayload{Name: "Jane", Email: "jane@example.com", Address: "1 Main St"}

	tests := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		{
			name:  "local day ahead of UTC",
			today: time.Date(2024, time.March, 6, 0, 30, 0, 0, time.FixedZone("UTC+2", 2*3600)),
			want:  time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "local day behind UTC",
			today: time.Date(2024, time.March, 5, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			want:  time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := &Account{}

			payload.Apply(account, tt.today)

			assert.Equal(t, tt.want, account.DateJoined)
		})
	}
}
