package model

import (
	"strings"
	"time"
)

type User struct {
	ID          string
	Email       string
	DisplayName string
	AvatarURL   string
	// Scrypt digest of the password; both fields are hex-encoded. Opaque to
	// everything except the login path.
	PasswordHash string
	PasswordSalt string
	IsAdmin      bool
	JoinedPools  []string
	// Subscriptions are web-push delivery targets registered by the browser.
	Subscriptions []PushSubscription
	Created       time.Time
}

// PushSubscription is one browser push endpoint with its client keys.
type PushSubscription struct {
	Endpoint string `json:"endpoint"`
	Auth     string `json:"auth"`
	P256dh   string `json:"p256dh"`
}

func (u *User) HasJoined(poolID string) bool {
	for _, id := range u.JoinedPools {
		if id == poolID {
			return true
		}
	}
	return false
}

// DefaultDisplayName derives a display name from an email address, the same
// fallback used at registration.
func DefaultDisplayName(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
