package controller

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/albertisntreal/showdown-survivor/db"
	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/albertisntreal/showdown-survivor/push"
	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

// Authenticate logs a user in, registering them on first sight of the email
// address so there is no separate signup flow.
func (c *controller) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	u, err := c.db.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return c.register(ctx, email, password)
		}
		return nil, err
	}

	salt, err := hex.DecodeString(u.PasswordSalt)
	if err != nil {
		return nil, fmt.Errorf("error decoding salt for user %s: %w", u.ID, err)
	}
	hash, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(hex.EncodeToString(hash)), []byte(u.PasswordHash)) != 1 {
		return nil, ErrBadPassword
	}
	return u, nil
}

func (c *controller) register(ctx context.Context, email, password string) (*model.User, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}
	hash, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  model.DefaultDisplayName(email),
		PasswordHash: hex.EncodeToString(hash),
		PasswordSalt: hex.EncodeToString(salt),
		Created:      c.clock.Now().UTC(),
	}
	if err := c.db.AddUser(ctx, u); err != nil {
		return nil, fmt.Errorf("error registering user: %w", err)
	}
	log.Printf("registered new user %s", u.ID)
	return u, nil
}

func (c *controller) GetUser(ctx context.Context, id string) (*model.User, error) {
	return c.db.GetUser(ctx, id)
}

func (c *controller) UpdateProfile(ctx context.Context, userID, displayName, avatarURL string) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return errors.New("display name is required")
	}
	return c.db.UpdateUser(ctx, userID, func(u *model.User) error {
		u.DisplayName = displayName
		u.AvatarURL = strings.TrimSpace(avatarURL)
		return nil
	})
}

func (c *controller) AddPushSubscription(ctx context.Context, userID string, sub model.PushSubscription) error {
	if sub.Endpoint == "" {
		return errors.New("subscription endpoint is required")
	}
	return c.db.UpdateUser(ctx, userID, func(u *model.User) error {
		for _, s := range u.Subscriptions {
			if s.Endpoint == sub.Endpoint {
				return nil
			}
		}
		u.Subscriptions = append(u.Subscriptions, sub)
		return nil
	})
}

// notify delivers a push message on a separate goroutine so the triggering
// operation never waits on, or fails because of, delivery. Dead endpoints
// reported by the notifier are pruned from the user's subscriptions.
func (c *controller) notify(userID string, msg push.Message) {
	go func() {
		ctx := context.Background()
		u, err := c.db.GetUser(ctx, userID)
		if err != nil {
			log.Printf("error loading user %s for notification: %v", userID, err)
			return
		}
		gone := c.notifier.Notify(ctx, u, msg)
		if len(gone) == 0 {
			return
		}
		err = c.db.UpdateUser(ctx, userID, func(u *model.User) error {
			kept := u.Subscriptions[:0]
			for _, s := range u.Subscriptions {
				if !contains(gone, s.Endpoint) {
					kept = append(kept, s)
				}
			}
			u.Subscriptions = kept
			return nil
		})
		if err != nil {
			log.Printf("error pruning subscriptions for user %s: %v", userID, err)
		}
	}()
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
