package user

import (
	"fmt"
	"strings"
	"time"

	"ticketdesk/internal/shared/biztime"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email string) (*User, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}

	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &User{
		name:      name,
		email:     normalized,
		role:      RoleUser,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	role string,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if role == "" {
		role = RoleUser
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() string {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPassword hashes the plaintext through the given hasher and stores the
// result. Hash failures propagate; they are never fatal to the process.
func (u *User) SetPassword(plaintext string, hasher PasswordHasher) error {
	if len(plaintext) == 0 {
		return fmt.Errorf("password is required")
	}
	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}

// VerifyPassword checks the plaintext against the stored hash. Any hasher
// error is reported as a mismatch.
func (u *User) VerifyPassword(plaintext string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("password not set")
	}
	return hasher.Verify(plaintext, u.passwordHash)
}

// normalizeEmail lower-cases and minimally validates an email address.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 {
		return "", fmt.Errorf("email is required")
	}
	if len(email) > 255 {
		return "", fmt.Errorf("email exceeds maximum length of 255 characters")
	}
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return "", fmt.Errorf("invalid email format")
	}
	return email, nil
}
