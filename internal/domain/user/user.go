package user

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User is a stored identity. The importer only reads users, resolving
// free-text assignee/reporter/creator cells against name and email.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewUser(name, email, password string, role Role, bcryptCost int) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if role != RoleAdmin && role != RoleMember {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &User{
		name:         name,
		email:        strings.ToLower(email),
		passwordHash: string(hash),
		role:         role,
		createdAt:    time.Now(),
	}, nil
}

func Reconstruct(id uint, name, email, passwordHash string, role Role, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
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
