package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// FindByNamesOrEmails returns every user whose display name or email
	// matches one of the given values exactly. One bulk query; the importer
	// uses it to resolve all identities referenced by a file up front.
	FindByNamesOrEmails(ctx context.Context, values []string) ([]*User, error)
}
