package importer

import (
	"context"
	"fmt"
	"strings"

	"workbase/internal/domain/user"
)

// IdentityResolver maps free-text name or email cells to stored user ids.
// All identities referenced by a file are resolved with one bulk query at
// import start; unresolvable text falls back to the importing user so every
// row still carries accountable identities.
type IdentityResolver struct {
	byName     map[string]uint
	byEmail    map[string]uint
	importerID uint
}

// BuildIdentityResolver collects the distinct non-empty assignee, reporter
// and creator cells from the data rows and resolves them in a single lookup.
func BuildIdentityResolver(ctx context.Context, users user.Repository, columnMap *ColumnMap, rows [][]string, importerID uint) (*IdentityResolver, error) {
	seen := make(map[string]bool)
	var values []string
	for _, row := range rows {
		for _, field := range []Field{FieldAssignee, FieldReporter, FieldCreator} {
			v := columnMap.Value(row, field)
			if v == "" {
				continue
			}
			key := strings.ToLower(v)
			if !seen[key] {
				seen[key] = true
				values = append(values, v)
			}
		}
	}

	resolver := &IdentityResolver{
		byName:     make(map[string]uint),
		byEmail:    make(map[string]uint),
		importerID: importerID,
	}
	if len(values) == 0 {
		return resolver, nil
	}

	matched, err := users.FindByNamesOrEmails(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identities: %w", err)
	}
	for _, u := range matched {
		resolver.byName[strings.ToLower(u.Name())] = u.ID()
		resolver.byEmail[strings.ToLower(u.Email())] = u.ID()
	}
	return resolver, nil
}

// Resolve returns the user id for a cell's text. Email matches take
// precedence over name matches; empty or unknown text resolves to the
// importing user.
func (r *IdentityResolver) Resolve(raw string) uint {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return r.importerID
	}
	if id, ok := r.byEmail[key]; ok {
		return id
	}
	if id, ok := r.byName[key]; ok {
		return id
	}
	return r.importerID
}

// ImporterID returns the fallback identity.
func (r *IdentityResolver) ImporterID() uint {
	return r.importerID
}
