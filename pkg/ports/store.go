package ports

import (
	"context"

	"github.com/aretw0/fixtura/pkg/domain"
)

// SchemaStore defines the interface for a registry of named schemas.
// Stores hold schema definitions only, never generated records.
type SchemaStore interface {
	// Save stores the schema under name, replacing any previous one.
	Save(ctx context.Context, name string, schema domain.Schema) error

	// Load retrieves the schema stored under name.
	// Returns domain.ErrSchemaNotFound if the name does not exist.
	Load(ctx context.Context, name string) (domain.Schema, error)

	// Delete removes the schema. Deleting a missing name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the stored names in lexical order.
	List(ctx context.Context) ([]string, error)
}
