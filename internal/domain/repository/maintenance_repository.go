package repository

import (
	"context"

	"aeon/internal/domain/entity"
)

// HealthRepository reports whether the store accepts statements.
type HealthRepository interface {
	Ping(ctx context.Context) error
}

// SchemaRepository manages the table layout for the maintenance tool.
type SchemaRepository interface {
	// Migrate creates missing tables and columns. Existing data is left untouched.
	Migrate(ctx context.Context) error

	// Tables lists every table of the current database with its columns.
	Tables(ctx context.Context) ([]entity.TableInfo, error)
}
