package store

import (
	"context"

	"aeon/internal/domain/entity"
	"aeon/internal/domain/repository"
	"aeon/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type healthRepository struct {
	db *gorm.DB
}

// NewHealthRepository is the constructor for healthRepository.
func NewHealthRepository(db *gorm.DB) repository.HealthRepository {
	return &healthRepository{db: db}
}

func (repo *healthRepository) Ping(ctx context.Context) error {
	var one int
	if err := repo.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error; err != nil {
		return translateError(err, "failed to ping database")
	}

	return nil
}

type schemaRepository struct {
	db *gorm.DB
}

// NewSchemaRepository is the constructor for schemaRepository.
func NewSchemaRepository(db *gorm.DB) repository.SchemaRepository {
	return &schemaRepository{db: db}
}

// Migrate auto-migrates every model in dependency order. Columns added later,
// such as customers.created_at, are created on tables that predate them.
func (repo *schemaRepository) Migrate(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return translateError(err, "failed to migrate schema")
	}

	return nil
}

func (repo *schemaRepository) Tables(ctx context.Context) ([]entity.TableInfo, error) {
	migrator := repo.db.WithContext(ctx).Migrator()

	names, err := migrator.GetTables()
	if err != nil {
		return nil, translateError(err, "failed to list tables")
	}

	tables := make([]entity.TableInfo, 0, len(names))
	for _, name := range names {
		columnTypes, err := migrator.ColumnTypes(name)
		if err != nil {
			return nil, translateError(err, "failed to describe table "+name)
		}

		columns := make([]entity.ColumnInfo, 0, len(columnTypes))
		for _, ct := range columnTypes {
			nullable, _ := ct.Nullable()
			columns = append(columns, entity.ColumnInfo{
				Name:     ct.Name(),
				Type:     ct.DatabaseTypeName(),
				Nullable: nullable,
			})
		}

		tables = append(tables, entity.TableInfo{Name: name, Columns: columns})
	}

	return tables, nil
}
