package models

import (
	"fmt"
	"sync"

	"gorm.io/gorm/schema"
)

// All returns the full model set, in an order safe for schema registration
// (referenced tables before referencing ones).
func All() []any {
	return []any{
		&OrganizationModel{},
		&AuthorModel{},
		&AuthorCitationsPerYearModel{},
		&PublicationModel{},
		&PublicationCitationsPerYearModel{},
		&BenchmarkModel{},
		&SuggestionModel{},
	}
}

// SchemaRegistry is an explicit record of declared model schemas. Unlike a
// process-wide registry, each instance owns its cache, so independent model
// sets can coexist in one process. The zero value is not usable; call
// NewSchemaRegistry.
type SchemaRegistry struct {
	cache   *sync.Map
	namer   schema.Namer
	byTable map[string]*schema.Schema
	tables  []string
}

// NewSchemaRegistry creates an empty registry with GORM's default naming
// strategy.
func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{
		cache:   &sync.Map{},
		namer:   schema.NamingStrategy{},
		byTable: make(map[string]*schema.Schema),
	}
}

// Register parses one model and records its schema. Registering the same
// table twice with a different model is an error.
func (r *SchemaRegistry) Register(model any) (*schema.Schema, error) {
	s, err := schema.Parse(model, r.cache, r.namer)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
	}

	if existing, ok := r.byTable[s.Table]; ok {
		if existing != s {
			return nil, fmt.Errorf("table %q declared by two models: %s and %s", s.Table, existing.Name, s.Name)
		}
		return s, nil
	}

	r.byTable[s.Table] = s
	r.tables = append(r.tables, s.Table)
	return s, nil
}

// RegisterAll registers the full model set returned by All.
func (r *SchemaRegistry) RegisterAll() error {
	for _, model := range All() {
		if _, err := r.Register(model); err != nil {
			return err
		}
	}
	return nil
}

// Tables returns the registered table names in registration order.
func (r *SchemaRegistry) Tables() []string {
	tables := make([]string, len(r.tables))
	copy(tables, r.tables)
	return tables
}

// Schema returns the registered schema for a table name, if any.
func (r *SchemaRegistry) Schema(table string) (*schema.Schema, bool) {
	s, ok := r.byTable[table]
	return s, ok
}

// Validate checks the registered declarations for internal consistency:
// every model has a primary key, no table declares duplicate column names,
// and every declared relationship targets a registered model. It does not
// touch the database; referential integrity at runtime stays with the
// storage engine.
func (r *SchemaRegistry) Validate() error {
	for _, table := range r.tables {
		s := r.byTable[table]

		if len(s.PrimaryFields) == 0 {
			return fmt.Errorf("model %s (table %q) has no primary key", s.Name, table)
		}

		columns := make(map[string]string)
		for _, field := range s.Fields {
			if field.DBName == "" {
				continue
			}
			if prev, ok := columns[field.DBName]; ok {
				return fmt.Errorf("model %s (table %q) declares column %q twice (fields %s and %s)",
					s.Name, table, field.DBName, prev, field.Name)
			}
			columns[field.DBName] = field.Name
		}

		for _, rel := range s.Relationships.Relations {
			target := rel.FieldSchema
			if target == nil {
				continue
			}
			if _, ok := r.byTable[target.Table]; !ok {
				return fmt.Errorf("model %s relationship %s targets unregistered table %q",
					s.Name, rel.Name, target.Table)
			}
		}
	}
	return nil
}
