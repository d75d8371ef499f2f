package persistence

import (
	"fmt"

	"github.com/ipeirotis/citation-analysis-models/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// AutoMigrate checks the declared model set for internal consistency and
// registers it with the ORM runtime, which derives and applies the schema.
// Registration is order-independent and safe to repeat.
func AutoMigrate(db *gorm.DB) error {
	registry := models.NewSchemaRegistry()
	if err := registry.RegisterAll(); err != nil {
		return fmt.Errorf("failed to register model schemas: %w", err)
	}
	if err := registry.Validate(); err != nil {
		return fmt.Errorf("inconsistent model declarations: %w", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
