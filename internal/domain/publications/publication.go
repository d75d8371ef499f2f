package publications

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ipeirotis/citation-analysis-models/internal/pkg/validators"
)

// Publication entity
type Publication struct {
	ID                uint
	Type              *string `validate:"omitempty,max=16"`
	Title             *string `validate:"omitempty,max=512"`
	AuthorNames       *string `validate:"omitempty,max=512"`
	ScholarID         *string `validate:"omitempty,max=64"`
	YearOfPublication *int    `validate:"omitempty,yearValidation"`
	TotalCitations    *int    `validate:"omitempty,min=0"`
	RetrievedAt       *time.Time
	Venue             *string `validate:"omitempty,max=256"`
	Volume            *int    `validate:"omitempty,min=1"`
	Issue             *int    `validate:"omitempty,min=1"`
	Publisher         *string `validate:"omitempty,max=256"`
	Pages             *string `validate:"omitempty,max=32"`

	// CitationsPerYear holds the per-year citation counts, ordered by year.
	// The rows live and die with the publication.
	CitationsPerYear []CitationsPerYear `validate:"dive"`
}

// CitationsPerYear represents the citations for a publication in one year
type CitationsPerYear struct {
	PublicationID uint
	Year          int `validate:"required,yearValidation"`
	Citations     int `validate:"min=0"`
}

// Validate for validating Publication struct
func (p *Publication) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("yearValidation", validators.YearValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(p)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
