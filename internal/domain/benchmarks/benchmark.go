package benchmarks

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Benchmark entity. A benchmark is a named query over the author corpus,
// e.g. "database researchers with tenure".
type Benchmark struct {
	ID   uint
	Name string `validate:"required,min=1,max=256"`
	// Query is the query text associated with the benchmark.
	Query string `validate:"required"`
	// Description describes the benchmark in plain English.
	Description *string
}

// Validate for validating Benchmark struct
func (b *Benchmark) Validate() error {
	return validateStruct(b)
}

// Suggestion represents a suggested author for a benchmark.
type Suggestion struct {
	ID uint
	// AuthorID links the suggestion to an author once one is matched; a
	// fresh suggestion may not reference any author yet.
	AuthorID    *uint
	BenchmarkID uint `validate:"required"`
	// ScholarWebsite is a URL where information about the author can be found.
	ScholarWebsite *string
	// Rationale states why this author should be included in the benchmark.
	Rationale *string
	Created   *time.Time
}

// Validate for validating Suggestion struct
func (s *Suggestion) Validate() error {
	return validateStruct(s)
}

func validateStruct(v any) error {
	validate := validator.New()

	err := validate.Struct(v)
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
