package publications

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// PublicationQuery defines filter and pagination options for listing publications
type PublicationQuery struct {
	Type              string
	YearOfPublication int
	RetrievedAfter    time.Time

	SortBy    string `validate:"omitempty,oneof=id title year_of_publication total_citations retrieved_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1"`
	Offset    int    `validate:"omitempty,min=0"`
}

// Validate checks the query parameters
func (q *PublicationQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for PublicationQuery: %w", err)
	}
	return nil
}

// PublicationRepository defines the interface for Publication-related operations
type PublicationRepository interface {
	// Create adds a new Publication to the database
	Create(ctx context.Context, pub *Publication) error
	// List lists Publications in the database with optional filter
	List(ctx context.Context, query *PublicationQuery) ([]*Publication, error)
	// GetByID retrieves a Publication from the database by ID, including its
	// per-year citation counts ordered by year
	GetByID(ctx context.Context, pubID uint) (*Publication, error)
	// GetByScholarID retrieves a Publication by its Google Scholar ID
	GetByScholarID(ctx context.Context, scholarID string) (*Publication, error)
	// UpdateByID updates a Publication in the database by ID
	UpdateByID(ctx context.Context, pub *Publication) error
	// DeleteByID deletes a Publication by ID together with its per-year
	// citation rows and its author associations
	DeleteByID(ctx context.Context, pubID uint) error
	// ReplaceCitationsPerYear replaces the per-year citation counts of a
	// publication with the given rows
	ReplaceCitationsPerYear(ctx context.Context, pubID uint, rows []CitationsPerYear) error
}
