package authors

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthorQuery defines filter and pagination options for listing authors
type AuthorQuery struct {
	Name           string
	OrganizationID *uint
	Tenured        *bool
	RetrievedAfter time.Time

	SortBy    string `validate:"omitempty,oneof=id name total_citations h_index i10_index retrieved_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1"`
	Offset    int    `validate:"omitempty,min=0"`
}

// Validate checks the query parameters
func (q *AuthorQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for AuthorQuery: %w", err)
	}
	return nil
}

// AuthorRepository defines the interface for Author-related operations
type AuthorRepository interface {
	// Create adds a new Author to the database
	Create(ctx context.Context, author *Author) error
	// List lists Authors in the database with optional filter
	List(ctx context.Context, query *AuthorQuery) ([]*Author, error)
	// GetByID retrieves an Author from the database by ID, including its
	// organization, coauthors, publications and per-year citation counts
	GetByID(ctx context.Context, authorID uint) (*Author, error)
	// GetByScholarID retrieves an Author by its Google Scholar ID
	GetByScholarID(ctx context.Context, scholarID string) (*Author, error)
	// UpdateByID updates an Author in the database by ID
	UpdateByID(ctx context.Context, author *Author) error
	// DeleteByID deletes an Author by ID together with its per-year citation
	// rows, coauthor links and publication associations
	DeleteByID(ctx context.Context, authorID uint) error

	// AddCoauthor records a coauthor link from one author to another. Links
	// are directed rows in the join table; symmetry is not implied.
	AddCoauthor(ctx context.Context, authorID, coauthorID uint) error
	// AddPublication associates a publication with an author
	AddPublication(ctx context.Context, authorID, pubID uint) error
	// ReplaceCitationsPerYear replaces the per-year citation counts of an
	// author with the given rows
	ReplaceCitationsPerYear(ctx context.Context, authorID uint, rows []CitationsPerYear) error
}
