package organizations

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// OrganizationQuery defines filter and pagination options for listing organizations
type OrganizationQuery struct {
	Name      string
	ParentID  *uint
	RootsOnly bool

	SortBy    string `validate:"omitempty,oneof=id name"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=1"`
	Offset    int    `validate:"omitempty,min=0"`
}

// Validate checks the query parameters
func (q *OrganizationQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for OrganizationQuery: %w", err)
	}
	return nil
}

// OrganizationRepository defines the interface for Organization-related operations
type OrganizationRepository interface {
	// Create adds a new Organization to the database
	Create(ctx context.Context, org *Organization) error
	// List lists Organizations in the database with optional filter
	List(ctx context.Context, query *OrganizationQuery) ([]*Organization, error)
	// GetByID retrieves an Organization from the database by ID
	GetByID(ctx context.Context, orgID uint) (*Organization, error)
	// UpdateByID updates an Organization in the database by ID
	UpdateByID(ctx context.Context, org *Organization) error
	// DeleteByID deletes an Organization in the database by ID.
	// What happens to authors and child organizations still attached to it is
	// governed by the foreign-key policy configured in the database, not here.
	DeleteByID(ctx context.Context, orgID uint) error

	// Ancestors returns the ancestors of an organization, starting from its
	// parent and ending at the root of the family tree.
	Ancestors(ctx context.Context, orgID uint) ([]*Organization, error)
	// Descendants returns the descendants of an organization, starting from
	// its children and ending at the leaves of the family tree.
	Descendants(ctx context.Context, orgID uint) ([]*Organization, error)
	// DescendantTree returns the descendants of an organization as a nested
	// tree, each node carrying its author count.
	DescendantTree(ctx context.Context, orgID uint) ([]*TreeNode, error)
	// CountAuthors returns the number of authors that belong to an organization.
	CountAuthors(ctx context.Context, orgID uint) (int64, error)
	// TreePath returns the names of an organization and all its ancestors
	// (root first) separated with " :: ".
	TreePath(ctx context.Context, orgID uint) (string, error)
}
