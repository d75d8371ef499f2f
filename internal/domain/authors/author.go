package authors

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ipeirotis/citation-analysis-models/internal/domain/organizations"
	"github.com/ipeirotis/citation-analysis-models/internal/domain/publications"
	"github.com/ipeirotis/citation-analysis-models/internal/pkg/validators"
)

// Author entity
type Author struct {
	ID   uint
	Name string `validate:"required,min=1,max=256"`
	// Title is the academic title of the author, e.g. associate professor.
	Title *string `validate:"omitempty,max=256"`

	OrganizationID *uint
	Organization   *organizations.Organization `validate:"-"`
	// AutoOrgAssignment is true when the organization was assigned by an
	// oracle function rather than by user input.
	AutoOrgAssignment *bool
	// AuthorOrgGoogleID is the organization's Google ID, sometimes found on
	// the author's page; kept to cross-check the assignment later.
	AuthorOrgGoogleID *string `validate:"omitempty,max=256"`

	YearOfPhD *int `validate:"omitempty,yearValidation"`
	Tenured   *bool
	// ScholarID is the ID of the author in Google Scholar.
	ScholarID   *string `validate:"omitempty,max=64"`
	WebsiteURL  *string `validate:"omitempty,max=256"`
	EmailDomain *string `validate:"omitempty,max=256"`

	TotalCitations *int `validate:"omitempty,min=0"`
	HIndex         *float64
	I10Index       *float64
	// RetrievedAt is when information about the author was last retrieved
	// from Google Scholar.
	RetrievedAt *time.Time

	Coauthors    []*Author                   `validate:"-"`
	Publications []*publications.Publication `validate:"-"`
	// CitationsPerYear holds the per-year citation counts, ordered by year.
	// The rows live and die with the author.
	CitationsPerYear []CitationsPerYear `validate:"dive"`
}

// CitationsPerYear represents the citations for an author in one year
type CitationsPerYear struct {
	AuthorID  uint
	Year      int `validate:"required,yearValidation"`
	Citations int `validate:"min=0"`
}

// Validate for validating Author struct
func (a *Author) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("yearValidation", validators.YearValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(a)
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

// OrganizationTree returns the names of the author's organization and all its
// ancestors (root first) separated with " :: ". Ancestors are expected
// nearest-first, as returned by OrganizationRepository.Ancestors. Returns an
// empty string when the author has no organization.
func (a *Author) OrganizationTree(ancestors []*organizations.Organization) string {
	return organizations.TreePath(a.Organization, ancestors)
}

// OrganizationIDs returns the IDs of the author's organization and all its
// ancestors, starting from the root of the family tree.
func (a *Author) OrganizationIDs(ancestors []*organizations.Organization) []uint {
	return organizations.TreePathIDs(a.Organization, ancestors)
}
