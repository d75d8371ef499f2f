package organizations

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Organization entity. Organizations form a family tree: a university is the
// parent of its schools, a school is the parent of its departments, and so on.
type Organization struct {
	ID       uint
	Name     string `validate:"required,min=1,max=256"`
	ParentID *uint
	Parent   *Organization   `validate:"-"`
	Children []*Organization `validate:"-"`

	// ScholarOrgID is the ID Google Scholar holds for this organization,
	// needed for automatic organization assignment.
	ScholarOrgID *string `validate:"omitempty,max=256"`
	Location     *string `validate:"omitempty,max=256"`
	WebsiteURL   *string `validate:"omitempty,max=256"`
	// ChildrenSourceURL is where the children of the organization can be
	// retrieved from.
	ChildrenSourceURL *string `validate:"omitempty,max=256"`
}

// Validate for validating Organization struct
func (o *Organization) Validate() error {
	validate := validator.New()

	err := validate.Struct(o)
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

// TreePath joins organization names from the root of the family tree down to
// the given organization with " :: ". Ancestors are expected nearest-first,
// as returned by OrganizationRepository.Ancestors.
func TreePath(org *Organization, ancestors []*Organization) string {
	if org == nil {
		return ""
	}
	names := make([]string, 0, len(ancestors)+1)
	for i := len(ancestors) - 1; i >= 0; i-- {
		names = append(names, ancestors[i].Name)
	}
	names = append(names, org.Name)
	return strings.Join(names, " :: ")
}

// TreePathIDs returns the IDs of the organization and all its ancestors,
// starting from the root of the family tree.
func TreePathIDs(org *Organization, ancestors []*Organization) []uint {
	if org == nil {
		return nil
	}
	ids := make([]uint, 0, len(ancestors)+1)
	for i := len(ancestors) - 1; i >= 0; i-- {
		ids = append(ids, ancestors[i].ID)
	}
	ids = append(ids, org.ID)
	return ids
}

// TreeNode is one node of a nested descendant tree.
type TreeNode struct {
	ID              uint        `json:"id"`
	Name            string      `json:"name"`
	Children        []*TreeNode `json:"children"`
	NumberOfAuthors int64       `json:"number_of_authors"`
}
