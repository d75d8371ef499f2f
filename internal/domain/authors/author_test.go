//go:build unit
// +build unit

package authors

import (
	"strings"
	"testing"
	"time"

	"github.com/ipeirotis/citation-analysis-models/internal/domain/organizations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }

func TestAuthorValidation(t *testing.T) {
	tests := []struct {
		name          string
		author        *Author
		expectedError bool
	}{
		{
			name: "valid minimal author",
			author: &Author{
				Name: "example",
			},
			expectedError: false,
		},
		{
			name: "valid full author",
			author: &Author{
				Name:           "Jane Roe",
				Title:          strPtr("associate professor"),
				OrganizationID: uintPtr(1),
				YearOfPhD:      intPtr(2004),
				ScholarID:      strPtr("abc123"),
				TotalCitations: intPtr(1000),
				CitationsPerYear: []CitationsPerYear{
					{Year: 2020, Citations: 10},
				},
			},
			expectedError: false,
		},
		{
			name:          "missing name",
			author:        &Author{},
			expectedError: true,
		},
		{
			name: "name too long",
			author: &Author{
				Name: strings.Repeat("x", 257),
			},
			expectedError: true,
		},
		{
			name: "year of phd before recorded history",
			author: &Author{
				Name:      "Ancient Scholar",
				YearOfPhD: intPtr(900),
			},
			expectedError: true,
		},
		{
			name: "year of phd in the far future",
			author: &Author{
				Name:      "Time Traveler",
				YearOfPhD: intPtr(time.Now().Year() + 10),
			},
			expectedError: true,
		},
		{
			name: "negative total citations",
			author: &Author{
				Name:           "Negative Author",
				TotalCitations: intPtr(-1),
			},
			expectedError: true,
		},
		{
			name: "invalid citation year row",
			author: &Author{
				Name: "Cited Author",
				CitationsPerYear: []CitationsPerYear{
					{Year: 12, Citations: 5},
				},
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.author.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAuthorOrganizationTree(t *testing.T) {
	author := &Author{
		Name: "Jane Roe",
		Organization: &organizations.Organization{
			ID:   3,
			Name: "Computer Science",
		},
	}
	ancestors := []*organizations.Organization{
		{ID: 2, Name: "School of Engineering"},
		{ID: 1, Name: "Example University"},
	}

	assert.Equal(t, "Example University :: School of Engineering :: Computer Science", author.OrganizationTree(ancestors))
	assert.Equal(t, []uint{1, 2, 3}, author.OrganizationIDs(ancestors))
}

func TestAuthorOrganizationTree_NoOrganization(t *testing.T) {
	author := &Author{Name: "Unaffiliated"}

	assert.Equal(t, "", author.OrganizationTree(nil))
	assert.Empty(t, author.OrganizationIDs(nil))
}

func TestAuthorQueryValidation(t *testing.T) {
	valid := &AuthorQuery{SortBy: "total_citations", SortOrder: "desc", Limit: 10}
	require.NoError(t, valid.Validate())

	invalidSort := &AuthorQuery{SortBy: "password"}
	require.Error(t, invalidSort.Validate())

	invalidOrder := &AuthorQuery{SortBy: "name", SortOrder: "sideways"}
	require.Error(t, invalidOrder.Validate())
}
