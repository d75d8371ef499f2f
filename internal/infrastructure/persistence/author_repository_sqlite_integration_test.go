//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/ipeirotis/citation-analysis-models/internal/domain/authors"
	"github.com/ipeirotis/citation-analysis-models/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	author := CreateTestAuthor(t, "example")

	err := ctx.AuthorRepo.Create(context.Background(), author)
	require.NoError(t, err)
	assert.NotZero(t, author.ID, "expected a generated identifier")

	fetched, err := ctx.AuthorRepo.GetByID(context.Background(), author.ID)
	require.NoError(t, err)
	assert.Equal(t, "example", fetched.Name)
}

func TestAuthorSqliteRepository_RoundTrip(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	title := "associate professor"
	yearOfPhD := 2005
	tenured := true
	hIndex := 42.5
	emailDomain := "cs.example.edu"
	retrievedAt := time.Now().UTC().Truncate(time.Second)

	author := CreateTestAuthor(t, "Jane Roe")
	author.Title = &title
	author.YearOfPhD = &yearOfPhD
	author.Tenured = &tenured
	author.HIndex = &hIndex
	author.EmailDomain = &emailDomain
	author.RetrievedAt = &retrievedAt

	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), author))

	fetched, err := ctx.AuthorRepo.GetByID(context.Background(), author.ID)
	require.NoError(t, err)

	assert.Equal(t, author.Name, fetched.Name)
	require.NotNil(t, fetched.Title)
	assert.Equal(t, title, *fetched.Title)
	require.NotNil(t, fetched.YearOfPhD)
	assert.Equal(t, yearOfPhD, *fetched.YearOfPhD)
	require.NotNil(t, fetched.Tenured)
	assert.True(t, *fetched.Tenured)
	require.NotNil(t, fetched.HIndex)
	assert.InDelta(t, hIndex, *fetched.HIndex, 0.001)
	require.NotNil(t, fetched.EmailDomain)
	assert.Equal(t, emailDomain, *fetched.EmailDomain)
	require.NotNil(t, fetched.RetrievedAt)
	assert.WithinDuration(t, retrievedAt, *fetched.RetrievedAt, time.Second)
}

func TestAuthorSqliteRepository_CreateInvalid(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	author := &authors.Author{}

	err := ctx.AuthorRepo.Create(context.Background(), author)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestAuthorSqliteRepository_GetByScholarID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	author := CreateTestAuthor(t, "Scholar Author")
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), author))

	fetched, err := ctx.AuthorRepo.GetByScholarID(context.Background(), *author.ScholarID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, fetched.ID)

	_, err = ctx.AuthorRepo.GetByScholarID(context.Background(), "missing")
	assert.Error(t, err)
}

func TestAuthorSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	org := CreateTestOrganization(t, "Example University", nil)
	require.NoError(t, ctx.OrgRepo.Create(context.Background(), org))

	a1 := CreateTestAuthorWithOptions(t, "Alice", &org.ID, true, 1000)
	a2 := CreateTestAuthorWithOptions(t, "Bob", &org.ID, false, 50)
	a3 := CreateTestAuthorWithOptions(t, "Carol", nil, true, 500)

	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), a1))
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), a2))
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), a3))

	all, err := ctx.AuthorRepo.List(context.Background(), &authors.AuthorQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byOrg, err := ctx.AuthorRepo.List(context.Background(), &authors.AuthorQuery{OrganizationID: &org.ID})
	require.NoError(t, err)
	assert.Len(t, byOrg, 2)

	tenured := true
	byTenure, err := ctx.AuthorRepo.List(context.Background(), &authors.AuthorQuery{Tenured: &tenured})
	require.NoError(t, err)
	assert.Len(t, byTenure, 2)

	sorted, err := ctx.AuthorRepo.List(context.Background(), &authors.AuthorQuery{
		SortBy:    "total_citations",
		SortOrder: "desc",
		Limit:     2,
	})
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "Alice", sorted[0].Name)
	assert.Equal(t, "Carol", sorted[1].Name)
}

func TestAuthorSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	author := CreateTestAuthor(t, "Before Update")
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), author))

	author.Name = "After Update"
	totalCitations := 777
	author.TotalCitations = &totalCitations
	require.NoError(t, ctx.AuthorRepo.UpdateByID(context.Background(), author))

	fetched, err := ctx.AuthorRepo.GetByID(context.Background(), author.ID)
	require.NoError(t, err)
	assert.Equal(t, "After Update", fetched.Name)
	require.NotNil(t, fetched.TotalCitations)
	assert.Equal(t, totalCitations, *fetched.TotalCitations)
}

func TestAuthorSqliteRepository_AddCoauthor(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	author := CreateTestAuthor(t, "Primary Author")
	coauthor := CreateTestAuthor(t, "Coauthor")
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), author))
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), coauthor))

	require.NoError(t, ctx.AuthorRepo.AddCoauthor(context.Background(), author.ID, coauthor.ID))

	fetched, err := ctx.AuthorRepo.GetByID(context.Background(), author.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Coauthors, 1)
	assert.Equal(t, coauthor.ID, fetched.Coauthors[0].ID)

	// Links are directed rows; the reverse direction is not implied.
	reverse, err := ctx.AuthorRepo.GetByID(context.Background(), coauthor.ID)
	require.NoError(t, err)
	assert.Empty(t, reverse.Coauthors)
}

func TestAuthorSqliteRepository_AddCoauthorMissingTarget(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	author := CreateTestAuthor(t, "Lonely Author")
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), author))

	err := ctx.AuthorRepo.AddCoauthor(context.Background(), author.ID, 9999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAuthorSqliteRepository_AddPublication(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	author := CreateTestAuthor(t, "Prolific Author")
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), author))

	pub := CreateTestPublication(t, "Shared Paper")
	require.NoError(t, ctx.PublicationRepo.Create(context.Background(), pub))

	require.NoError(t, ctx.AuthorRepo.AddPublication(context.Background(), author.ID, pub.ID))

	fetched, err := ctx.AuthorRepo.GetByID(context.Background(), author.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Publications, 1)
	assert.Equal(t, pub.ID, fetched.Publications[0].ID)
}

func TestAuthorSqliteRepository_ReplaceCitationsPerYear(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	author := CreateTestAuthor(t, "Cited Author")
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), author))

	rows := []authors.CitationsPerYear{
		{Year: 2021, Citations: 30},
		{Year: 2019, Citations: 10},
		{Year: 2020, Citations: 20},
	}
	require.NoError(t, ctx.AuthorRepo.ReplaceCitationsPerYear(context.Background(), author.ID, rows))

	fetched, err := ctx.AuthorRepo.GetByID(context.Background(), author.ID)
	require.NoError(t, err)
	require.Len(t, fetched.CitationsPerYear, 3)
	assert.Equal(t, 2019, fetched.CitationsPerYear[0].Year)
	assert.Equal(t, 2020, fetched.CitationsPerYear[1].Year)
	assert.Equal(t, 2021, fetched.CitationsPerYear[2].Year)

	// Replacing again drops the old rows.
	require.NoError(t, ctx.AuthorRepo.ReplaceCitationsPerYear(context.Background(), author.ID, []authors.CitationsPerYear{
		{Year: 2022, Citations: 5},
	}))

	fetched, err = ctx.AuthorRepo.GetByID(context.Background(), author.ID)
	require.NoError(t, err)
	require.Len(t, fetched.CitationsPerYear, 1)
	assert.Equal(t, 2022, fetched.CitationsPerYear[0].Year)
}

func TestAuthorSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	author := CreateTestAuthor(t, "Doomed Author")
	coauthor := CreateTestAuthor(t, "Surviving Coauthor")
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), author))
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), coauthor))
	require.NoError(t, ctx.AuthorRepo.AddCoauthor(context.Background(), author.ID, coauthor.ID))
	require.NoError(t, ctx.AuthorRepo.ReplaceCitationsPerYear(context.Background(), author.ID, []authors.CitationsPerYear{
		{Year: 2020, Citations: 12},
	}))

	require.NoError(t, ctx.AuthorRepo.DeleteByID(context.Background(), author.ID))

	_, err := ctx.AuthorRepo.GetByID(context.Background(), author.ID)
	assert.Error(t, err)

	var citationRows int64
	require.NoError(t, ctx.DB.Table("author_citations_per_year").Where("author_id = ?", author.ID).Count(&citationRows).Error)
	assert.Zero(t, citationRows)

	var coauthorRows int64
	require.NoError(t, ctx.DB.Table("coauthor").Where("author_id = ? OR coauthor_id = ?", author.ID, author.ID).Count(&coauthorRows).Error)
	assert.Zero(t, coauthorRows)

	// The other author is untouched.
	_, err = ctx.AuthorRepo.GetByID(context.Background(), coauthor.ID)
	assert.NoError(t, err)
}

func TestAuthorSqliteRepository_OrganizationPreload(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	org := CreateTestOrganization(t, "Preload University", nil)
	require.NoError(t, ctx.OrgRepo.Create(context.Background(), org))

	author := CreateTestAuthor(t, "Affiliated Author")
	author.OrganizationID = &org.ID
	require.NoError(t, ctx.AuthorRepo.Create(context.Background(), author))

	fetched, err := ctx.AuthorRepo.GetByID(context.Background(), author.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Organization)
	assert.Equal(t, "Preload University", fetched.Organization.Name)
}
