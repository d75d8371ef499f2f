//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/ipeirotis/citation-analysis-models/internal/domain/authors"
	"github.com/ipeirotis/citation-analysis-models/internal/domain/benchmarks"
	"github.com/ipeirotis/citation-analysis-models/internal/domain/organizations"
	"github.com/ipeirotis/citation-analysis-models/internal/domain/publications"
	"github.com/ipeirotis/citation-analysis-models/internal/pkg/config"
	pkgTesting "github.com/ipeirotis/citation-analysis-models/internal/pkg/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB              *gorm.DB
	AuthorRepo      authors.AuthorRepository
	OrgRepo         organizations.OrganizationRepository
	PublicationRepo publications.PublicationRepository
	BenchmarkRepo   benchmarks.BenchmarkRepository
	SuggestionRepo  benchmarks.SuggestionRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		CloseDB(db)
		cleanupFunc()
	})

	err = AutoMigrate(db)
	require.NoError(t, err, "Failed to migrate schema")

	logger := pkgTesting.SetupTestLogger(t)

	authorRepo, err := NewGormAuthorRepository(db, logger)
	require.NoError(t, err, "Failed to create author repository")

	orgRepo, err := NewGormOrganizationRepository(db, logger)
	require.NoError(t, err, "Failed to create organization repository")

	publicationRepo, err := NewGormPublicationRepository(db, logger)
	require.NoError(t, err, "Failed to create publication repository")

	benchmarkRepo, err := NewGormBenchmarkRepository(db, logger)
	require.NoError(t, err, "Failed to create benchmark repository")

	suggestionRepo, err := NewGormSuggestionRepository(db, logger)
	require.NoError(t, err, "Failed to create suggestion repository")

	return &TestContext{
		DB:              db,
		AuthorRepo:      authorRepo,
		OrgRepo:         orgRepo,
		PublicationRepo: publicationRepo,
		BenchmarkRepo:   benchmarkRepo,
		SuggestionRepo:  suggestionRepo,
	}
}

// CreateTestAuthor creates a test author with default values
func CreateTestAuthor(t *testing.T, name string) *authors.Author {
	t.Helper()

	if name == "" {
		name = "Test Author"
	}

	scholarID := uuid.NewString()[:12]
	retrievedAt := time.Now()

	return &authors.Author{
		Name:        name,
		ScholarID:   &scholarID,
		RetrievedAt: &retrievedAt,
	}
}

// CreateTestAuthorWithOptions creates a test author with custom options
func CreateTestAuthorWithOptions(t *testing.T, name string, orgID *uint, tenured bool, totalCitations int) *authors.Author {
	t.Helper()

	scholarID := uuid.NewString()[:12]

	return &authors.Author{
		Name:           name,
		OrganizationID: orgID,
		Tenured:        &tenured,
		ScholarID:      &scholarID,
		TotalCitations: &totalCitations,
	}
}

// CreateTestOrganization creates a test organization with an optional parent
func CreateTestOrganization(t *testing.T, name string, parentID *uint) *organizations.Organization {
	t.Helper()

	if name == "" {
		name = "Test University"
	}

	return &organizations.Organization{
		Name:     name,
		ParentID: parentID,
	}
}

// CreateTestPublication creates a test publication with default values
func CreateTestPublication(t *testing.T, title string) *publications.Publication {
	t.Helper()

	if title == "" {
		title = "A Test Publication"
	}

	pubType := "article"
	scholarID := uuid.NewString()[:12]
	year := 2020

	return &publications.Publication{
		Type:              &pubType,
		Title:             &title,
		ScholarID:         &scholarID,
		YearOfPublication: &year,
	}
}

// CreateTestBenchmark creates a test benchmark with a unique name
func CreateTestBenchmark(t *testing.T, name string) *benchmarks.Benchmark {
	t.Helper()

	if name == "" {
		name = "benchmark-" + uuid.NewString()[:8]
	}

	return &benchmarks.Benchmark{
		Name:  name,
		Query: "SELECT * FROM author WHERE tenured = true",
	}
}

// CreateTestSuggestion creates a test suggestion for a benchmark
func CreateTestSuggestion(t *testing.T, benchmarkID uint, authorID *uint) *benchmarks.Suggestion {
	t.Helper()

	website := "https://scholar.google.com/citations?user=test"
	rationale := "Highly cited in the field"
	created := time.Now()

	return &benchmarks.Suggestion{
		AuthorID:       authorID,
		BenchmarkID:    benchmarkID,
		ScholarWebsite: &website,
		Rationale:      &rationale,
		Created:        &created,
	}
}
