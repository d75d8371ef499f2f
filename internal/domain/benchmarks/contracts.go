package benchmarks

import (
	"context"
)

// BenchmarkRepository defines the interface for Benchmark-related operations
type BenchmarkRepository interface {
	// Create adds a new Benchmark to the database
	Create(ctx context.Context, benchmark *Benchmark) error
	// List lists all Benchmarks in the database
	List(ctx context.Context) ([]*Benchmark, error)
	// GetByID retrieves a Benchmark from the database by ID
	GetByID(ctx context.Context, benchmarkID uint) (*Benchmark, error)
	// GetByName retrieves a Benchmark by its unique name
	GetByName(ctx context.Context, name string) (*Benchmark, error)
	// UpdateByID updates a Benchmark in the database by ID
	UpdateByID(ctx context.Context, benchmark *Benchmark) error
	// DeleteByID deletes a Benchmark in the database by ID
	DeleteByID(ctx context.Context, benchmarkID uint) error
}

// SuggestionRepository defines the interface for Suggestion-related operations
type SuggestionRepository interface {
	// Create adds a new Suggestion to the database
	Create(ctx context.Context, suggestion *Suggestion) error
	// ListByBenchmark lists all Suggestions recorded for a benchmark
	ListByBenchmark(ctx context.Context, benchmarkID uint) ([]*Suggestion, error)
	// GetByID retrieves a Suggestion from the database by ID
	GetByID(ctx context.Context, suggestionID uint) (*Suggestion, error)
	// DeleteByID deletes a Suggestion in the database by ID
	DeleteByID(ctx context.Context, suggestionID uint) error
}
