package models

import (
	"time"

	"github.com/ipeirotis/citation-analysis-models/internal/domain/benchmarks"
)

// BenchmarkModel is the GORM database model for benchmarks
// (infrastructure concern)
type BenchmarkModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null;uniqueIndex;type:varchar(256)"`
	// Query is stored in the column named "query"; the Go field avoids
	// shadowing the SQL keyword in code.
	Query       string  `gorm:"column:query;not null;type:text"`
	Description *string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (BenchmarkModel) TableName() string {
	return "benchmark"
}

// ToDomain converts GORM model to domain entity
func (m *BenchmarkModel) ToDomain() *benchmarks.Benchmark {
	return &benchmarks.Benchmark{
		ID:          m.ID,
		Name:        m.Name,
		Query:       m.Query,
		Description: m.Description,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BenchmarkModel) FromDomain(b *benchmarks.Benchmark) {
	m.ID = b.ID
	m.Name = b.Name
	m.Query = b.Query
	m.Description = b.Description
}

// SuggestionModel is the GORM database model for suggested authors
// (infrastructure concern)
type SuggestionModel struct {
	ID             uint       `gorm:"primaryKey;autoIncrement"`
	AuthorID       *uint      `gorm:"index"`
	BenchmarkID    uint       `gorm:"index"`
	ScholarWebsite *string    `gorm:"type:text"`
	Rationale      *string    `gorm:"type:text"`
	Created        *time.Time `gorm:"column:created"`
}

// TableName specifies the table name for GORM
func (SuggestionModel) TableName() string {
	return "suggestions"
}

// ToDomain converts GORM model to domain entity
func (m *SuggestionModel) ToDomain() *benchmarks.Suggestion {
	return &benchmarks.Suggestion{
		ID:             m.ID,
		AuthorID:       m.AuthorID,
		BenchmarkID:    m.BenchmarkID,
		ScholarWebsite: m.ScholarWebsite,
		Rationale:      m.Rationale,
		Created:        m.Created,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SuggestionModel) FromDomain(s *benchmarks.Suggestion) {
	m.ID = s.ID
	m.AuthorID = s.AuthorID
	m.BenchmarkID = s.BenchmarkID
	m.ScholarWebsite = s.ScholarWebsite
	m.Rationale = s.Rationale
	m.Created = s.Created
}
