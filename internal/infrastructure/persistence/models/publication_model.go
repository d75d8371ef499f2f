package models

import (
	"time"

	"github.com/ipeirotis/citation-analysis-models/internal/domain/publications"
)

// PublicationModel is the GORM database model for publications
// (infrastructure concern)
type PublicationModel struct {
	ID    uint    `gorm:"primaryKey;autoIncrement"`
	Type  *string `gorm:"type:varchar(16)"`
	Title *string `gorm:"type:varchar(512)"`
	// AuthorNames keeps the comma-separated author names as scraped; the
	// column keeps its historical name.
	AuthorNames *string `gorm:"column:authors;type:varchar(512)"`

	ScholarID         *string `gorm:"uniqueIndex;type:varchar(64)"`
	YearOfPublication *int
	TotalCitations    *int
	RetrievedAt       *time.Time

	Venue     *string `gorm:"type:varchar(256)"`
	Volume    *int
	Issue     *int
	Publisher *string `gorm:"type:varchar(256)"`
	Pages     *string `gorm:"type:varchar(32)"`

	CitationsPerYear []PublicationCitationsPerYearModel `gorm:"foreignKey:PublicationID"`
}

// TableName specifies the table name for GORM
func (PublicationModel) TableName() string {
	return "publication"
}

// ToDomain converts GORM model to domain entity
func (m *PublicationModel) ToDomain() *publications.Publication {
	p := &publications.Publication{
		ID:                m.ID,
		Type:              m.Type,
		Title:             m.Title,
		AuthorNames:       m.AuthorNames,
		ScholarID:         m.ScholarID,
		YearOfPublication: m.YearOfPublication,
		TotalCitations:    m.TotalCitations,
		RetrievedAt:       m.RetrievedAt,
		Venue:             m.Venue,
		Volume:            m.Volume,
		Issue:             m.Issue,
		Publisher:         m.Publisher,
		Pages:             m.Pages,
	}
	for _, row := range m.CitationsPerYear {
		p.CitationsPerYear = append(p.CitationsPerYear, publications.CitationsPerYear{
			PublicationID: row.PublicationID,
			Year:          row.Year,
			Citations:     row.Citations,
		})
	}
	return p
}

// FromDomain converts domain entity to GORM model. Only scalar columns are
// taken; per-year citation rows are managed through the repository.
func (m *PublicationModel) FromDomain(p *publications.Publication) {
	m.ID = p.ID
	m.Type = p.Type
	m.Title = p.Title
	m.AuthorNames = p.AuthorNames
	m.ScholarID = p.ScholarID
	m.YearOfPublication = p.YearOfPublication
	m.TotalCitations = p.TotalCitations
	m.RetrievedAt = p.RetrievedAt
	m.Venue = p.Venue
	m.Volume = p.Volume
	m.Issue = p.Issue
	m.Publisher = p.Publisher
	m.Pages = p.Pages
}

// PublicationCitationsPerYearModel is the GORM database model for the
// per-year citation counts of a publication. The composite primary key is
// (publication, year).
type PublicationCitationsPerYearModel struct {
	PublicationID uint `gorm:"primaryKey;autoIncrement:false"`
	Year          int  `gorm:"primaryKey;autoIncrement:false"`
	Citations     int  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PublicationCitationsPerYearModel) TableName() string {
	return "publication_citations_per_year"
}
