package models

import (
	"time"

	"github.com/ipeirotis/citation-analysis-models/internal/domain/authors"
)

// AuthorModel is the GORM database model for authors (infrastructure concern)
type AuthorModel struct {
	ID    uint    `gorm:"primaryKey;autoIncrement"`
	Name  string  `gorm:"not null;type:varchar(256)"`
	Title *string `gorm:"type:varchar(256)"`

	OrganizationID *uint              `gorm:"index"`
	Organization   *OrganizationModel `gorm:"foreignKey:OrganizationID"`

	AutoOrgAssignment *bool
	AuthorOrgGoogleID *string `gorm:"type:varchar(256)"`

	YearOfPhD *int `gorm:"column:year_of_phd"`
	Tenured   *bool

	ScholarID   *string `gorm:"uniqueIndex;type:varchar(64)"`
	WebsiteURL  *string `gorm:"column:website_url;type:varchar(256)"`
	EmailDomain *string `gorm:"type:varchar(256)"`

	TotalCitations *int
	HIndex         *float64 `gorm:"column:h_index;type:decimal(10,2)"`
	I10Index       *float64 `gorm:"column:i10_index;type:decimal(10,2)"`
	RetrievedAt    *time.Time

	// Coauthor links are directed rows in the coauthor join table.
	Coauthors    []*AuthorModel      `gorm:"many2many:coauthor;joinForeignKey:author_id;joinReferences:coauthor_id"`
	Publications []*PublicationModel `gorm:"many2many:author_publication;joinForeignKey:author_id;joinReferences:publication_id"`

	CitationsPerYear []AuthorCitationsPerYearModel `gorm:"foreignKey:AuthorID"`
}

// TableName specifies the table name for GORM
func (AuthorModel) TableName() string {
	return "author"
}

// ToDomain converts GORM model to domain entity. Loaded associations are
// converted one level deep.
func (m *AuthorModel) ToDomain() *authors.Author {
	a := &authors.Author{
		ID:                m.ID,
		Name:              m.Name,
		Title:             m.Title,
		OrganizationID:    m.OrganizationID,
		AutoOrgAssignment: m.AutoOrgAssignment,
		AuthorOrgGoogleID: m.AuthorOrgGoogleID,
		YearOfPhD:         m.YearOfPhD,
		Tenured:           m.Tenured,
		ScholarID:         m.ScholarID,
		WebsiteURL:        m.WebsiteURL,
		EmailDomain:       m.EmailDomain,
		TotalCitations:    m.TotalCitations,
		HIndex:            m.HIndex,
		I10Index:          m.I10Index,
		RetrievedAt:       m.RetrievedAt,
	}
	if m.Organization != nil {
		a.Organization = m.Organization.ToDomain()
	}
	for _, coauthor := range m.Coauthors {
		a.Coauthors = append(a.Coauthors, &authors.Author{
			ID:             coauthor.ID,
			Name:           coauthor.Name,
			Title:          coauthor.Title,
			OrganizationID: coauthor.OrganizationID,
			ScholarID:      coauthor.ScholarID,
		})
	}
	for _, pub := range m.Publications {
		a.Publications = append(a.Publications, pub.ToDomain())
	}
	for _, row := range m.CitationsPerYear {
		a.CitationsPerYear = append(a.CitationsPerYear, authors.CitationsPerYear{
			AuthorID:  row.AuthorID,
			Year:      row.Year,
			Citations: row.Citations,
		})
	}
	return a
}

// FromDomain converts domain entity to GORM model. Only scalar columns and
// foreign keys are taken; associations are managed through the repository.
func (m *AuthorModel) FromDomain(a *authors.Author) {
	m.ID = a.ID
	m.Name = a.Name
	m.Title = a.Title
	m.OrganizationID = a.OrganizationID
	m.AutoOrgAssignment = a.AutoOrgAssignment
	m.AuthorOrgGoogleID = a.AuthorOrgGoogleID
	m.YearOfPhD = a.YearOfPhD
	m.Tenured = a.Tenured
	m.ScholarID = a.ScholarID
	m.WebsiteURL = a.WebsiteURL
	m.EmailDomain = a.EmailDomain
	m.TotalCitations = a.TotalCitations
	m.HIndex = a.HIndex
	m.I10Index = a.I10Index
	m.RetrievedAt = a.RetrievedAt
}

// AuthorCitationsPerYearModel is the GORM database model for the per-year
// citation counts of an author. The composite primary key is (author, year).
type AuthorCitationsPerYearModel struct {
	AuthorID  uint `gorm:"primaryKey;autoIncrement:false"`
	Year      int  `gorm:"primaryKey;autoIncrement:false"`
	Citations int  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (AuthorCitationsPerYearModel) TableName() string {
	return "author_citations_per_year"
}
