package models

import (
	"github.com/ipeirotis/citation-analysis-models/internal/domain/organizations"
)

// OrganizationModel is the GORM database model for organizations
// (infrastructure concern). Organizations reference their parent in the same
// table, forming a family tree.
type OrganizationModel struct {
	ID       uint               `gorm:"primaryKey;autoIncrement"`
	Name     string             `gorm:"not null;type:varchar(256)"`
	ParentID *uint              `gorm:"index"`
	Parent   *OrganizationModel `gorm:"foreignKey:ParentID"`

	ScholarOrgID      *string `gorm:"column:scholar_org_id;type:varchar(256)"`
	Location          *string `gorm:"type:varchar(256)"`
	WebsiteURL        *string `gorm:"column:website_url;type:varchar(256)"`
	ChildrenSourceURL *string `gorm:"column:children_source_url;type:varchar(256)"`

	Children []*OrganizationModel `gorm:"foreignKey:ParentID"`
	Authors  []*AuthorModel       `gorm:"foreignKey:OrganizationID"`
}

// TableName specifies the table name for GORM
func (OrganizationModel) TableName() string {
	return "organization"
}

// ToDomain converts GORM model to domain entity. Loaded Parent and Children
// associations are converted one level deep.
func (m *OrganizationModel) ToDomain() *organizations.Organization {
	org := &organizations.Organization{
		ID:                m.ID,
		Name:              m.Name,
		ParentID:          m.ParentID,
		ScholarOrgID:      m.ScholarOrgID,
		Location:          m.Location,
		WebsiteURL:        m.WebsiteURL,
		ChildrenSourceURL: m.ChildrenSourceURL,
	}
	if m.Parent != nil {
		org.Parent = &organizations.Organization{
			ID:       m.Parent.ID,
			Name:     m.Parent.Name,
			ParentID: m.Parent.ParentID,
		}
	}
	for _, child := range m.Children {
		org.Children = append(org.Children, &organizations.Organization{
			ID:       child.ID,
			Name:     child.Name,
			ParentID: child.ParentID,
		})
	}
	return org
}

// FromDomain converts domain entity to GORM model. Only scalar columns and
// foreign keys are taken; tree links are managed through the repository.
func (m *OrganizationModel) FromDomain(org *organizations.Organization) {
	m.ID = org.ID
	m.Name = org.Name
	m.ParentID = org.ParentID
	m.ScholarOrgID = org.ScholarOrgID
	m.Location = org.Location
	m.WebsiteURL = org.WebsiteURL
	m.ChildrenSourceURL = org.ChildrenSourceURL
}
