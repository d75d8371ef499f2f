package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ipeirotis/citation-analysis-models/internal/domain/organizations"
	"github.com/ipeirotis/citation-analysis-models/internal/infrastructure/persistence/models"
	"github.com/ipeirotis/citation-analysis-models/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormOrganizationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrganizationRepository creates a new GORM-based OrganizationRepository implementation
func NewGormOrganizationRepository(db *gorm.DB, logger logger.Logger) (organizations.OrganizationRepository, error) {
	return &gormOrganizationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOrganizationRepository) Create(ctx context.Context, org *organizations.Organization) error {
	if err := org.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrganizationModel{}
	model.FromDomain(org)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	org.ID = model.ID

	r.logger.Info("Created organization with id ", org.ID)
	return nil
}

func (r *gormOrganizationRepository) List(ctx context.Context, query *organizations.OrganizationQuery) ([]*organizations.Organization, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.OrganizationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.OrganizationModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.ParentID != nil {
		dbQuery = dbQuery.Where("parent_id = ?", *query.ParentID)
	}
	if query.RootsOnly {
		dbQuery = dbQuery.Where("parent_id IS NULL")
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch organizations: %w", err)
	}

	domainList := make([]*organizations.Organization, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormOrganizationRepository) GetByID(ctx context.Context, orgID uint) (*organizations.Organization, error) {
	var model models.OrganizationModel
	err := r.db.WithContext(ctx).
		Preload("Parent").
		Preload("Children").
		Where("id = ?", orgID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("organization with ID %d not found", orgID)
		}
		return nil, fmt.Errorf("failed to fetch organization: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormOrganizationRepository) UpdateByID(ctx context.Context, org *organizations.Organization) error {
	if err := org.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrganizationModel{}
	model.FromDomain(org)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}

	r.logger.Info("Updated organization with id ", org.ID)
	return nil
}

func (r *gormOrganizationRepository) DeleteByID(ctx context.Context, orgID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", orgID).Delete(&models.OrganizationModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	r.logger.Info("Deleted organization with id ", orgID)
	return nil
}

func (r *gormOrganizationRepository) Ancestors(ctx context.Context, orgID uint) ([]*organizations.Organization, error) {
	var model models.OrganizationModel
	if err := r.db.WithContext(ctx).Where("id = ?", orgID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("organization with ID %d not found", orgID)
		}
		return nil, fmt.Errorf("failed to fetch organization: %w", err)
	}

	var ancestors []*organizations.Organization
	seen := map[uint]bool{model.ID: true}

	for model.ParentID != nil {
		parentID := *model.ParentID
		if seen[parentID] {
			return nil, fmt.Errorf("organization tree contains a cycle at ID %d", parentID)
		}
		seen[parentID] = true

		var parent models.OrganizationModel
		if err := r.db.WithContext(ctx).Where("id = ?", parentID).First(&parent).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("organization with ID %d has dangling parent %d", model.ID, parentID)
			}
			return nil, fmt.Errorf("failed to fetch parent organization: %w", err)
		}

		ancestors = append(ancestors, parent.ToDomain())
		model = parent
	}

	return ancestors, nil
}

func (r *gormOrganizationRepository) Descendants(ctx context.Context, orgID uint) ([]*organizations.Organization, error) {
	var descendants []*organizations.Organization

	frontier := []uint{orgID}
	for len(frontier) > 0 {
		var children []*models.OrganizationModel
		if err := r.db.WithContext(ctx).Where("parent_id IN ?", frontier).Order("id").Find(&children).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch child organizations: %w", err)
		}

		frontier = frontier[:0]
		for _, child := range children {
			descendants = append(descendants, child.ToDomain())
			frontier = append(frontier, child.ID)
		}
	}

	return descendants, nil
}

func (r *gormOrganizationRepository) DescendantTree(ctx context.Context, orgID uint) ([]*organizations.TreeNode, error) {
	var children []*models.OrganizationModel
	if err := r.db.WithContext(ctx).Where("parent_id = ?", orgID).Order("id").Find(&children).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch child organizations: %w", err)
	}

	nodes := make([]*organizations.TreeNode, 0, len(children))
	for _, child := range children {
		subtree, err := r.DescendantTree(ctx, child.ID)
		if err != nil {
			return nil, err
		}
		count, err := r.CountAuthors(ctx, child.ID)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &organizations.TreeNode{
			ID:              child.ID,
			Name:            child.Name,
			Children:        subtree,
			NumberOfAuthors: count,
		})
	}

	return nodes, nil
}

func (r *gormOrganizationRepository) CountAuthors(ctx context.Context, orgID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AuthorModel{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}

func (r *gormOrganizationRepository) TreePath(ctx context.Context, orgID uint) (string, error) {
	org, err := r.GetByID(ctx, orgID)
	if err != nil {
		return "", err
	}
	ancestors, err := r.Ancestors(ctx, orgID)
	if err != nil {
		return "", err
	}
	return organizations.TreePath(org, ancestors), nil
}
