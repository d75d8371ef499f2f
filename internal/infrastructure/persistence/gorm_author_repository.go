package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ipeirotis/citation-analysis-models/internal/domain/authors"
	"github.com/ipeirotis/citation-analysis-models/internal/infrastructure/persistence/models"
	"github.com/ipeirotis/citation-analysis-models/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormAuthorRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAuthorRepository creates a new GORM-based AuthorRepository implementation
func NewGormAuthorRepository(db *gorm.DB, logger logger.Logger) (authors.AuthorRepository, error) {
	return &gormAuthorRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAuthorRepository) Create(ctx context.Context, author *authors.Author) error {
	if err := author.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AuthorModel{}
	model.FromDomain(author)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}

	// Propagate the generated identifier back to the caller.
	author.ID = model.ID

	r.logger.Info("Created author with id ", author.ID)
	return nil
}

func (r *gormAuthorRepository) List(ctx context.Context, query *authors.AuthorQuery) ([]*authors.Author, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.AuthorModel
	dbQuery := r.db.WithContext(ctx).Model(&models.AuthorModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.OrganizationID != nil {
		dbQuery = dbQuery.Where("organization_id = ?", *query.OrganizationID)
	}
	if query.Tenured != nil {
		dbQuery = dbQuery.Where("tenured = ?", *query.Tenured)
	}
	if !query.RetrievedAfter.IsZero() {
		dbQuery = dbQuery.Where("retrieved_at >= ?", query.RetrievedAfter)
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
		return nil, fmt.Errorf("failed to fetch authors: %w", err)
	}

	domainList := make([]*authors.Author, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormAuthorRepository) GetByID(ctx context.Context, authorID uint) (*authors.Author, error) {
	var model models.AuthorModel
	err := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("Coauthors").
		Preload("Publications").
		Preload("CitationsPerYear", func(db *gorm.DB) *gorm.DB {
			return db.Order("year")
		}).
		Where("id = ?", authorID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("author with ID %d not found", authorID)
		}
		return nil, fmt.Errorf("failed to fetch author: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAuthorRepository) GetByScholarID(ctx context.Context, scholarID string) (*authors.Author, error) {
	var model models.AuthorModel
	err := r.db.WithContext(ctx).Where("scholar_id = ?", scholarID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("author with scholar ID %s not found", scholarID)
		}
		return nil, fmt.Errorf("failed to fetch author: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAuthorRepository) UpdateByID(ctx context.Context, author *authors.Author) error {
	if err := author.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AuthorModel{}
	model.FromDomain(author)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update author: %w", err)
	}

	r.logger.Info("Updated author with id ", author.ID)
	return nil
}

func (r *gormAuthorRepository) DeleteByID(ctx context.Context, authorID uint) error {
	// Per-year citation rows and join-table rows live and die with the
	// author, so they are removed in the same transaction.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", authorID).Delete(&models.AuthorCitationsPerYearModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete citation rows: %w", err)
		}
		if err := tx.Exec("DELETE FROM coauthor WHERE author_id = ? OR coauthor_id = ?", authorID, authorID).Error; err != nil {
			return fmt.Errorf("failed to delete coauthor links: %w", err)
		}
		if err := tx.Exec("DELETE FROM author_publication WHERE author_id = ?", authorID).Error; err != nil {
			return fmt.Errorf("failed to delete publication associations: %w", err)
		}
		if err := tx.Where("id = ?", authorID).Delete(&models.AuthorModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete author: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted author with id ", authorID)
	return nil
}

func (r *gormAuthorRepository) AddCoauthor(ctx context.Context, authorID, coauthorID uint) error {
	var author, coauthor models.AuthorModel
	if err := r.db.WithContext(ctx).Where("id = ?", authorID).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("author with ID %d not found", authorID)
		}
		return fmt.Errorf("failed to fetch author: %w", err)
	}
	if err := r.db.WithContext(ctx).Where("id = ?", coauthorID).First(&coauthor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("coauthor with ID %d not found", coauthorID)
		}
		return fmt.Errorf("failed to fetch coauthor: %w", err)
	}

	if err := r.db.WithContext(ctx).Model(&author).Association("Coauthors").Append(&coauthor); err != nil {
		return fmt.Errorf("failed to add coauthor link: %w", err)
	}

	r.logger.Info("Linked coauthor ", coauthorID, " to author ", authorID)
	return nil
}

func (r *gormAuthorRepository) AddPublication(ctx context.Context, authorID, pubID uint) error {
	var author models.AuthorModel
	if err := r.db.WithContext(ctx).Where("id = ?", authorID).First(&author).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("author with ID %d not found", authorID)
		}
		return fmt.Errorf("failed to fetch author: %w", err)
	}
	var pub models.PublicationModel
	if err := r.db.WithContext(ctx).Where("id = ?", pubID).First(&pub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("publication with ID %d not found", pubID)
		}
		return fmt.Errorf("failed to fetch publication: %w", err)
	}

	if err := r.db.WithContext(ctx).Model(&author).Association("Publications").Append(&pub); err != nil {
		return fmt.Errorf("failed to associate publication: %w", err)
	}

	r.logger.Info("Associated publication ", pubID, " with author ", authorID)
	return nil
}

func (r *gormAuthorRepository) ReplaceCitationsPerYear(ctx context.Context, authorID uint, rows []authors.CitationsPerYear) error {
	modelRows := make([]models.AuthorCitationsPerYearModel, 0, len(rows))
	for _, row := range rows {
		modelRows = append(modelRows, models.AuthorCitationsPerYearModel{
			AuthorID:  authorID,
			Year:      row.Year,
			Citations: row.Citations,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", authorID).Delete(&models.AuthorCitationsPerYearModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete citation rows: %w", err)
		}
		if len(modelRows) == 0 {
			return nil
		}
		if err := tx.Create(&modelRows).Error; err != nil {
			return fmt.Errorf("failed to insert citation rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Replaced citations per year for author ", authorID)
	return nil
}
