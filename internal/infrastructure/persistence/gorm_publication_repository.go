package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ipeirotis/citation-analysis-models/internal/domain/publications"
	"github.com/ipeirotis/citation-analysis-models/internal/infrastructure/persistence/models"
	"github.com/ipeirotis/citation-analysis-models/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormPublicationRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPublicationRepository creates a new GORM-based PublicationRepository implementation
func NewGormPublicationRepository(db *gorm.DB, logger logger.Logger) (publications.PublicationRepository, error) {
	return &gormPublicationRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPublicationRepository) Create(ctx context.Context, pub *publications.Publication) error {
	if err := pub.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PublicationModel{}
	model.FromDomain(pub)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create publication: %w", err)
	}

	pub.ID = model.ID

	r.logger.Info("Created publication with id ", pub.ID)
	return nil
}

func (r *gormPublicationRepository) List(ctx context.Context, query *publications.PublicationQuery) ([]*publications.Publication, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.PublicationModel
	dbQuery := r.db.WithContext(ctx).Model(&models.PublicationModel{})

	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if query.YearOfPublication != 0 {
		dbQuery = dbQuery.Where("year_of_publication = ?", query.YearOfPublication)
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
		return nil, fmt.Errorf("failed to fetch publications: %w", err)
	}

	domainList := make([]*publications.Publication, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormPublicationRepository) GetByID(ctx context.Context, pubID uint) (*publications.Publication, error) {
	var model models.PublicationModel
	err := r.db.WithContext(ctx).
		Preload("CitationsPerYear", func(db *gorm.DB) *gorm.DB {
			return db.Order("year")
		}).
		Where("id = ?", pubID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("publication with ID %d not found", pubID)
		}
		return nil, fmt.Errorf("failed to fetch publication: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPublicationRepository) GetByScholarID(ctx context.Context, scholarID string) (*publications.Publication, error) {
	var model models.PublicationModel
	err := r.db.WithContext(ctx).Where("scholar_id = ?", scholarID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("publication with scholar ID %s not found", scholarID)
		}
		return nil, fmt.Errorf("failed to fetch publication: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormPublicationRepository) UpdateByID(ctx context.Context, pub *publications.Publication) error {
	if err := pub.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PublicationModel{}
	model.FromDomain(pub)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update publication: %w", err)
	}

	r.logger.Info("Updated publication with id ", pub.ID)
	return nil
}

func (r *gormPublicationRepository) DeleteByID(ctx context.Context, pubID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("publication_id = ?", pubID).Delete(&models.PublicationCitationsPerYearModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete citation rows: %w", err)
		}
		if err := tx.Exec("DELETE FROM author_publication WHERE publication_id = ?", pubID).Error; err != nil {
			return fmt.Errorf("failed to delete author associations: %w", err)
		}
		if err := tx.Where("id = ?", pubID).Delete(&models.PublicationModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete publication: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted publication with id ", pubID)
	return nil
}

func (r *gormPublicationRepository) ReplaceCitationsPerYear(ctx context.Context, pubID uint, rows []publications.CitationsPerYear) error {
	modelRows := make([]models.PublicationCitationsPerYearModel, 0, len(rows))
	for _, row := range rows {
		modelRows = append(modelRows, models.PublicationCitationsPerYearModel{
			PublicationID: pubID,
			Year:          row.Year,
			Citations:     row.Citations,
		})
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("publication_id = ?", pubID).Delete(&models.PublicationCitationsPerYearModel{}).Error; err != nil {
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

	r.logger.Info("Replaced citations per year for publication ", pubID)
	return nil
}
