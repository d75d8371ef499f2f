package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ipeirotis/citation-analysis-models/internal/domain/benchmarks"
	"github.com/ipeirotis/citation-analysis-models/internal/infrastructure/persistence/models"
	"github.com/ipeirotis/citation-analysis-models/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBenchmarkRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBenchmarkRepository creates a new GORM-based BenchmarkRepository implementation
func NewGormBenchmarkRepository(db *gorm.DB, logger logger.Logger) (benchmarks.BenchmarkRepository, error) {
	return &gormBenchmarkRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBenchmarkRepository) Create(ctx context.Context, benchmark *benchmarks.Benchmark) error {
	if err := benchmark.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BenchmarkModel{}
	model.FromDomain(benchmark)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create benchmark: %w", err)
	}

	benchmark.ID = model.ID

	r.logger.Info("Created benchmark with id ", benchmark.ID)
	return nil
}

func (r *gormBenchmarkRepository) List(ctx context.Context) ([]*benchmarks.Benchmark, error) {
	var modelList []*models.BenchmarkModel
	if err := r.db.WithContext(ctx).Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch benchmarks: %w", err)
	}

	domainList := make([]*benchmarks.Benchmark, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormBenchmarkRepository) GetByID(ctx context.Context, benchmarkID uint) (*benchmarks.Benchmark, error) {
	var model models.BenchmarkModel
	if err := r.db.WithContext(ctx).Where("id = ?", benchmarkID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("benchmark with ID %d not found", benchmarkID)
		}
		return nil, fmt.Errorf("failed to fetch benchmark: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBenchmarkRepository) GetByName(ctx context.Context, name string) (*benchmarks.Benchmark, error) {
	var model models.BenchmarkModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("benchmark with name %q not found", name)
		}
		return nil, fmt.Errorf("failed to fetch benchmark: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBenchmarkRepository) UpdateByID(ctx context.Context, benchmark *benchmarks.Benchmark) error {
	if err := benchmark.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BenchmarkModel{}
	model.FromDomain(benchmark)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update benchmark: %w", err)
	}

	r.logger.Info("Updated benchmark with id ", benchmark.ID)
	return nil
}

func (r *gormBenchmarkRepository) DeleteByID(ctx context.Context, benchmarkID uint) error {
	// Suggestions reference the benchmark and go with it.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("benchmark_id = ?", benchmarkID).Delete(&models.SuggestionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete suggestions: %w", err)
		}
		if err := tx.Where("id = ?", benchmarkID).Delete(&models.BenchmarkModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete benchmark: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted benchmark with id ", benchmarkID)
	return nil
}

type gormSuggestionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSuggestionRepository creates a new GORM-based SuggestionRepository implementation
func NewGormSuggestionRepository(db *gorm.DB, logger logger.Logger) (benchmarks.SuggestionRepository, error) {
	return &gormSuggestionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSuggestionRepository) Create(ctx context.Context, suggestion *benchmarks.Suggestion) error {
	if err := suggestion.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SuggestionModel{}
	model.FromDomain(suggestion)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}

	suggestion.ID = model.ID

	r.logger.Info("Created suggestion with id ", suggestion.ID)
	return nil
}

func (r *gormSuggestionRepository) ListByBenchmark(ctx context.Context, benchmarkID uint) ([]*benchmarks.Suggestion, error) {
	var modelList []*models.SuggestionModel
	err := r.db.WithContext(ctx).
		Where("benchmark_id = ?", benchmarkID).
		Order("created").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch suggestions: %w", err)
	}

	domainList := make([]*benchmarks.Suggestion, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormSuggestionRepository) GetByID(ctx context.Context, suggestionID uint) (*benchmarks.Suggestion, error) {
	var model models.SuggestionModel
	if err := r.db.WithContext(ctx).Where("id = ?", suggestionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("suggestion with ID %d not found", suggestionID)
		}
		return nil, fmt.Errorf("failed to fetch suggestion: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormSuggestionRepository) DeleteByID(ctx context.Context, suggestionID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", suggestionID).Delete(&models.SuggestionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete suggestion: %w", err)
	}

	r.logger.Info("Deleted suggestion with id ", suggestionID)
	return nil
}
