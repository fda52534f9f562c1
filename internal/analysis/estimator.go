package analysis

import (
	"context"

	"github.com/shenikar/pothole_reporting_system/internal/models"
)

// SeverityEstimator определяет контракт оценки степени повреждения по медиафайлу.
// Реализации должны быть безопасны для конкурентного использования.
type SeverityEstimator interface {
	EstimateSeverity(ctx context.Context, media *models.MediaRef) (models.Severity, error)
	SourceName() string
}

// RandomMockEstimator - заглушка вместо настоящей модели: равномерно выбирает уровень 1..5,
// содержимое файла не читается
type RandomMockEstimator struct {
	rnd *Rand
}

func NewRandomMockEstimator(rnd *Rand) *RandomMockEstimator {
	return &RandomMockEstimator{rnd: rnd}
}

func (e *RandomMockEstimator) SourceName() string { return "RandomMock" }

func (e *RandomMockEstimator) EstimateSeverity(_ context.Context, _ *models.MediaRef) (models.Severity, error) {
	return models.Severity(e.rnd.IntN(int(models.SeverityExtreme)) + 1), nil
}
