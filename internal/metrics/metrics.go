package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/pothole_reporting_system/internal/models"
)

var (
	once sync.Once

	// AnalysesTotal считает успешные анализы по уровню повреждения.
	AnalysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pothole",
		Subsystem: "analyzer",
		Name:      "analyses_total",
		Help:      "Total number of generated pothole reports, labeled by severity.",
	}, []string{"severity"})

	// AnalysisFailuresTotal считает неудачные анализы по причине.
	AnalysisFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pothole",
		Subsystem: "analyzer",
		Name:      "analysis_failures_total",
		Help:      "Total number of failed analyses, labeled by reason.",
	}, []string{"reason"})

	// AnalysisDurationSeconds включает имитацию задержки обработки.
	AnalysisDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pothole",
		Subsystem: "analyzer",
		Name:      "analysis_duration_seconds",
		Help:      "End-to-end time of an analysis including the simulated processing delay.",
		Buckets:   []float64{0.01, 0.1, 0.5, 1, 2, 3, 5, 10},
	})

	QueriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pothole",
		Subsystem: "analyzer",
		Name:      "queries_total",
		Help:      "Total number of dashboard queries, labeled by operation.",
	}, []string{"operation"})
)

// Register регистрирует метрики в реестре Prometheus по умолчанию.
// Повторные вызовы безопасны.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			AnalysesTotal,
			AnalysisFailuresTotal,
			AnalysisDurationSeconds,
			QueriesTotal,
		)
	})
}

func SeverityLabel(s models.Severity) string {
	return strconv.Itoa(int(s))
}
