// Package severity содержит фиксированную справочную таблицу уровней повреждений.
package severity

import "github.com/shenikar/pothole_reporting_system/internal/models"

// CostJitter - верхняя граница (не включительно) случайной надбавки к базовой стоимости
const CostJitter = 50

// Level описывает все поля, производные от уровня
type Level struct {
	Severity    models.Severity
	Label       string
	BaseCost    int
	Dimensions  models.Dimensions
	Description string
	// Reference - диапазоны ASTM D6433, в которые попадает уровень
	Reference models.Dimensions
}

var levels = [...]Level{
	{
		Severity:    models.SeverityLow,
		Label:       "Low",
		BaseCost:    85,
		Dimensions:  models.Dimensions{Diameter: "4 inches", Depth: "0.5 inches"},
		Description: "Minor surface imperfection. Low priority for repair.",
		Reference:   models.Dimensions{Diameter: "< 6 inches", Depth: "< 1 inch"},
	},
	{
		Severity:    models.SeverityMedium,
		Label:       "Medium",
		BaseCost:    180,
		Dimensions:  models.Dimensions{Diameter: "8 inches", Depth: "1.2 inches"},
		Description: "Moderate damage. May cause discomfort to vehicles.",
		Reference:   models.Dimensions{Diameter: "6-12 inches", Depth: "1-2 inches"},
	},
	{
		Severity:    models.SeverityHigh,
		Label:       "High",
		BaseCost:    320,
		Dimensions:  models.Dimensions{Diameter: "11 inches", Depth: "1.8 inches"},
		Description: "Significant damage. Risk to small cars and motorcycles.",
		Reference:   models.Dimensions{Diameter: "6-12 inches", Depth: "1-2 inches"},
	},
	{
		Severity:    models.SeverityCritical,
		Label:       "Critical",
		BaseCost:    450,
		Dimensions:  models.Dimensions{Diameter: "14 inches", Depth: "2.5 inches"},
		Description: "Severe damage. High impact forces, tire/wheel damage risk.",
		Reference:   models.Dimensions{Diameter: "> 12 inches", Depth: "> 2 inches"},
	},
	{
		Severity:    models.SeverityExtreme,
		Label:       "Extreme",
		BaseCost:    720,
		Dimensions:  models.Dimensions{Diameter: "18 inches", Depth: "3.5 inches"},
		Description: "Critical damage. Roadbed exposed. Immediate attention required.",
		Reference:   models.Dimensions{Diameter: "> 12 inches", Depth: "> 2 inches"},
	},
}

// Lookup возвращает описание уровня; ok=false для значений вне 1..5
func Lookup(s models.Severity) (Level, bool) {
	if !s.Valid() {
		return Level{}, false
	}
	return levels[s-1], true
}

// Levels возвращает таблицу по возрастанию уровня
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels[:])
	return out
}

// IsPriority - ремонт в приоритетном порядке рекомендуется с уровня Critical
func IsPriority(s models.Severity) bool {
	return s >= models.SeverityCritical
}

func Recommendation(s models.Severity) string {
	if IsPriority(s) {
		return "Priority Repair Recommended"
	}
	return "Repair Suggested"
}

// CostInRange проверяет согласованность стоимости с таблицей
func (l Level) CostInRange(cost int) bool {
	return cost >= l.BaseCost && cost < l.BaseCost+CostJitter
}
