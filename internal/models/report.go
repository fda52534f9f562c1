package models

import (
	"time"
)

// Severity - степень повреждения покрытия по шкале 1..5 (ASTM D6433)
type Severity int

const (
	SeverityLow      Severity = 1
	SeverityMedium   Severity = 2
	SeverityHigh     Severity = 3
	SeverityCritical Severity = 4
	SeverityExtreme  Severity = 5
)

// Valid проверяет, что значение попадает в домен 1..5
func (s Severity) Valid() bool {
	return s >= SeverityLow && s <= SeverityExtreme
}

// ReportStatus - статус отчета, переходы принадлежат внешнему хранилищу
type ReportStatus string

const (
	StatusPending   ReportStatus = "pending"
	StatusReviewed  ReportStatus = "reviewed"
	StatusScheduled ReportStatus = "scheduled"
	StatusRepaired  ReportStatus = "repaired"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusScheduled, StatusRepaired:
		return true
	}
	return false
}

// TrafficLevel - загруженность дороги на момент отчета
type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "low"
	TrafficMedium TrafficLevel = "medium"
	TrafficHigh   TrafficLevel = "high"
)

type Location struct {
	Address string  `json:"address" yaml:"address"`
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
}

type Dimensions struct {
	Diameter string `json:"diameter" yaml:"diameter"`
	Depth    string `json:"depth" yaml:"depth"`
}

// PotholeReport - неизменяемый отчет о выбоине
type PotholeReport struct {
	ID            string       `json:"id" yaml:"id"`
	ImageURL      string       `json:"image_url" yaml:"image_url"`
	Location      Location     `json:"location" yaml:"location"`
	Severity      Severity     `json:"severity" yaml:"severity"`
	SeverityLabel string       `json:"severity_label" yaml:"severity_label"`
	EstimatedCost int          `json:"estimated_cost" yaml:"estimated_cost"`
	Dimensions    Dimensions   `json:"dimensions" yaml:"dimensions"`
	CreatedAt     time.Time    `json:"created_at" yaml:"created_at"`
	Status        ReportStatus `json:"status" yaml:"status"`
	Weather       string       `json:"weather,omitempty" yaml:"weather,omitempty"`
	TrafficLevel  TrafficLevel `json:"traffic_level,omitempty" yaml:"traffic_level,omitempty"`
}

// MediaRef - непрозрачная ссылка на выбранный пользователем файл, байты не читаются
type MediaRef struct {
	Name        string
	ContentType string
	Size        int64
	URL         string
}

// ReportFilter - нулевые значения полей не накладывают ограничений
type ReportFilter struct {
	Severity     Severity
	AddressQuery string
}
