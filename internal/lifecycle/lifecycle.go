// Package lifecycle derives depreciation, remaining life and inspection
// outcomes from equipment and checklist records. Every function is pure.
package lifecycle

import (
	"math"
	"time"

	"gym-maintenance/internal/entities"
	"gym-maintenance/pkg/utils"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusGood      Status = "good"
	StatusAttention Status = "attention"
	StatusCritical  Status = "critical"
	StatusExpired   Status = "expired"
)

func (s Status) Label() string {
	switch s {
	case StatusExpired:
		return "Vida Útil Expirada"
	case StatusCritical:
		return "Crítico"
	case StatusAttention:
		return "Atenção"
	case StatusGood:
		return "Bom Estado"
	case StatusNew:
		return "Novo"
	default:
		return "Desconhecido"
	}
}

// Bucket thresholds, closed below.
const (
	expiredThreshold   = 100.0
	criticalThreshold  = 90.0
	attentionThreshold = 70.0
	goodThreshold      = 30.0
)

type Metrics struct {
	RemainingLife          int
	DepreciationPercentage float64
	Status                 Status
	// EstimatedReplacementDate is YYYY-MM-DD, empty when the acquisition date is unknown.
	EstimatedReplacementDate string
}

// Annotated pairs an equipment with its derived metrics.
type Annotated struct {
	Equipment entities.Equipment
	Metrics   Metrics
}

func Classify(e entities.Equipment) Metrics {
	pct := DepreciationPercentage(e.CurrentAge, e.LifeExpectancy)
	m := Metrics{
		RemainingLife:          RemainingLife(e.LifeExpectancy, e.CurrentAge),
		DepreciationPercentage: pct,
		Status:                 Bucket(pct),
	}
	if replacement, ok := ReplacementDate(e.AcquisitionDate, e.LifeExpectancy); ok {
		m.EstimatedReplacementDate = utils.FormatDate(replacement)
	}
	return m
}

func Annotate(list []entities.Equipment) []Annotated {
	out := make([]Annotated, 0, len(list))
	for _, e := range list {
		out = append(out, Annotated{Equipment: e, Metrics: Classify(e)})
	}
	return out
}

// DepreciationPercentage returns currentAge/lifeExpectancy as a percentage in [0,100].
// A non-positive life expectancy counts as fully depreciated.
func DepreciationPercentage(currentAge, lifeExpectancy int) float64 {
	if lifeExpectancy <= 0 {
		return 100
	}
	pct := float64(currentAge) / float64(lifeExpectancy) * 100
	return math.Max(0, math.Min(100, pct))
}

func Bucket(pct float64) Status {
	switch {
	case pct >= expiredThreshold:
		return StatusExpired
	case pct >= criticalThreshold:
		return StatusCritical
	case pct >= attentionThreshold:
		return StatusAttention
	case pct >= goodThreshold:
		return StatusGood
	default:
		return StatusNew
	}
}

func RemainingLife(lifeExpectancy, currentAge int) int {
	return max(0, lifeExpectancy-currentAge)
}

func ReplacementDate(acquisitionDate string, lifeExpectancy int) (time.Time, bool) {
	acquired, err := utils.ParseDate(acquisitionDate)
	if err != nil {
		return time.Time{}, false
	}
	return acquired.AddDate(lifeExpectancy, 0, 0), true
}

// AgeInYears counts whole 365-day years between acquisition and now.
func AgeInYears(acquisitionDate string, now time.Time) int {
	acquired, err := utils.ParseDate(acquisitionDate)
	if err != nil {
		return 0
	}
	days := utils.Day(now).Sub(acquired).Hours() / 24
	if days <= 0 {
		return 0
	}
	return int(math.Floor(days / 365))
}

// NeedsReplacementSoon is true for equipment with at most one year left that is not yet expired.
func NeedsReplacementSoon(m Metrics) bool {
	return m.RemainingLife > 0 && m.RemainingLife <= 1
}

// CountByStatus tallies every lifecycle bucket, including empty ones.
func CountByStatus(items []Annotated) map[Status]int {
	counts := map[Status]int{
		StatusNew:       0,
		StatusGood:      0,
		StatusAttention: 0,
		StatusCritical:  0,
		StatusExpired:   0,
	}
	for _, item := range items {
		counts[item.Metrics.Status]++
	}
	return counts
}
