package lifecycle

import (
	"fmt"
	"math"

	"gym-maintenance/internal/entities"
)

// AverageScore is the arithmetic mean of the four checklist scores.
func AverageScore(c entities.Checklist) float64 {
	return float64(c.PhysicalCondition+c.Functionality+c.Noise+c.Stability) / 4
}

func RoundScore(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func FormatScore(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}

// StatusFromAverage maps an inspection average to the equipment status it implies.
func StatusFromAverage(avg float64) entities.EquipmentStatus {
	switch {
	case avg <= 3:
		return entities.EquipmentStatusError
	case avg <= 6:
		return entities.EquipmentStatusWarning
	default:
		return entities.EquipmentStatusOK
	}
}

// LatestChecklist returns the checklist with the greatest date for equipmentID.
func LatestChecklist(checklists []entities.Checklist, equipmentID string) (entities.Checklist, bool) {
	var (
		latest entities.Checklist
		found  bool
	)
	for _, c := range checklists {
		if c.EquipmentID != equipmentID {
			continue
		}
		if !found || c.Date.After(latest.Date) {
			latest = c
			found = true
		}
	}
	return latest, found
}
