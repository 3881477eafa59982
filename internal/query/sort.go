package query

import (
	"sort"

	"gym-maintenance/internal/lifecycle"
	"gym-maintenance/pkg/utils"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortByRemainingLife   SortKey = "remaining_life"
	SortByDepreciation    SortKey = "depreciation"
	SortByAcquisitionDate SortKey = "acquisition_date"
	SortByName            SortKey = "name"
)

// ParseSortKey falls back to remaining life for unknown keys.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortByRemainingLife, SortByDepreciation, SortByAcquisitionDate, SortByName:
		return k
	default:
		return SortByRemainingLife
	}
}

// SortLifecycle orders items in place by a single key; ties keep their input order.
// Remaining life ascends, depreciation and acquisition date descend, names ascend
// under pt-BR collation. Unparseable acquisition dates sort last.
func SortLifecycle(items []lifecycle.Annotated, key SortKey) {
	switch key {
	case SortByDepreciation:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Metrics.DepreciationPercentage > items[j].Metrics.DepreciationPercentage
		})
	case SortByAcquisitionDate:
		sort.SliceStable(items, func(i, j int) bool {
			a, errA := utils.ParseDate(items[i].Equipment.AcquisitionDate)
			b, errB := utils.ParseDate(items[j].Equipment.AcquisitionDate)
			if errA != nil || errB != nil {
				return errA == nil && errB != nil
			}
			return a.After(b)
		})
	case SortByName:
		col := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].Equipment.Name, items[j].Equipment.Name) < 0
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Metrics.RemainingLife < items[j].Metrics.RemainingLife
		})
	}
}
