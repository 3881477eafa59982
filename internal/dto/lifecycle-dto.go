package dto

type LifecycleDTO struct {
	RemainingLife            int     `json:"remaining_life"`
	DepreciationPercentage   float64 `json:"depreciation_percentage"`
	Status                   string  `json:"status"`
	StatusLabel              string  `json:"status_label"`
	EstimatedReplacementDate string  `json:"estimated_replacement_date,omitempty"`
}

type LifecycleStatsDTO struct {
	Total                  int `json:"total"`
	Expired                int `json:"expired"`
	Critical               int `json:"critical"`
	NeedingReplacementSoon int `json:"needing_replacement_soon"`
}

type LifecycleOverviewDTO struct {
	Stats LifecycleStatsDTO `json:"stats"`
	Items []EquipmentDTO    `json:"items"`
}
