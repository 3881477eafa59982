package dto

type DashboardKPIsDTO struct {
	TotalEquipments   int `json:"total_equipments"`
	OpenCalls         int `json:"open_calls"`
	ResolvedThisMonth int `json:"resolved_this_month"`
	ExpiredEquipments int `json:"expired_equipments"`
}

type UnitOverviewDTO struct {
	UnitID         string `json:"unit_id"`
	UnitName       string `json:"unit_name"`
	EquipmentCount int    `json:"equipment_count"`
	OpenCalls      int    `json:"open_calls"`
}

type DashboardDTO struct {
	KPIs               DashboardKPIsDTO   `json:"kpis"`
	EquipmentsByStatus map[string]int     `json:"equipments_by_status"`
	RecentCalls        []TechnicalCallDTO `json:"recent_calls"`
	Units              []UnitOverviewDTO  `json:"units"`
}
