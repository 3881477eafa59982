package entities

type EquipmentStatus string

const (
	EquipmentStatusOK      EquipmentStatus = "ok"
	EquipmentStatusWarning EquipmentStatus = "warning"
	EquipmentStatusError   EquipmentStatus = "error"
)

func (s EquipmentStatus) Label() string {
	switch s {
	case EquipmentStatusOK:
		return "Funcionando"
	case EquipmentStatusWarning:
		return "Atenção"
	case EquipmentStatusError:
		return "Defeito"
	default:
		return "Desconhecido"
	}
}

// Equipment is a tracked asset. AcquisitionDate and LastInspection are YYYY-MM-DD;
// LifeExpectancy and CurrentAge are whole years.
type Equipment struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Tag             string          `json:"tag" yaml:"tag"`
	Model           string          `json:"model" yaml:"model"`
	Manufacturer    string          `json:"manufacturer" yaml:"manufacturer"`
	AcquisitionDate string          `json:"acquisition_date" yaml:"acquisition_date"`
	UnitID          string          `json:"unit_id" yaml:"unit_id"`
	Status          EquipmentStatus `json:"status" yaml:"status"`
	LastInspection  string          `json:"last_inspection" yaml:"last_inspection"`
	LifeExpectancy  int             `json:"life_expectancy" yaml:"life_expectancy"`
	CurrentAge      int             `json:"current_age" yaml:"current_age"`
	Category        string          `json:"category" yaml:"category"`
}
