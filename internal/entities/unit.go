package entities

// Unit is a gym facility that houses equipment.
type Unit struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Address        string `json:"address" yaml:"address"`
	Technician     string `json:"technician" yaml:"technician"`
	EquipmentCount int    `json:"equipment_count" yaml:"equipment_count"`
	Phone          string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email          string `json:"email,omitempty" yaml:"email,omitempty"`
	Manager        string `json:"manager,omitempty" yaml:"manager,omitempty"`
	Capacity       int    `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	OperatingHours string `json:"operating_hours,omitempty" yaml:"operating_hours,omitempty"`
	Notes          string `json:"notes,omitempty" yaml:"notes,omitempty"`
}
