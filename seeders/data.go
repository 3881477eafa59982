package seeders

import (
	"time"

	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/repositories"
)

// DefaultPassword is the password of every seeded user.
const DefaultPassword = "123456"

var unitsData = []entities.Unit{
	{ID: "Unit-001", Name: "Academia Gaviões - Centro", Address: "Rua das Flores, 123", Technician: "João Silva", EquipmentCount: 25},
	{ID: "Unit-002", Name: "Academia Gaviões - Norte", Address: "Av. Principal, 456", Technician: "Maria Santos", EquipmentCount: 30},
	{ID: "Unit-003", Name: "Academia Gaviões - Sul", Address: "Rua da Paz, 789", Technician: "Pedro Costa", EquipmentCount: 22},
}

var equipmentsData = []entities.Equipment{
	{
		ID:              "EQ-001",
		Name:            "Esteira Ergométrica",
		Tag:             "EST-001",
		Model:           "ProFit X3000",
		Manufacturer:    "TechFit",
		AcquisitionDate: "2023-01-15",
		UnitID:          "Unit-001",
		Status:          entities.EquipmentStatusOK,
		LastInspection:  "2024-01-15",
		LifeExpectancy:  10,
		CurrentAge:      1,
		Category:        "Cardiovascular",
	},
	{
		ID:              "EQ-002",
		Name:            "Leg Press 45°",
		Tag:             "LP-001",
		Model:           "PowerMax 450",
		Manufacturer:    "StrengthTech",
		AcquisitionDate: "2022-06-10",
		UnitID:          "Unit-001",
		Status:          entities.EquipmentStatusWarning,
		LastInspection:  "2024-01-10",
		LifeExpectancy:  15,
		CurrentAge:      2,
		Category:        "Musculação",
	},
	{
		ID:              "EQ-003",
		Name:            "Bicicleta Ergométrica",
		Tag:             "BIC-001",
		Model:           "CardioMax Pro",
		Manufacturer:    "FitTech",
		AcquisitionDate: "2021-03-20",
		UnitID:          "Unit-002",
		Status:          entities.EquipmentStatusError,
		LastInspection:  "2024-01-08",
		LifeExpectancy:  8,
		CurrentAge:      3,
		Category:        "Cardiovascular",
	},
}

var callsData = []entities.TechnicalCall{
	{
		ID:            "CALL-001",
		EquipmentID:   "EQ-002",
		EquipmentName: "Leg Press 45°",
		UnitID:        "Unit-001",
		UnitName:      "Academia Gaviões - Centro",
		Type:          entities.CallTypePreventive,
		Priority:      entities.CallPriorityMedium,
		Status:        entities.CallStatusPending,
		CreatedAt:     time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
		Description:   "Ruído anormal durante o movimento",
	},
	{
		ID:            "CALL-002",
		EquipmentID:   "EQ-003",
		EquipmentName: "Bicicleta Ergométrica",
		UnitID:        "Unit-002",
		UnitName:      "Academia Gaviões - Norte",
		Type:          entities.CallTypeCorrective,
		Priority:      entities.CallPriorityHigh,
		Status:        entities.CallStatusInProgress,
		CreatedAt:     time.Date(2024, 1, 19, 14, 30, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 1, 20, 8, 15, 0, 0, time.UTC),
		Description:   "Display não está funcionando",
		Technician:    "Maria Santos",
	},
}

func lastLogin(t time.Time) *time.Time { return &t }

var usersData = []entities.User{
	{
		ID:        "1",
		Name:      "Admin Gaviões",
		Email:     "admin@gavioes.com",
		Role:      entities.RoleAdmin,
		Units:     []string{entities.AllUnits},
		Avatar:    "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop",
		LastLogin: lastLogin(time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC)),
		Active:    true,
	},
	{
		ID:        "2",
		Name:      "Técnico João",
		Email:     "tecnico@gavioes.com",
		Role:      entities.RoleTechnician,
		Units:     []string{"Unit-001", "Unit-002"},
		Avatar:    "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop",
		LastLogin: lastLogin(time.Date(2024, 1, 19, 14, 30, 0, 0, time.UTC)),
		Active:    true,
	},
	{
		ID:        "3",
		Name:      "Inspetor Maria",
		Email:     "maria@gavioes.com",
		Role:      entities.RoleInspector,
		Units:     []string{"Unit-003"},
		Avatar:    "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&fit=crop",
		LastLogin: lastLogin(time.Date(2024, 1, 18, 10, 15, 0, 0, time.UTC)),
		Active:    true,
	},
}

// DefaultData is the demo dataset: three units, three equipment, two open
// calls and one user per role, all sharing passwordHash.
func DefaultData(passwordHash string) repositories.Snapshot {
	snap := repositories.Snapshot{
		Units:      append([]entities.Unit(nil), unitsData...),
		Equipments: append([]entities.Equipment(nil), equipmentsData...),
		Calls:      make([]entities.TechnicalCall, 0, len(callsData)),
		Users:      make([]entities.User, 0, len(usersData)),
	}
	for _, c := range callsData {
		snap.Calls = append(snap.Calls, c.Clone())
	}
	for _, u := range usersData {
		u = u.Clone()
		u.PasswordHash = passwordHash
		snap.Users = append(snap.Users, u)
	}
	return snap
}
