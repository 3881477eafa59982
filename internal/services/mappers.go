package services

import (
	"slices"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/lifecycle"
	"gym-maintenance/pkg/types"
	"gym-maintenance/pkg/utils"
)

const unknownReference = "Desconhecido"

func unitName(units map[string]entities.Unit, id string) string {
	if u, ok := units[id]; ok {
		return u.Name
	}
	return unknownReference
}

func toLifecycleDTO(m lifecycle.Metrics) dto.LifecycleDTO {
	return dto.LifecycleDTO{
		RemainingLife:            m.RemainingLife,
		DepreciationPercentage:   lifecycle.RoundScore(m.DepreciationPercentage),
		Status:                   string(m.Status),
		StatusLabel:              m.Status.Label(),
		EstimatedReplacementDate: m.EstimatedReplacementDate,
	}
}

func toEquipmentDTO(e entities.Equipment, units map[string]entities.Unit) dto.EquipmentDTO {
	return toAnnotatedEquipmentDTO(lifecycle.Annotated{Equipment: e, Metrics: lifecycle.Classify(e)}, units)
}

func toAnnotatedEquipmentDTO(a lifecycle.Annotated, units map[string]entities.Unit) dto.EquipmentDTO {
	e := a.Equipment
	return dto.EquipmentDTO{
		ID:              e.ID,
		Name:            e.Name,
		Tag:             e.Tag,
		Model:           e.Model,
		Manufacturer:    e.Manufacturer,
		AcquisitionDate: e.AcquisitionDate,
		UnitID:          e.UnitID,
		UnitName:        unitName(units, e.UnitID),
		Status:          e.Status,
		StatusLabel:     e.Status.Label(),
		LastInspection:  e.LastInspection,
		LifeExpectancy:  e.LifeExpectancy,
		CurrentAge:      e.CurrentAge,
		Category:        e.Category,
		Lifecycle:       toLifecycleDTO(a.Metrics),
	}
}

func toTechnicalCallDTO(c entities.TechnicalCall, equipments map[string]entities.Equipment) dto.TechnicalCallDTO {
	_, available := equipments[c.EquipmentID]
	photos := slices.Clone(c.Photos)
	if photos == nil {
		photos = []string{}
	}
	return dto.TechnicalCallDTO{
		ID:                 c.ID,
		EquipmentID:        c.EquipmentID,
		EquipmentName:      c.EquipmentName,
		UnitID:             c.UnitID,
		UnitName:           c.UnitName,
		Type:               c.Type,
		TypeLabel:          c.Type.Label(),
		Priority:           c.Priority,
		PriorityLabel:      c.Priority.Label(),
		Status:             c.Status,
		StatusLabel:        c.Status.Label(),
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
		Description:        c.Description,
		Technician:         c.Technician,
		Resolution:         c.Resolution,
		Photos:             photos,
		EquipmentAvailable: available,
	}
}

func toChecklistDTO(c entities.Checklist, equipments map[string]entities.Equipment, units map[string]entities.Unit) dto.ChecklistDTO {
	out := dto.ChecklistDTO{
		ID:                c.ID,
		EquipmentID:       c.EquipmentID,
		EquipmentName:     unknownReference,
		UnitName:          unknownReference,
		InspectorID:       c.InspectorID,
		PhysicalCondition: c.PhysicalCondition,
		Functionality:     c.Functionality,
		Noise:             c.Noise,
		Stability:         c.Stability,
		AverageScore:      lifecycle.RoundScore(lifecycle.AverageScore(c)),
		Observations:      c.Observations,
		Photos:            nonNil(c.Photos),
		Videos:            nonNil(c.Videos),
		NeedsMaintenance:  c.NeedsMaintenance,
		Date:              c.Date,
	}
	if e, ok := equipments[c.EquipmentID]; ok {
		out.EquipmentName = e.Name
		out.UnitID = e.UnitID
		out.UnitName = unitName(units, e.UnitID)
	}
	return out
}

func toUnitDTO(u entities.Unit, equipments []entities.Equipment, calls []entities.TechnicalCall) dto.UnitDTO {
	out := dto.UnitDTO{
		ID:             u.ID,
		Name:           u.Name,
		Address:        u.Address,
		Technician:     u.Technician,
		EquipmentCount: u.EquipmentCount,
		Phone:          u.Phone,
		Email:          u.Email,
		Manager:        u.Manager,
		Capacity:       u.Capacity,
		OperatingHours: u.OperatingHours,
		Notes:          u.Notes,
	}
	for _, e := range equipments {
		if e.UnitID == u.ID {
			out.RegisteredEquipment++
		}
	}
	for _, c := range calls {
		if c.UnitID == u.ID && c.IsOpen() {
			out.OpenCalls++
		}
	}
	return out
}

func toUserDTO(u entities.User) dto.UserDTO {
	return dto.UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		RoleLabel: u.Role.Label(),
		Units:     nonNil(u.Units),
		Avatar:    u.Avatar,
		Active:    u.Active,
		LastLogin: u.LastLogin,
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return slices.Clone(list)
}

// pageOf cuts the requested page out of a fully filtered list.
func pageOf[T any](list []T, filter types.Filter) *dto.PaginatedResponse[T] {
	return &dto.PaginatedResponse[T]{
		List:       utils.Paginate(list, filter),
		TotalCount: uint64(len(list)),
	}
}
