package customvalidator

import (
	"regexp"
	"time"

	"gym-maintenance/internal/entities"

	"github.com/go-playground/validator/v10"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterCustomValidations registers every custom rule used by the DTOs
// together with the null.* type adapters.
func RegisterCustomValidations(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"email":            isGoodEmailFormat,
		"iso_date":         isISODate,
		"equipment_status": isEquipmentStatus,
		"call_type":        isCallType,
		"call_priority":    isCallPriority,
		"call_status":      isCallStatus,
		"user_role":        isUserRole,
		"unit_list":        isUnitList,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	registerNullTypes(v)
	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func isISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	switch entities.EquipmentStatus(fl.Field().String()) {
	case entities.EquipmentStatusOK, entities.EquipmentStatusWarning, entities.EquipmentStatusError:
		return true
	}
	return false
}

func isCallType(fl validator.FieldLevel) bool {
	switch entities.CallType(fl.Field().String()) {
	case entities.CallTypePreventive, entities.CallTypeCorrective:
		return true
	}
	return false
}

func isCallPriority(fl validator.FieldLevel) bool {
	switch entities.CallPriority(fl.Field().String()) {
	case entities.CallPriorityLow, entities.CallPriorityMedium, entities.CallPriorityHigh:
		return true
	}
	return false
}

func isCallStatus(fl validator.FieldLevel) bool {
	switch entities.CallStatus(fl.Field().String()) {
	case entities.CallStatusPending, entities.CallStatusInProgress, entities.CallStatusResolved:
		return true
	}
	return false
}

func isUserRole(fl validator.FieldLevel) bool {
	switch entities.Role(fl.Field().String()) {
	case entities.RoleAdmin, entities.RoleTechnician, entities.RoleInspector:
		return true
	}
	return false
}

// isUnitList accepts unit ids without blanks or duplicates; "all" must stand alone.
func isUnitList(fl validator.FieldLevel) bool {
	units, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	seen := make(map[string]bool, len(units))
	for _, u := range units {
		if u == "" || seen[u] {
			return false
		}
		if u == entities.AllUnits && len(units) > 1 {
			return false
		}
		seen[u] = true
	}
	return true
}
