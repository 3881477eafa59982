package customvalidator

import (
	"testing"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))
	return v
}

func TestEquipmentRules(t *testing.T) {
	v := newValidator(t)

	valid := dto.CreateEquipmentDTO{Name: "Remo", Tag: "REM-001", UnitID: "Unit-001", AcquisitionDate: "2024-01-15", Status: entities.EquipmentStatusOK}
	assert.NoError(t, v.Struct(valid))

	badDate := valid
	badDate.AcquisitionDate = "15/01/2024"
	assert.Error(t, v.Struct(badDate))

	badStatus := valid
	badStatus.Status = "broken"
	assert.Error(t, v.Struct(badStatus))

	negative := -1
	badLife := valid
	badLife.LifeExpectancy = &negative
	assert.Error(t, v.Struct(badLife))
}

func TestChecklistScoresAreBounded(t *testing.T) {
	v := newValidator(t)
	c := dto.CreateChecklistDTO{EquipmentID: "EQ-001", PhysicalCondition: 10, Functionality: 1, Noise: 5, Stability: 7}
	assert.NoError(t, v.Struct(c))

	c.Noise = 11
	assert.Error(t, v.Struct(c))
	c.Noise = 0
	assert.Error(t, v.Struct(c))
}

func TestUserRules(t *testing.T) {
	v := newValidator(t)
	u := dto.CreateUserDTO{Name: "Ana", Email: "ana@gavioes.com", Role: entities.RoleTechnician, Units: []string{"Unit-001", "Unit-002"}, Password: "123456"}
	assert.NoError(t, v.Struct(u))

	for _, units := range [][]string{{"Unit-001", "Unit-001"}, {"all", "Unit-001"}, {""}} {
		bad := u
		bad.Units = units
		assert.Error(t, v.Struct(bad), "units %v", units)
	}

	bad := u
	bad.Role = "owner"
	assert.Error(t, v.Struct(bad))

	units := []string{"Unit-001", "Unit-001"}
	assert.Error(t, v.Struct(dto.UpdateUserDTO{Units: &units}))
}

func TestNullFieldsAreValidatedWhenSet(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Struct(dto.UpdateUnitDTO{}))
	assert.NoError(t, v.Struct(dto.UpdateUnitDTO{Email: null.StringFrom("centro@gavioes.com")}))
	assert.Error(t, v.Struct(dto.UpdateUnitDTO{Email: null.StringFrom("not-an-email")}))
	assert.Error(t, v.Struct(dto.UpdateUnitDTO{Capacity: null.IntFrom(-5)}))
}
