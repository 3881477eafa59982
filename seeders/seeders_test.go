package seeders

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/repositories"
	"gym-maintenance/pkg/config"
	"gym-maintenance/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var importNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellName, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestEquipmentImporter(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"Inventário de equipamentos"},
		{},
		{"Nome", "Tag", "Modelo", "Fabricante", "Data de Aquisição", "Unidade", "Categoria", "Vida Útil", "Status"},
		{"Remo Indoor", "rem-001", "Row 500", "TechFit", "2020-01-10", "Unit-003", "Cardiovascular", "8", "Atenção"},
		{"Supino Reto", "SUP-001", "Bench Pro", "StrengthTech", "15/06/2022", "Centro", "Musculação", "", ""},
		{"Elíptico", "ELI-001", "", "", "2023-02-01", "Filial Desconhecida", "", "", ""},
		{"Cadeira Extensora", "CAD-001", "", "", "ontem", "Unit-001", "", "", ""},
		{"Total", "", "", "", "", "", "", "", ""},
	})

	res, err := NewEquipmentImporter(unitsData, importNow, zap.NewNop()).Import(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Equipments, 2)

	remo := res.Equipments[0]
	assert.Equal(t, "REM-001", remo.Tag)
	assert.Equal(t, "Unit-003", remo.UnitID)
	assert.Equal(t, entities.EquipmentStatusWarning, remo.Status)
	assert.Equal(t, 8, remo.LifeExpectancy)
	assert.Equal(t, 4, remo.CurrentAge)

	supino := res.Equipments[1]
	assert.Equal(t, "Unit-001", supino.UnitID)
	assert.Equal(t, "2022-06-15", supino.AcquisitionDate)
	assert.Equal(t, 10, supino.LifeExpectancy)
	assert.Equal(t, entities.EquipmentStatusOK, supino.Status)
	assert.Equal(t, "2024-01-20", supino.LastInspection)
}

func TestEquipmentImporterNeedsHeader(t *testing.T) {
	buf := workbook(t, [][]interface{}{{"a", "b"}, {"1", "2"}})
	_, err := NewEquipmentImporter(unitsData, importNow, zap.NewNop()).Import(buf)
	assert.Error(t, err)
}

func TestMergeEquipmentsUpsertsByTag(t *testing.T) {
	snap := DefaultData("hash")
	added, updated := mergeEquipments(&snap, []entities.Equipment{
		{Tag: "EST-001", Name: "Esteira Nova", UnitID: "Unit-001"},
		{Tag: "REM-001", Name: "Remo", UnitID: "Unit-003"},
	})
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, updated)
	assert.Equal(t, "EQ-001", snap.Equipments[0].ID)
	assert.Equal(t, "Esteira Nova", snap.Equipments[0].Name)
	assert.Equal(t, "EQ-REM-001", snap.Equipments[len(snap.Equipments)-1].ID)
}

func TestFixturesRoundTrip(t *testing.T) {
	doc := `
units:
  - id: Unit-009
    name: Academia Gaviões - Leste
    address: Rua Nova, 10
    technician: Ana Lima
    equipment_count: 5
equipments:
  - id: EQ-900
    name: Remo
    tag: REM-900
    acquisition_date: "2022-01-01"
    unit_id: Unit-009
    status: ok
    life_expectancy: 10
    current_age: 2
    category: Cardiovascular
calls:
  - id: CALL-900
    equipment_id: EQ-900
    equipment_name: Remo
    unit_id: Unit-009
    unit_name: Academia Gaviões - Leste
    type: corrective
    priority: high
    status: pending
    created_at: 2024-01-20T10:00:00Z
    updated_at: 2024-01-20T10:00:00Z
    description: Banco solto
users:
  - id: "10"
    name: Ana Lima
    email: ana@gavioes.com
    role: technician
    units: [Unit-009]
    active: true
    password: segredo
  - id: "11"
    name: Bia
    email: bia@gavioes.com
    role: inspector
    units: [all]
    active: true
`
	snap, err := LoadFixtures(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, snap.Users, 2)
	assert.NoError(t, utils.ComparePasswords(snap.Users[0].PasswordHash, "segredo"))
	assert.NoError(t, utils.ComparePasswords(snap.Users[1].PasswordHash, DefaultPassword))
	assert.Equal(t, time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC), snap.Calls[0].CreatedAt.UTC())

	var out bytes.Buffer
	require.NoError(t, WriteFixtures(&out, snap))
	again, err := LoadFixtures(&out)
	require.NoError(t, err)
	assert.Equal(t, snap.Equipments, again.Equipments)
	assert.Equal(t, snap.Users[0].PasswordHash, again.Users[0].PasswordHash)
}

func TestFixturesRejectDuplicates(t *testing.T) {
	_, err := LoadFixtures(strings.NewReader(`
units:
  - id: Unit-001
    name: A
  - id: Unit-001
    name: B
`))
	assert.ErrorContains(t, err, "duplicate unit")

	_, err = LoadFixtures(strings.NewReader("unknown_section: []\n"))
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	t.Run("disabled leaves the store empty", func(t *testing.T) {
		storage := repositories.NewStorage()
		require.NoError(t, Seed(context.Background(), storage, config.SeedConfig{Enabled: false}, zap.NewNop()))
		assert.Empty(t, storage.Snapshot().Units)
	})

	t.Run("demo data with spreadsheet", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "equipamentos.xlsx")
		buf := workbook(t, [][]interface{}{
			{"Nome", "Tag", "Data de Aquisição", "Unidade"},
			{"Remo Indoor", "REM-001", "2020-01-10", "Sul"},
		})
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

		storage := repositories.NewStorage(repositories.WithClock(func() time.Time { return importNow }))
		require.NoError(t, Seed(context.Background(), storage, config.SeedConfig{Enabled: true, EquipmentXLSX: path}, zap.NewNop()))

		snap := storage.Snapshot()
		assert.Len(t, snap.Units, 3)
		assert.Len(t, snap.Equipments, 4)
		assert.Len(t, snap.Calls, 2)
		require.Len(t, snap.Users, 3)
		assert.NoError(t, utils.ComparePasswords(snap.Users[0].PasswordHash, DefaultPassword))
	})

	t.Run("missing fixtures file fails", func(t *testing.T) {
		storage := repositories.NewStorage()
		err := Seed(context.Background(), storage, config.SeedConfig{Enabled: true, FixturesPath: filepath.Join(t.TempDir(), "none.yaml")}, zap.NewNop())
		assert.Error(t, err)
	})
}
