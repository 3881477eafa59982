package seeders

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/lifecycle"
	"gym-maintenance/pkg/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ImportResult is the outcome of an equipment spreadsheet import.
type ImportResult struct {
	Equipments []entities.Equipment
	Skipped    int
}

type columnIndex struct {
	name, tag, model, manufacturer, acquired, unit, category, life, status int
}

// EquipmentImporter reads equipment rows from an XLSX workbook. The header row
// is searched for on every sheet; it must hold a name column and a tag column.
type EquipmentImporter struct {
	units  []entities.Unit
	now    time.Time
	logger *zap.Logger
}

func NewEquipmentImporter(units []entities.Unit, now time.Time, logger *zap.Logger) *EquipmentImporter {
	return &EquipmentImporter{units: units, now: now, logger: logger}
}

func (imp *EquipmentImporter) ImportFile(path string) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()
	return imp.importWorkbook(f)
}

func (imp *EquipmentImporter) Import(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return imp.importWorkbook(f)
}

func (imp *EquipmentImporter) importWorkbook(f *excelize.File) (*ImportResult, error) {
	var (
		rows      [][]string
		cols      columnIndex
		headerRow = -1
	)
	for _, sheet := range f.GetSheetList() {
		sheetRows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		for i, row := range sheetRows {
			if c, ok := detectHeader(row); ok {
				rows, cols, headerRow = sheetRows, c, i
				imp.logger.Debug("equipment header found", zap.String("sheet", sheet), zap.Int("row", i+1))
				break
			}
		}
		if headerRow != -1 {
			break
		}
	}
	if headerRow == -1 {
		return nil, fmt.Errorf("equipment header not found: the sheet needs 'Nome' and 'Tag' columns")
	}

	res := &ImportResult{}
	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		name := cell(row, cols.name)
		if isTrash(name) {
			continue
		}

		e, err := imp.parseRow(row, cols)
		if err != nil {
			imp.logger.Warn("equipment row skipped", zap.Int("row", i+1), zap.String("name", name), zap.Error(err))
			res.Skipped++
			continue
		}
		res.Equipments = append(res.Equipments, e)
	}
	return res, nil
}

func (imp *EquipmentImporter) parseRow(row []string, cols columnIndex) (entities.Equipment, error) {
	e := entities.Equipment{
		Name:           cell(row, cols.name),
		Tag:            strings.ToUpper(cell(row, cols.tag)),
		Model:          cell(row, cols.model),
		Manufacturer:   cell(row, cols.manufacturer),
		Category:       cell(row, cols.category),
		Status:         entities.EquipmentStatusOK,
		LifeExpectancy: 10,
		LastInspection: utils.FormatDate(imp.now),
	}
	if e.Tag == "" {
		return e, fmt.Errorf("tag is empty")
	}

	unitID, ok := imp.resolveUnit(cell(row, cols.unit))
	if !ok {
		return e, fmt.Errorf("unit %q not found", cell(row, cols.unit))
	}
	e.UnitID = unitID

	acquired, err := parseSheetDate(cell(row, cols.acquired))
	if err != nil {
		return e, err
	}
	e.AcquisitionDate = acquired

	if raw := cell(row, cols.life); raw != "" {
		life, err := strconv.Atoi(raw)
		if err != nil || life <= 0 {
			return e, fmt.Errorf("invalid life expectancy %q", raw)
		}
		e.LifeExpectancy = life
	}
	if raw := strings.ToLower(cell(row, cols.status)); raw != "" {
		status, ok := parseStatus(raw)
		if !ok {
			return e, fmt.Errorf("invalid status %q", raw)
		}
		e.Status = status
	}
	e.CurrentAge = lifecycle.AgeInYears(e.AcquisitionDate, imp.now)
	return e, nil
}

// resolveUnit matches a unit by id, by exact name or by a name fragment such as "Centro".
func (imp *EquipmentImporter) resolveUnit(raw string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(raw))
	if needle == "" {
		return "", false
	}
	for _, u := range imp.units {
		if strings.ToLower(u.ID) == needle || strings.ToLower(u.Name) == needle {
			return u.ID, true
		}
	}
	for _, u := range imp.units {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			return u.ID, true
		}
	}
	return "", false
}

func detectHeader(row []string) (columnIndex, bool) {
	c := columnIndex{-1, -1, -1, -1, -1, -1, -1, -1, -1}
	for i, raw := range row {
		h := strings.ToLower(strings.TrimSpace(raw))
		switch {
		case h == "nome" || h == "equipamento":
			c.name = i
		case h == "tag":
			c.tag = i
		case h == "modelo":
			c.model = i
		case h == "fabricante":
			c.manufacturer = i
		case strings.Contains(h, "aquisição") || strings.Contains(h, "aquisicao"):
			c.acquired = i
		case h == "unidade":
			c.unit = i
		case h == "categoria":
			c.category = i
		case strings.Contains(h, "vida"):
			c.life = i
		case h == "status":
			c.status = i
		}
	}
	return c, c.name != -1 && c.tag != -1
}

func parseSheetDate(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("acquisition date is empty")
	}
	if t, err := utils.ParseDate(raw); err == nil {
		return utils.FormatDate(t), nil
	}
	for _, layout := range []string{"02/01/2006", "01-02-06", "2/1/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return utils.FormatDate(t), nil
		}
	}
	return "", fmt.Errorf("invalid acquisition date %q", raw)
}

func parseStatus(raw string) (entities.EquipmentStatus, bool) {
	switch raw {
	case "ok", "funcionando":
		return entities.EquipmentStatusOK, true
	case "warning", "atenção", "atencao":
		return entities.EquipmentStatusWarning, true
	case "error", "defeito":
		return entities.EquipmentStatusError, true
	default:
		return "", false
	}
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isTrash(name string) bool {
	v := strings.ToLower(strings.TrimSpace(name))
	return v == "" || strings.HasPrefix(v, "total")
}
