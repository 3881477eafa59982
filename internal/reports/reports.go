// Package reports turns store snapshots into flat, labelled tables.
package reports

import (
	"fmt"
	"strconv"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/lifecycle"
	"gym-maintenance/internal/query"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/utils"
)

type Kind string

const (
	KindEquipment   Kind = "equipment"
	KindMaintenance Kind = "maintenance"
	KindInspections Kind = "inspections"
)

const (
	notAvailable = "N/A"
	unassigned   = "Não atribuído"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindEquipment, KindMaintenance, KindInspections:
		return k, nil
	default:
		return "", apperrors.NewInvalidInputError("tipo de relatório desconhecido: %q", s)
	}
}

func (k Kind) Title() string {
	switch k {
	case KindEquipment:
		return "Relatório de Equipamentos"
	case KindMaintenance:
		return "Relatório de Manutenções"
	case KindInspections:
		return "Relatório de Inspeções"
	default:
		return "Relatório"
	}
}

type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Row maps column keys to display values.
type Row map[string]string

type Summary struct {
	TotalEquipments   int `json:"total_equipments"`
	ActiveInspections int `json:"active_inspections"`
	PendingCalls      int `json:"pending_calls"`
	ResolvedCalls     int `json:"resolved_calls"`
}

type Report struct {
	Kind    Kind     `json:"kind"`
	Title   string   `json:"title"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
	Summary Summary  `json:"summary"`
}

// Source is the data a report is built from, normally one storage snapshot.
type Source struct {
	Units      []entities.Unit
	Equipments []entities.Equipment
	Calls      []entities.TechnicalCall
	Checklists []entities.Checklist
}

type Params struct {
	UnitID string
	// Period bounds maintenance and inspection rows and the period counters of the summary.
	Period query.DateRange
	Scope  authz.Scope
}

var (
	equipmentColumns = []Column{
		{Key: "equipment", Label: "Equipamento"},
		{Key: "tag", Label: "Tag"},
		{Key: "unit", Label: "Unidade"},
		{Key: "status", Label: "Status"},
		{Key: "last_inspection", Label: "Última Inspeção"},
		{Key: "life_expectancy", Label: "Vida Útil"},
		{Key: "last_score", Label: "Última Nota"},
	}
	maintenanceColumns = []Column{
		{Key: "equipment", Label: "Equipamento"},
		{Key: "unit", Label: "Unidade"},
		{Key: "type", Label: "Tipo"},
		{Key: "priority", Label: "Prioridade"},
		{Key: "status", Label: "Status"},
		{Key: "created_at", Label: "Abertura"},
		{Key: "technician", Label: "Técnico"},
	}
	inspectionColumns = []Column{
		{Key: "equipment", Label: "Equipamento"},
		{Key: "unit", Label: "Unidade"},
		{Key: "date", Label: "Data"},
		{Key: "score", Label: "Nota Média"},
		{Key: "physical_condition", Label: "Condição Física"},
		{Key: "functionality", Label: "Funcionalidade"},
		{Key: "noise", Label: "Ruído"},
		{Key: "stability", Label: "Estabilidade"},
		{Key: "maintenance_requested", Label: "Manutenção Solicitada"},
	}
)

// Build produces the report of the given kind. Every row is limited to the scope
// in p; missing equipment or units are shown as N/A.
func Build(kind Kind, src Source, p Params) (Report, error) {
	r := Report{Kind: kind, Title: kind.Title(), Rows: []Row{}}
	switch kind {
	case KindEquipment:
		r.Columns = equipmentColumns
		r.Rows = equipmentRows(src, p)
	case KindMaintenance:
		r.Columns = maintenanceColumns
		r.Rows = maintenanceRows(src, p)
	case KindInspections:
		r.Columns = inspectionColumns
		r.Rows = inspectionRows(src, p)
	default:
		return Report{}, apperrors.NewInvalidInputError("tipo de relatório desconhecido: %q", kind)
	}
	r.Summary = summarize(src, p)
	return r, nil
}

func unitName(units map[string]entities.Unit, id string) string {
	if u, ok := units[id]; ok {
		return u.Name
	}
	return notAvailable
}

func equipmentRows(src Source, p Params) []Row {
	units := query.UnitIndex(src.Units)
	list := query.FilterEquipments(src.Equipments, query.EquipmentFilter{UnitID: p.UnitID, Scope: p.Scope})

	rows := make([]Row, 0, len(list))
	for _, e := range list {
		score := notAvailable
		if latest, ok := lifecycle.LatestChecklist(src.Checklists, e.ID); ok {
			score = lifecycle.FormatScore(lifecycle.AverageScore(latest))
		}
		rows = append(rows, Row{
			"equipment":       e.Name,
			"tag":             e.Tag,
			"unit":            unitName(units, e.UnitID),
			"status":          e.Status.Label(),
			"last_inspection": utils.FormatDisplayDate(e.LastInspection),
			"life_expectancy": fmt.Sprintf("%d/%d anos", e.CurrentAge, e.LifeExpectancy),
			"last_score":      score,
		})
	}
	return rows
}

func maintenanceRows(src Source, p Params) []Row {
	list := query.FilterCalls(src.Calls, query.CallFilter{UnitID: p.UnitID, Period: p.Period, Scope: p.Scope})

	rows := make([]Row, 0, len(list))
	for _, c := range list {
		technician := c.Technician
		if technician == "" {
			technician = unassigned
		}
		rows = append(rows, Row{
			"equipment":  c.EquipmentName,
			"unit":       c.UnitName,
			"type":       c.Type.Label(),
			"priority":   c.Priority.Label(),
			"status":     c.Status.Label(),
			"created_at": c.CreatedAt.UTC().Format(utils.DisplayDateLayout),
			"technician": technician,
		})
	}
	return rows
}

func inspectionRows(src Source, p Params) []Row {
	units := query.UnitIndex(src.Units)
	equipment := query.EquipmentIndex(src.Equipments)
	list := query.FilterChecklists(src.Checklists, equipment, query.ChecklistFilter{UnitID: p.UnitID, Period: p.Period, Scope: p.Scope})

	rows := make([]Row, 0, len(list))
	for _, c := range list {
		equipmentName, unit := notAvailable, notAvailable
		if e, ok := equipment[c.EquipmentID]; ok {
			equipmentName = e.Name
			unit = unitName(units, e.UnitID)
		}
		requested := "Não"
		if c.NeedsMaintenance {
			requested = "Sim"
		}
		rows = append(rows, Row{
			"equipment":             equipmentName,
			"unit":                  unit,
			"date":                  c.Date.UTC().Format(utils.DisplayDateLayout),
			"score":                 lifecycle.FormatScore(lifecycle.AverageScore(c)),
			"physical_condition":    strconv.Itoa(c.PhysicalCondition),
			"functionality":         strconv.Itoa(c.Functionality),
			"noise":                 strconv.Itoa(c.Noise),
			"stability":             strconv.Itoa(c.Stability),
			"maintenance_requested": requested,
		})
	}
	return rows
}

// summarize ignores the unit filter: it describes everything the caller may see.
func summarize(src Source, p Params) Summary {
	equipment := query.EquipmentIndex(src.Equipments)
	calls := query.FilterCalls(src.Calls, query.CallFilter{Scope: p.Scope})

	s := Summary{
		TotalEquipments:   len(query.FilterEquipments(src.Equipments, query.EquipmentFilter{Scope: p.Scope})),
		ActiveInspections: len(query.FilterChecklists(src.Checklists, equipment, query.ChecklistFilter{Period: p.Period, Scope: p.Scope})),
	}
	for _, c := range calls {
		switch {
		case c.Status == entities.CallStatusPending:
			s.PendingCalls++
		case c.Status == entities.CallStatusResolved && p.Period.Contains(c.UpdatedAt):
			s.ResolvedCalls++
		}
	}
	return s
}
