package listeners

import (
	"context"

	"gym-maintenance/internal/events"
	"gym-maintenance/pkg/eventbus"
	"gym-maintenance/pkg/metrics"
)

// MetricsListener counts domain events and records inspection and call figures.
type MetricsListener struct {
	metrics *metrics.Collector
}

func NewMetricsListener(collector *metrics.Collector) *MetricsListener {
	return &MetricsListener{metrics: collector}
}

func (l *MetricsListener) Register(bus *eventbus.Bus) {
	for _, name := range []string{
		events.EquipmentCreatedName,
		events.EquipmentDeletedName,
		events.ChecklistSubmittedName,
		events.TechnicalCallCreatedName,
		events.TechnicalCallUpdatedName,
	} {
		bus.Subscribe(name, l.handle)
	}
}

func (l *MetricsListener) handle(ctx context.Context, event eventbus.Event) error {
	l.metrics.RecordEvent(event.Name())

	switch e := event.(type) {
	case events.ChecklistSubmitted:
		l.metrics.ObserveInspection(e.AverageScore)
		if e.Call != nil {
			l.metrics.CallOpened(string(e.Call.Type), string(e.Call.Priority))
		}
	case events.TechnicalCallCreated:
		l.metrics.CallOpened(string(e.Call.Type), string(e.Call.Priority))
	}
	return nil
}
