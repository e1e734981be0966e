package entityplus

import (
	"sort"

	"github.com/rs/zerolog"
)

func loadComponentsToEvent(event *zerolog.Event, m *Manager) *zerolog.Event {
	records := make([]*componentRecord, 0, len(m.components))
	for _, rec := range m.components {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].id < records[j].id
	})
	event.Int("total_components", len(records))
	arrayLogger := zerolog.Arr()
	for _, rec := range records {
		dictLogger := zerolog.Dict().
			Int("component_id", int(rec.id)).
			Str("component_name", rec.name)
		arrayLogger = arrayLogger.Dict(dictLogger)
	}
	return event.Array("components", arrayLogger)
}

func loadTagsToEvent(event *zerolog.Event, m *Manager) *zerolog.Event {
	records := make([]*tagRecord, 0, len(m.tags))
	for _, rec := range m.tags {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].id < records[j].id
	})
	event.Int("total_tags", len(records))
	arrayLogger := zerolog.Arr()
	for _, rec := range records {
		dictLogger := zerolog.Dict().
			Int("tag_id", int(rec.id)).
			Str("tag_name", rec.name)
		arrayLogger = arrayLogger.Dict(dictLogger)
	}
	return event.Array("tags", arrayLogger)
}

// LogRegistered logs every registered component and tag type at the given
// level.
func (m *Manager) LogRegistered(level zerolog.Level) {
	event := m.logger.WithLevel(level)
	event = loadComponentsToEvent(event, m)
	event = loadTagsToEvent(event, m)
	event.Int("total_entities", m.registry.len())
	event.Send()
}
