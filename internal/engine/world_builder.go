package engine

import (
	"fmt"

	"tactics-server/internal/domain"
	"tactics-server/pkg/logger"
)

// buildWorld создает сетку, отряды и события из слоя объектов карты.
//
// Отсутствие хотя бы одного pc-spawn - фатальная ошибка загрузки:
// уровень без игрока запустить нельзя. Прочие странности данных
// (неизвестный вид записи, неизвестный тип события) не фатальны -
// запись пропускается с предупреждением в лог.
func buildWorld(width, height int, terrain func(x, y int) bool, records []domain.SpawnRecord) (*domain.Grid, []*domain.Unit, []*domain.Unit, []domain.GridEvent, error) {
	if width <= 0 || height <= 0 {
		return nil, nil, nil, nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}

	grid := domain.NewGrid(width, height, terrain)

	var friendlies []*domain.Unit
	var hostiles []*domain.Unit
	var events []domain.GridEvent

	for _, rec := range records {
		if !grid.IsOnGrid(rec.X, rec.Y) {
			return nil, nil, nil, nil, fmt.Errorf("record %q at (%d,%d) is off the %dx%d grid", rec.Kind, rec.X, rec.Y, width, height)
		}
		pos := domain.Position{X: rec.X, Y: rec.Y}

		switch domain.ParseSpawnKind(rec.Kind) {
		case domain.SpawnPC:
			u := domain.NewCharacter(rec.Name, domain.ControlFriendly, pos, rec.HP, rec.AP)
			u.Render = &domain.RenderComponent{Symbol: "@", Color: "#22D3EE", Sprite: rec.Name}
			grid.PlaceUnit(u)
			friendlies = append(friendlies, u)

		case domain.SpawnHostile:
			u := domain.NewCharacter(rec.Name, domain.ControlHostile, pos, rec.HP, rec.AP)
			u.Render = &domain.RenderComponent{Symbol: "g", Color: "#EF4444", Sprite: rec.Name}
			grid.PlaceUnit(u)
			hostiles = append(hostiles, u)

		case domain.SpawnGridEvent:
			kind := domain.ParseGridEventKind(rec.EventType)
			if kind == domain.GridEventUnknown {
				logger.Log.WithField("grid-event-type", rec.EventType).Warn("Skipping grid event of unknown type")
				continue
			}
			events = append(events, domain.GridEvent{X: rec.X, Y: rec.Y, Kind: kind, Text: rec.Text})

		default:
			logger.Log.WithField("kind", rec.Kind).Warn("Skipping spawn record of unknown kind")
		}
	}

	if len(friendlies) == 0 {
		return nil, nil, nil, nil, fmt.Errorf("map data has no pc-spawn records: cannot start level")
	}

	return grid, friendlies, hostiles, events, nil
}
