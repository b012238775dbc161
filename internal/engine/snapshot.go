package engine

import (
	"fmt"
	"time"

	"tactics-server/internal/domain"
	"tactics-server/pkg/api"
)

// buildSnapshot собирает полный снимок мира для клиента.
// Логи отдаются и очищаются: клиент получает только новые записи.
func (s *GameService) buildSnapshot() api.ServerNotice {
	units := make([]api.UnitView, 0, len(s.Friendlies)+len(s.Hostiles))
	for _, u := range s.Friendlies {
		units = append(units, unitView(u))
	}
	for _, u := range s.Hostiles {
		units = append(units, unitView(u))
	}

	logs := s.Logs
	s.Logs = nil

	return api.ServerNotice{
		Type:     api.NoticeSnapshot,
		Tick:     s.tick,
		Phase:    s.phase.Current(),
		Grid:     &api.GridMeta{Width: s.Grid.Width, Height: s.Grid.Height},
		Units:    units,
		Selected: s.selected,
		Logs:     logs,
	}
}

func unitView(u *domain.Unit) api.UnitView {
	view := api.UnitView{
		ID:      u.ID,
		Type:    u.Type,
		Name:    u.Name,
		Control: u.Control.String(),
		Pos:     api.Position{X: u.Pos.X, Y: u.Pos.Y},
	}
	if u.Render != nil {
		view.Render = &api.RenderView{
			Symbol: u.Render.Symbol,
			Color:  u.Render.Color,
			Sprite: u.Render.Sprite,
		}
	}
	if u.Stats != nil {
		view.Stats = &api.StatsView{
			HP: u.Stats.HP, MaxHP: u.Stats.MaxHP,
			AP: u.Stats.AP, MaxAP: u.Stats.MaxAP,
			IsDead: u.Stats.IsDead,
		}
	}
	return view
}

func newLogEntry(text, logType string) api.LogEntry {
	return api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	}
}
