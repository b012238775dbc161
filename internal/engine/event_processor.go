package engine

import (
	"tactics-server/internal/domain"
	"tactics-server/pkg/api"
	"tactics-server/pkg/logger"
)

// fireGridEvents проверяет триггеры клеток по НОВОЙ позиции юнита.
// Вызывается после каждого перемещения - и игрока, и AI.
// События не расходуются: повторный вход срабатывает снова.
func (s *GameService) fireGridEvents(mover *domain.Unit) {
	for _, ev := range s.GridEvents {
		if !ev.Matches(mover.Pos) {
			continue
		}
		s.processGridEvent(mover, ev)
	}
}

func (s *GameService) processGridEvent(mover *domain.Unit, ev domain.GridEvent) {
	eventLogger := logger.Log.WithField("component", "event_processor").
		WithField("event", ev.Kind.String()).
		WithField("unit", mover.Name)

	switch ev.Kind {
	case domain.GridEventSpeak:
		eventLogger.Info("Speak trigger fired")
		s.AddLog(ev.Text, "SPEECH")
		s.Hub.Broadcast(api.ServerNotice{
			Type: api.NoticeDialogue,
			Text: ev.Text,
		})

	case domain.GridEventWin:
		// Считаем выживших в отряде и объявляем финал
		survivors := 0
		for _, u := range s.Friendlies {
			if !u.IsDead() {
				survivors++
			}
		}
		eventLogger.WithField("survivors", survivors).Info("Win trigger fired")
		s.AddLog(ev.Text, "INFO")
		s.Hub.Broadcast(api.ServerNotice{
			Type:      api.NoticeGameOver,
			Text:      ev.Text,
			Survivors: survivors,
		})

	default:
		eventLogger.Warn("Unknown grid event kind")
	}
}
