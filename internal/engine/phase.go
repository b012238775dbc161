package engine

import (
	"context"

	"tactics-server/pkg/logger"

	"github.com/looplab/fsm"
)

// Фазы хода. Ровно одна активна в любой момент; переключает их
// только EndTurn. Пока идет фаза AI, ввод игрока не принимается.
const (
	PhasePlayer = "player_phase"
	PhaseAI     = "ai_phase"
)

// События переходов
const (
	eventEndTurn = "end_turn"
	eventResume  = "resume"
)

// newPhaseFSM строит машину состояний хода.
// Других состояний нет: игра не останавливается посреди разрешения
// действия, каждый клик обрабатывается синхронно до следующего ввода.
func newPhaseFSM() *fsm.FSM {
	return fsm.NewFSM(
		PhasePlayer,
		fsm.Events{
			{Name: eventEndTurn, Src: []string{PhasePlayer}, Dst: PhaseAI},
			{Name: eventResume, Src: []string{PhaseAI}, Dst: PhasePlayer},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Log.WithField("phase", e.Dst).Debug("Turn phase changed")
			},
		},
	)
}
