package engine

import (
	"tactics-server/internal/domain"
	"tactics-server/internal/systems"
)

// runAITurn исполняет фазу AI: каждый враждебный юнит действует
// независимо, в порядке ростера, пока не кончатся очки действия.
// Решение пересчитывается на каждое очко: цель могла погибнуть
// или выйти из радиуса после предыдущего шага.
func (s *GameService) runAITurn() {
	// Снимок ростера: сам ростер в этой фазе не мутирует (враги
	// не умирают от своих действий), но копия дешевле рассуждений
	hostiles := append([]*domain.Unit(nil), s.Hostiles...)

	for _, npc := range hostiles {
		if npc.Stats == nil || npc.Stats.IsDead {
			continue
		}

		// Идемпотентно с общим рестором в EndTurn
		npc.Stats.NewTurn()

		for npc.Stats.HasActionPoints() {
			decision, target, dx, dy := systems.ComputeHostileAction(npc, s.Grid, s.cfg.VisionRadius)

			switch decision {
			case systems.DecisionAttack:
				// Тот же боевой примитив, что и у игрока
				msg, died := systems.ApplyAttack(npc, target)
				if msg != "" {
					s.AddLog(msg, "COMBAT")
				}
				if died {
					s.handleDeath(target)
				}

			case systems.DecisionMove:
				dest := s.Grid.Cell(npc.Pos.X+dx, npc.Pos.Y+dy)
				if !s.Grid.MoveImmediate(npc, dest) {
					npc.Stats.UseActionPoints(domain.APCostWait)
					continue
				}
				s.notifyMoved(npc)
				s.fireGridEvents(npc)

			default:
				// Целей не видно или шаг заблокирован: очко сгорает
				npc.Stats.UseActionPoints(domain.APCostWait)
			}
		}
	}
}
