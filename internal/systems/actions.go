package systems

import (
	"tactics-server/internal/domain"
)

// UnitActions перечисляет легальные действия юнита в этот ход.
// Не меняет состояние мира!
//
// Сканируется окрестность радиуса 1 (8 клеток-кандидатов) построчно,
// собственная клетка пропускается. Атака имеет приоритет над движением:
// если в клетке есть цель, действие "движение" для нее не генерируется.
// Порядок результата стабилен - от него зависит подсветка и тесты.
func UnitActions(g *domain.Grid, u *domain.Unit) []domain.UnitAction {
	if u.Stats == nil || !u.Stats.HasActionPoints() {
		return nil // без очков действий нет
	}

	var actions []domain.UnitAction
	for dy := -domain.ActionRadius; dy <= domain.ActionRadius; dy++ {
		for dx := -domain.ActionRadius; dx <= domain.ActionRadius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			pos := u.Pos.Shift(dx, dy)
			if !g.IsOnGrid(pos.X, pos.Y) {
				continue
			}

			if target := g.AttackableUnit(u, pos.X, pos.Y); target != nil {
				actions = append(actions, domain.UnitAction{
					Kind:   domain.UnitActionAttack,
					Pos:    pos,
					Target: target,
				})
				continue
			}

			if g.IsPathable(pos.X, pos.Y) {
				actions = append(actions, domain.UnitAction{
					Kind: domain.UnitActionMove,
					Pos:  pos,
				})
			}
		}
	}
	return actions
}
