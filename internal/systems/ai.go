package systems

import (
	"tactics-server/internal/domain"
	"tactics-server/pkg/logger"
)

// Decision - решение враждебного юнита на ОДНО очко действия
type Decision uint8

const (
	DecisionWait Decision = iota
	DecisionMove
	DecisionAttack
)

func (d Decision) String() string {
	switch d {
	case DecisionMove:
		return "MOVE"
	case DecisionAttack:
		return "ATTACK"
	default:
		return "WAIT"
	}
}

// ComputeHostileAction решает, что делать враждебному юниту.
// Возвращает (решение, цель_атаки_если_есть, dx, dy).
//
// Правила:
//  1. Видимость - квадрат радиуса visionRadius (по Чебышеву) вокруг юнита.
//  2. Из видимых живых целей берем ближайшую по евклидовой дистанции;
//     при равенстве побеждает первая найденная (построчный обход клеток).
//  3. Цель в соседней клетке - атака. Иначе - шаг в ее сторону:
//     каждая ось независимо сдвигается на знак разницы.
//  4. Целей не видно - WAIT (очко все равно сгорает; осмысленного
//     "блуждания" пока нет, это известное упрощение, а не баг).
//
// Шаг проверяется на проходимость: если клетка назначения занята или
// вне сетки, возвращается WAIT вместо наложения юнитов друг на друга.
func ComputeHostileAction(npc *domain.Unit, g *domain.Grid, visionRadius int) (Decision, *domain.Unit, int, int) {
	aiLogger := logger.Log.WithField("component", "ai_system").WithField("npc", npc.Name)

	if npc.Stats == nil || npc.Stats.IsDead || npc.Control != domain.ControlHostile {
		aiLogger.Debug("Invalid state (dead, not hostile). Decision: WAIT")
		return DecisionWait, nil, 0, 0
	}

	// Поиск ближайшей видимой цели через окрестность сетки
	var target *domain.Unit
	minDist := -1.0
	for _, cell := range g.AdjacentCells(npc.Pos, visionRadius) {
		for _, other := range cell.Occupants() {
			if other.Control != domain.ControlFriendly || other.IsDead() {
				continue
			}
			dist := npc.Pos.DistanceTo(other.Pos)
			if minDist < 0 || dist < minDist {
				minDist = dist
				target = other
			}
		}
	}

	if target == nil {
		aiLogger.Debug("No visible target. Decision: WAIT")
		return DecisionWait, nil, 0, 0
	}

	// В радиусе ближнего боя - бьем
	if npc.Pos.ChebyshevTo(target.Pos) <= domain.MeleeRange {
		aiLogger.Debug("Target in melee range. Decision: ATTACK")
		return DecisionAttack, target, 0, 0
	}

	// Шаг к цели: оси двигаются независимо, выровненная ось стоит
	dx := sign(target.Pos.X - npc.Pos.X)
	dy := sign(target.Pos.Y - npc.Pos.Y)

	dest := npc.Pos.Shift(dx, dy)
	if !g.IsPathable(dest.X, dest.Y) {
		// Без обхода препятствий: уперлись - стоим
		aiLogger.Debug("Step destination blocked. Decision: WAIT")
		return DecisionWait, nil, 0, 0
	}

	aiLogger.Debugf("Stepping toward target (dx:%d, dy:%d)", dx, dy)
	return DecisionMove, nil, dx, dy
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
