package systems

import (
	"fmt"

	"tactics-server/internal/domain"
	"tactics-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ApplyAttack наносит удар. Дальность и видимость здесь НЕ проверяются:
// атака вызывается только для цели, прошедшей генератор действий, так что
// повторная валидация не нужна (и у игрока, и у AI один и тот же путь).
//
// Возвращает сообщение для лога и флаг "цель погибла этим ударом".
func ApplyAttack(attacker, target *domain.Unit) (string, bool) {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	// --- Проверка граничных условий ---

	if target.Stats == nil {
		combatLogger.Warn("Attack failed: target has no StatsComponent.")
		return fmt.Sprintf("%s атакует %s, но это бесполезно.", attacker.Name, target.Name), false
	}
	if target.Stats.IsDead {
		combatLogger.Info("Attack ineffective: target is already dead.")
		return fmt.Sprintf("%s пинает труп %s.", attacker.Name, target.Name), false
	}

	// Единый примитив траты очков: не хватило - атака не происходит
	if attacker.Stats != nil && !attacker.Stats.UseActionPoints(domain.APCostAttack) {
		combatLogger.Warn("Attack rejected: not enough action points.")
		return "", false
	}

	hpBefore := target.Stats.HP
	died := target.Stats.UseHitPoints(1)

	combatLogger.WithFields(logrus.Fields{
		"hp_before":   hpBefore,
		"hp_after":    target.Stats.HP,
		"target_died": died,
	}).Info("Attack resolved.")

	logMsg := fmt.Sprintf("%s наносит удар по %s.", attacker.Name, target.Name)
	if died {
		// Визуально меняем труп
		if target.Render != nil {
			target.Render.Symbol = "%"
			target.Render.Color = "text-gray-500"
		}
		logMsg += fmt.Sprintf(" %s погибает.", target.Name)
	}

	return logMsg, died
}
