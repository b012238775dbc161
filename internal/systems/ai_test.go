package systems

import (
	"testing"

	"tactics-server/internal/domain"
)

func hostileAt(name string, x, y, ap int) *domain.Unit {
	u := domain.NewCharacter(name, domain.ControlHostile, domain.Position{X: x, Y: y}, 3, ap)
	return u
}

func TestHostileTurn(t *testing.T) {
	t.Run("closes distance and stops adjacent with no AP left", func(t *testing.T) {
		grid := domain.NewGrid(10, 3, nil)
		npc := hostileAt("Goblin", 0, 0, 3)
		pc := domain.NewCharacter("Hero", domain.ControlFriendly, domain.Position{X: 4, Y: 0}, 3, 2)
		grid.PlaceUnit(npc)
		grid.PlaceUnit(pc)

		// Три очка - три шага вправо, после чего очков на атаку нет
		for npc.Stats.HasActionPoints() {
			decision, target, dx, dy := ComputeHostileAction(npc, grid, domain.AIVisionRadius)
			if decision != DecisionMove {
				t.Fatalf("expected MOVE at %+v, got %s", npc.Pos, decision)
			}
			if target != nil {
				t.Fatal("move decision must not carry a target")
			}
			if dx != 1 || dy != 0 {
				t.Fatalf("step = (%d,%d), want (1,0)", dx, dy)
			}
			dest := npc.Pos.Shift(dx, dy)
			if !grid.MoveImmediate(npc, grid.Cell(dest.X, dest.Y)) {
				t.Fatal("move should succeed on open terrain")
			}
		}

		if npc.Pos != (domain.Position{X: 3, Y: 0}) {
			t.Errorf("npc ended at %+v, want (3,0)", npc.Pos)
		}
		if npc.Stats.AP != 0 {
			t.Errorf("npc AP = %d, want 0", npc.Stats.AP)
		}
		if pc.Stats.HP != 3 {
			t.Errorf("hero must be untouched, HP = %d", pc.Stats.HP)
		}
	})

	t.Run("adjacent target gets attacked", func(t *testing.T) {
		grid := domain.NewGrid(5, 5, nil)
		npc := hostileAt("Goblin", 2, 2, 2)
		pc := domain.NewCharacter("Hero", domain.ControlFriendly, domain.Position{X: 3, Y: 3}, 3, 2)
		grid.PlaceUnit(npc)
		grid.PlaceUnit(pc)

		decision, target, _, _ := ComputeHostileAction(npc, grid, domain.AIVisionRadius)
		if decision != DecisionAttack {
			t.Fatalf("expected ATTACK, got %s", decision)
		}
		if target != pc {
			t.Error("attack must target the adjacent hero")
		}
	})

	t.Run("no visible target means wait", func(t *testing.T) {
		grid := domain.NewGrid(20, 3, nil)
		npc := hostileAt("Goblin", 0, 0, 2)
		pc := domain.NewCharacter("Hero", domain.ControlFriendly, domain.Position{X: 10, Y: 0}, 3, 2)
		grid.PlaceUnit(npc)
		grid.PlaceUnit(pc)

		decision, _, _, _ := ComputeHostileAction(npc, grid, domain.AIVisionRadius)
		if decision != DecisionWait {
			t.Errorf("target outside vision: expected WAIT, got %s", decision)
		}
	})

	t.Run("dead target is invisible", func(t *testing.T) {
		grid := domain.NewGrid(5, 5, nil)
		npc := hostileAt("Goblin", 2, 2, 2)
		pc := domain.NewCharacter("Hero", domain.ControlFriendly, domain.Position{X: 3, Y: 2}, 1, 2)
		pc.Stats.UseHitPoints(1)
		grid.PlaceUnit(npc)
		grid.PlaceUnit(pc)

		decision, _, _, _ := ComputeHostileAction(npc, grid, domain.AIVisionRadius)
		if decision != DecisionWait {
			t.Errorf("dead hero: expected WAIT, got %s", decision)
		}
	})

	t.Run("blocked step waits instead of stacking", func(t *testing.T) {
		// Стена прямо на диагональном шаге к цели
		grid := domain.NewGrid(6, 6, func(x, y int) bool { return x == 1 && y == 1 })
		npc := hostileAt("Goblin", 0, 0, 2)
		pc := domain.NewCharacter("Hero", domain.ControlFriendly, domain.Position{X: 3, Y: 3}, 3, 2)
		grid.PlaceUnit(npc)
		grid.PlaceUnit(pc)

		decision, _, _, _ := ComputeHostileAction(npc, grid, domain.AIVisionRadius)
		if decision != DecisionWait {
			t.Errorf("blocked destination: expected WAIT, got %s", decision)
		}
	})

	t.Run("nearest by euclidean distance wins", func(t *testing.T) {
		grid := domain.NewGrid(10, 10, nil)
		npc := hostileAt("Goblin", 5, 5, 2)
		near := domain.NewCharacter("Near", domain.ControlFriendly, domain.Position{X: 5, Y: 2}, 3, 2)
		far := domain.NewCharacter("Far", domain.ControlFriendly, domain.Position{X: 1, Y: 5}, 3, 2)
		grid.PlaceUnit(npc)
		grid.PlaceUnit(near)
		grid.PlaceUnit(far)

		decision, _, dx, dy := ComputeHostileAction(npc, grid, domain.AIVisionRadius)
		if decision != DecisionMove {
			t.Fatalf("expected MOVE, got %s", decision)
		}
		// К Near: шаг (0,-1), к Far был бы (-1,0)
		if dx != 0 || dy != -1 {
			t.Errorf("step = (%d,%d), want (0,-1) toward the nearer hero", dx, dy)
		}
	})

	t.Run("euclidean tie breaks by scan order", func(t *testing.T) {
		grid := domain.NewGrid(10, 10, nil)
		npc := hostileAt("Goblin", 5, 5, 2)
		// Обе цели на дистанции 3, но (5,2) встречается раньше при
		// построчном обходе окрестности
		upper := domain.NewCharacter("Upper", domain.ControlFriendly, domain.Position{X: 5, Y: 2}, 3, 2)
		left := domain.NewCharacter("Left", domain.ControlFriendly, domain.Position{X: 2, Y: 5}, 3, 2)
		grid.PlaceUnit(npc)
		grid.PlaceUnit(upper)
		grid.PlaceUnit(left)

		decision, _, dx, dy := ComputeHostileAction(npc, grid, domain.AIVisionRadius)
		if decision != DecisionMove {
			t.Fatalf("expected MOVE, got %s", decision)
		}
		if dx != 0 || dy != -1 {
			t.Errorf("step = (%d,%d), want (0,-1) toward the first-found hero", dx, dy)
		}
	})

	t.Run("dead npc never acts", func(t *testing.T) {
		grid := domain.NewGrid(5, 5, nil)
		npc := hostileAt("Goblin", 2, 2, 2)
		npc.Stats.IsDead = true
		pc := domain.NewCharacter("Hero", domain.ControlFriendly, domain.Position{X: 3, Y: 2}, 3, 2)
		grid.PlaceUnit(npc)
		grid.PlaceUnit(pc)

		decision, _, _, _ := ComputeHostileAction(npc, grid, domain.AIVisionRadius)
		if decision != DecisionWait {
			t.Errorf("dead npc: expected WAIT, got %s", decision)
		}
	})
}
