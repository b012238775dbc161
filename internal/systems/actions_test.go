package systems

import (
	"testing"

	"tactics-server/internal/domain"
)

func TestUnitActions(t *testing.T) {
	t.Run("no action points means no actions", func(t *testing.T) {
		grid := domain.NewGrid(5, 5, nil)
		unit := domain.NewCharacter("Hero", domain.ControlFriendly, domain.Position{X: 2, Y: 2}, 3, 2)
		grid.PlaceUnit(unit)
		unit.Stats.AP = 0

		if got := UnitActions(grid, unit); len(got) != 0 {
			t.Errorf("expected no actions with 0 AP, got %d", len(got))
		}
	})

	t.Run("open terrain yields all eight neighbors in scan order", func(t *testing.T) {
		grid := domain.NewGrid(5, 5, nil)
		unit := domain.NewCharacter("Hero", domain.ControlFriendly, domain.Position{X: 2, Y: 2}, 3, 2)
		grid.PlaceUnit(unit)

		got := UnitActions(grid, unit)
		if len(got) != 8 {
			t.Fatalf("expected 8 actions, got %d", len(got))
		}

		want := []domain.Position{
			{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1},
			{X: 1, Y: 2}, {X: 3, Y: 2},
			{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3},
		}
		for i, a := range got {
			if a.Pos != want[i] {
				t.Errorf("actions[%d].Pos = %+v, want %+v", i, a.Pos, want[i])
			}
			if a.Kind != domain.UnitActionMove {
				t.Errorf("actions[%d] should be MOVE on open terrain", i)
			}
		}
	})

	t.Run("grid edge drops off-grid candidates", func(t *testing.T) {
		grid := domain.NewGrid(5, 5, nil)
		unit := domain.NewCharacter("Hero", domain.ControlFriendly, domain.Position{X: 0, Y: 0}, 3, 2)
		grid.PlaceUnit(unit)

		if got := UnitActions(grid, unit); len(got) != 3 {
			t.Errorf("corner unit should have 3 actions, got %d", len(got))
		}
	})

	t.Run("attack claims the cell over move", func(t *testing.T) {
		grid := domain.NewGrid(5, 5, nil)
		unit := domain.NewCharacter("Hero", domain.ControlFriendly, domain.Position{X: 2, Y: 2}, 3, 2)
		enemy := domain.NewCharacter("Goblin", domain.ControlHostile, domain.Position{X: 3, Y: 2}, 1, 2)
		grid.PlaceUnit(unit)
		grid.PlaceUnit(enemy)

		got := UnitActions(grid, unit)
		attacks := 0
		for _, a := range got {
			if a.Pos == enemy.Pos {
				if a.Kind != domain.UnitActionAttack {
					t.Error("enemy cell should yield ATTACK, not MOVE")
				}
				if a.Target != enemy {
					t.Error("attack action should carry the target")
				}
				attacks++
			}
		}
		if attacks != 1 {
			t.Errorf("expected exactly one attack action, got %d", attacks)
		}
	})

	t.Run("blocked cells are skipped entirely", func(t *testing.T) {
		grid := domain.NewGrid(5, 5, func(x, y int) bool { return x == 2 && y == 1 })
		unit := domain.NewCharacter("Hero", domain.ControlFriendly, domain.Position{X: 2, Y: 2}, 3, 2)
		ally := domain.NewCharacter("Ally", domain.ControlFriendly, domain.Position{X: 1, Y: 2}, 3, 2)
		grid.PlaceUnit(unit)
		grid.PlaceUnit(ally)

		for _, a := range UnitActions(grid, unit) {
			if a.Pos == (domain.Position{X: 2, Y: 1}) {
				t.Error("wall cell should yield no action")
			}
			// Своих не атакуем, через них не ходим
			if a.Pos == ally.Pos {
				t.Error("cell held by an ally should yield no action")
			}
		}
	})
}
