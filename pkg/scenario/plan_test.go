package scenario

import (
	"testing"

	"tactics-server/internal/domain"
)

func TestPlanBuilder(t *testing.T) {
	p := New(6, 4).
		Wall(3, 1).
		WallRect(0, 0, 5, 0).
		SpawnPC("Сержант", 1, 2, 3, 2).
		SpawnHostile("Гоблин", 4, 2, 1, 2).
		Speak(2, 2, "Тихо.").
		Win(5, 3, "Готово.")

	if w, h := p.Size(); w != 6 || h != 4 {
		t.Errorf("size = %dx%d, want 6x4", w, h)
	}

	terrain := p.Terrain()
	if !terrain(3, 1) {
		t.Error("single wall tile should block")
	}
	for x := 0; x <= 5; x++ {
		if !terrain(x, 0) {
			t.Errorf("wall rect tile (%d,0) should block", x)
		}
	}
	if terrain(1, 2) {
		t.Error("open tile should not block")
	}

	records := p.Records()
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	kinds := []domain.SpawnKind{domain.SpawnPC, domain.SpawnHostile, domain.SpawnGridEvent, domain.SpawnGridEvent}
	for i, want := range kinds {
		if got := domain.ParseSpawnKind(records[i].Kind); got != want {
			t.Errorf("records[%d].Kind = %q, want %v", i, records[i].Kind, want)
		}
	}
	if domain.ParseGridEventKind(records[2].EventType) != domain.GridEventSpeak {
		t.Errorf("records[2] should be a SPEAK event, got %q", records[2].EventType)
	}
	if domain.ParseGridEventKind(records[3].EventType) != domain.GridEventWin {
		t.Errorf("records[3] should be a WIN event, got %q", records[3].EventType)
	}
}

func TestDemoLevel(t *testing.T) {
	p := Demo()
	terrain := p.Terrain()

	pcs, hostiles, wins := 0, 0, 0
	for _, rec := range p.Records() {
		switch domain.ParseSpawnKind(rec.Kind) {
		case domain.SpawnPC:
			pcs++
		case domain.SpawnHostile:
			hostiles++
		case domain.SpawnGridEvent:
			if domain.ParseGridEventKind(rec.EventType) == domain.GridEventWin {
				wins++
			}
		}
		// Все записи внутри уровня
		w, h := p.Size()
		if rec.X < 0 || rec.X >= w || rec.Y < 0 || rec.Y >= h {
			t.Errorf("record %q at (%d,%d) is off the level", rec.Kind, rec.X, rec.Y)
		}
		// Юниты и триггеры не стоят в стенах
		if terrain(rec.X, rec.Y) {
			t.Errorf("record %q at (%d,%d) sits inside a wall", rec.Kind, rec.X, rec.Y)
		}
	}

	if pcs == 0 {
		t.Error("demo level must contain pc spawns")
	}
	if hostiles == 0 {
		t.Error("demo level must contain hostiles")
	}
	if wins != 1 {
		t.Errorf("demo level must contain exactly one win trigger, got %d", wins)
	}

	// Проход в воротах открыт, сами ворота - нет
	if terrain(8, 5) || terrain(8, 6) {
		t.Error("gate gap must stay open")
	}
	if !terrain(8, 4) || !terrain(8, 7) {
		t.Error("gate walls must block")
	}
}
