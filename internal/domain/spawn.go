package domain

import "strings"

// SpawnKind - тег записи из данных карты
type SpawnKind uint8

const (
	SpawnUnknown SpawnKind = iota
	SpawnPC
	SpawnHostile
	SpawnGridEvent
)

var spawnStringToKind = map[string]SpawnKind{
	"pc-spawn":      SpawnPC,
	"hostile-spawn": SpawnHostile,
	"grid-event":    SpawnGridEvent,
}

var spawnKindToString = map[SpawnKind]string{
	SpawnPC:        "pc-spawn",
	SpawnHostile:   "hostile-spawn",
	SpawnGridEvent: "grid-event",
}

func ParseSpawnKind(s string) SpawnKind {
	if val, ok := spawnStringToKind[strings.ToLower(s)]; ok {
		return val
	}
	return SpawnUnknown
}

func (k SpawnKind) String() string {
	if val, ok := spawnKindToString[k]; ok {
		return val
	}
	return "unknown"
}

// SpawnRecord - одна запись слоя объектов карты. Как она извлекается
// из формата редактора - забота загрузчика; ядру важна только форма.
type SpawnRecord struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`

	// Свойства юнитов (pc-spawn, hostile-spawn)
	Name string `json:"name,omitempty"`
	HP   int    `json:"hp,omitempty"`
	AP   int    `json:"ap,omitempty"`

	// Свойства событий (grid-event)
	EventType string `json:"grid-event-type,omitempty"`
	Text      string `json:"text,omitempty"`
}
