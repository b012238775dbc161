package domain

import "strings"

// GridEventKind - Внутренний числовой идентификатор события клетки
type GridEventKind uint8

const (
	GridEventUnknown GridEventKind = iota
	GridEventSpeak
	GridEventWin
)

// Маппинг для конвертации данных карты -> Domain
var eventStringToKind = map[string]GridEventKind{
	"SPEAK": GridEventSpeak,
	"WIN":   GridEventWin,
}

// Маппинг для логов Domain -> String
var eventKindToString = map[GridEventKind]string{
	GridEventSpeak: "SPEAK",
	GridEventWin:   "WIN",
}

// ParseGridEventKind конвертирует строку из данных карты
func ParseGridEventKind(s string) GridEventKind {
	upper := strings.ToUpper(s)
	if val, ok := eventStringToKind[upper]; ok {
		return val
	}
	return GridEventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (k GridEventKind) String() string {
	if val, ok := eventKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// GridEvent - скриптовый триггер, привязанный к координате.
// Загружается один раз при построении мира и не мутирует.
// НЕ одноразовый: повторный вход в клетку срабатывает снова.
type GridEvent struct {
	X    int
	Y    int
	Kind GridEventKind
	Text string
}

// Matches - сравнение по координате
func (e GridEvent) Matches(p Position) bool {
	return e.X == p.X && e.Y == p.Y
}
