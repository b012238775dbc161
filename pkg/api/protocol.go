package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Типы уведомлений. Ядро шлет их "в одну сторону" - ответ не ожидается.
const (
	NoticeSnapshot  = "SNAPSHOT"   // полный снимок мира
	NoticeSelection = "SELECTION"  // сменился выбранный юнит
	NoticeHighlight = "HIGHLIGHT"  // подсветить клетки доступных действий
	NoticeDialogue  = "DIALOGUE"   // показать текст (с вариантами или без)
	NoticeUnitDied  = "UNIT_DIED"  // убрать спрайт, обновить панель отряда
	NoticeGameOver  = "GAME_OVER"  // конец уровня
	NoticeUnitMoved = "UNIT_MOVED" // юнит сменил клетку (для анимации)
)

// ServerNotice это корневой объект, который сервер отправляет клиенту.
// Заполнены только поля, относящиеся к данному Type.
type ServerNotice struct {
	Type string `json:"type"`

	// Tick текущее значение счетчика кадров движка.
	Tick int `json:"tick,omitempty"`

	// Phase текущая фаза хода ("player_phase" / "ai_phase").
	Phase string `json:"phase,omitempty"`

	// Grid метаданные о размере карты (SNAPSHOT).
	Grid *GridMeta `json:"grid,omitempty"`

	// Units все живые юниты (SNAPSHOT).
	Units []UnitView `json:"units,omitempty"`

	// Selected индекс выбранного юнита в дружественном отряде (SELECTION).
	Selected int `json:"selected,omitempty"`

	// Cells подсвечиваемые клетки (HIGHLIGHT), Kind - "MOVE" или "ATTACK".
	Cells []CellView `json:"cells,omitempty"`
	Kind  string     `json:"kind,omitempty"`

	// Text и Choices - диалог (DIALOGUE) или финальное сообщение (GAME_OVER).
	Text    string   `json:"text,omitempty"`
	Choices []string `json:"choices,omitempty"`

	// UnitID погибший или переместившийся юнит (UNIT_DIED, UNIT_MOVED).
	UnitID string    `json:"unitId,omitempty"`
	Pos    *Position `json:"pos,omitempty"`

	// Facing направление перемещения в радианах (UNIT_MOVED) -
	// клиент крутит спрайт, ядро анимацию не ждет.
	Facing float64 `json:"facing,omitempty"`

	// Survivors число выживших в отряде (GAME_OVER c победой).
	Survivors int `json:"survivors,omitempty"`

	// Logs новые записи игрового лога с прошлого уведомления.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит размеры карты, чтобы клиент подготовил сетку рендера.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CellView это DTO одной клетки для подсветки.
type CellView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// UnitView это DTO игрового юнита.
type UnitView struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"` // CHARACTER, HOSTILE, MARKER
	Name    string   `json:"name"`
	Control string   `json:"control"` // FRIENDLY, HOSTILE, NEUTRAL
	Pos     Position `json:"pos"`

	Render *RenderView `json:"render,omitempty"`

	// Stats может отсутствовать у чисто логических юнитов.
	Stats *StatsView `json:"stats,omitempty"`
}

type RenderView struct {
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	Sprite string `json:"sprite,omitempty"`
}

// StatsView это DTO характеристик юнита.
type StatsView struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	AP     int  `json:"ap"`
	MaxAP  int  `json:"maxAp"`
	IsDead bool `json:"isDead"`
}

// LogEntry представляет одну запись в игровом логе (чате).
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, SPEECH, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
// Клиент шлет уже РАЗРЕШЕННЫЕ координаты сетки: трансляция пикселей
// в клетки - его забота.
type ClientCommand struct {
	// Token ID сессии. Обязателен только для первого сообщения.
	Token string `json:"token,omitempty"`

	// Action название действия: SELECT, CLICK, END_TURN, INIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными. Структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// SelectPayload используется для явного выбора юнита отряда (SELECT).
type SelectPayload struct {
	Index int `json:"index"` // индекс в дружественном отряде
}

// PositionPayload используется для клика по клетке (CLICK).
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}
