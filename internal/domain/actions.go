package domain

import "strings"

// ActionType - Внутренний числовой идентификатор команды
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionSelect
	ActionClick
	ActionEndTurn
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":     ActionInit,
	"SELECT":   ActionSelect,
	"CLICK":    ActionClick,
	"END_TURN": ActionEndTurn,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:    "INIT",
	ActionSelect:  "SELECT",
	ActionClick:   "CLICK",
	ActionEndTurn: "END_TURN",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// --- ЛЕГАЛЬНЫЕ ДЕЙСТВИЯ ЮНИТА ---

// UnitActionKind - вид сгенерированного действия
type UnitActionKind uint8

const (
	UnitActionMove UnitActionKind = iota
	UnitActionAttack
)

func (k UnitActionKind) String() string {
	if k == UnitActionAttack {
		return "ATTACK"
	}
	return "MOVE"
}

// UnitAction - одно легальное действие, доступное юниту в этот ход.
// Неизменяемое значение: набор пересчитывается заново при каждом
// выборе юнита и после каждой траты очков.
type UnitAction struct {
	Kind   UnitActionKind
	Pos    Position
	Target *Unit // только для атаки
}
