package domain

import "github.com/google/uuid"

// --- КОМПОНЕНТЫ ---

// RenderComponent - Визуализация (Клиент)
// Ядро эти данные не интерпретирует, только передает.
type RenderComponent struct {
	Symbol string `json:"symbol"` // Символ отображения ("@", "g")
	Color  string `json:"color"`
	Sprite string `json:"sprite,omitempty"` // Имя спрайта в атласе клиента
}

// StatsComponent - Характеристики и ресурсы хода.
// Инварианты: HP ∈ [0, MaxHP], AP ∈ [0, MaxAP]. Методы в stats.go.
type StatsComponent struct {
	HP     int  `json:"hp"`
	MaxHP  int  `json:"maxHp"`
	AP     int  `json:"ap"`
	MaxAP  int  `json:"maxAp"`
	IsDead bool `json:"isDead"`
}

// --- СУЩНОСТЬ ---

// Unit - любая сущность на сетке. Компоненты-указатели опциональны:
// nil Stats означает чисто логический юнит (маркер), у него нет ни хода,
// ни здоровья, и он никогда не блокирует движение.
type Unit struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Name    string  `json:"name"`
	Control Control `json:"-"`

	Pos Position `json:"pos"`

	// Visible определяет, блокирует ли юнит движение.
	// Невидимые юниты (триггеры, маркеры) проходимы.
	Visible bool `json:"visible"`

	// Facing - направление последнего перемещения (радианы).
	// Используется клиентом для поворота спрайта, ядро его только пишет.
	Facing float64 `json:"facing"`

	Render *RenderComponent `json:"render,omitempty"`
	Stats  *StatsComponent  `json:"stats,omitempty"`
}

// NewCharacter создает боевого юнита с полными ресурсами.
func NewCharacter(name string, control Control, pos Position, maxHP, maxAP int) *Unit {
	if maxHP <= 0 {
		maxHP = DefaultMaxHP
	}
	if maxAP <= 0 {
		maxAP = DefaultMaxAP
	}

	unitType := UnitTypeCharacter
	if control == ControlHostile {
		unitType = UnitTypeHostile
	}

	return &Unit{
		ID:      uuid.NewString(),
		Type:    unitType,
		Name:    name,
		Control: control,
		Pos:     pos,
		Visible: true,
		Stats: &StatsComponent{
			HP: maxHP, MaxHP: maxHP,
			AP: maxAP, MaxAP: maxAP,
		},
	}
}

// IsDead возвращает true только для боевых юнитов с нулевым здоровьем.
// Маркеры (без Stats) бессмертны по определению.
func (u *Unit) IsDead() bool {
	return u.Stats != nil && u.Stats.IsDead
}

// BlocksMovement - занимает ли юнит клетку для прохода.
// Трупы и невидимые сущности проходимы.
func (u *Unit) BlocksMovement() bool {
	return u.Visible && u.Stats != nil && !u.Stats.IsDead
}
