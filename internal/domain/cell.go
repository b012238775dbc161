package domain

// Cell - одна клетка сетки. Создается один раз при построении мира
// и никогда не пересоздается; мутирует только список жильцов.
type Cell struct {
	X int
	Y int

	// collides - статическая геометрия тайла (стена, вода).
	// Предикат передается при конструировании и захватывает данные карты.
	collides func() bool

	// occupants хранится слайсом в порядке добавления. Порядок значим:
	// при нескольких кандидатах на атаку в одной клетке побеждает первый.
	occupants []*Unit
}

func NewCell(x, y int, collides func() bool) *Cell {
	if collides == nil {
		collides = func() bool { return false }
	}
	return &Cell{X: x, Y: y, collides: collides}
}

func (c *Cell) Pos() Position {
	return Position{X: c.X, Y: c.Y}
}

// Collides - блокирует ли клетку сама местность
func (c *Cell) Collides() bool {
	return c.collides()
}

// IsPathable - можно ли войти в клетку: местность свободна
// и ни один из жильцов не блокирует движение.
func (c *Cell) IsPathable() bool {
	if c.collides() {
		return false
	}
	for _, u := range c.occupants {
		if u.BlocksMovement() {
			return false
		}
	}
	return true
}

// AddUnit регистрирует юнита в клетке (в конец списка)
func (c *Cell) AddUnit(u *Unit) {
	c.occupants = append(c.occupants, u)
}

// RemoveUnit удаляет юнита из клетки. Сдвигаем хвост, а не меняем
// местами с последним: порядок вставки должен сохраняться.
func (c *Cell) RemoveUnit(u *Unit) {
	for i, other := range c.occupants {
		if other.ID == u.ID {
			c.occupants = append(c.occupants[:i], c.occupants[i+1:]...)
			return
		}
	}
}

// Occupants возвращает жильцов клетки в порядке добавления
func (c *Cell) Occupants() []*Unit {
	return c.occupants
}

// Contains проверяет, находится ли юнит в этой клетке
func (c *Cell) Contains(u *Unit) bool {
	for _, other := range c.occupants {
		if other.ID == u.ID {
			return true
		}
	}
	return false
}
