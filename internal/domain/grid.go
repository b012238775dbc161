package domain

// Grid - пространственное разбиение карты. Размеры неизменны,
// клетки создаются один раз на весь уровень.
//
// Конвенция границ единая для всех методов: запрос вне сетки
// НИКОГДА не паникует, а возвращает nil / false / пустой результат.
type Grid struct {
	Width  int
	Height int

	cells [][]*Cell
}

// NewGrid строит сетку. collides - предикат местности "тайл (x,y)
// блокирует движение"; он запекается в каждую клетку.
func NewGrid(width, height int, collides func(x, y int) bool) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([][]*Cell, height),
	}
	for y := 0; y < height; y++ {
		g.cells[y] = make([]*Cell, width)
		for x := 0; x < width; x++ {
			cx, cy := x, y // захват копий для замыкания
			var pred func() bool
			if collides != nil {
				pred = func() bool { return collides(cx, cy) }
			}
			g.cells[y][x] = NewCell(x, y, pred)
		}
	}
	return g
}

// IsOnGrid проверяет границы
func (g *Grid) IsOnGrid(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Cell возвращает клетку или nil вне сетки
func (g *Grid) Cell(x, y int) *Cell {
	if !g.IsOnGrid(x, y) {
		return nil
	}
	return g.cells[y][x]
}

// IsPathable - false вне сетки, иначе проходимость самой клетки
func (g *Grid) IsPathable(x, y int) bool {
	c := g.Cell(x, y)
	if c == nil {
		return false
	}
	return c.IsPathable()
}

// AttackableUnit возвращает первого (в порядке добавления в клетку)
// жильца, которого attacker вправе атаковать по правилу фракций.
// Вне сетки и при отсутствии целей - nil.
func (g *Grid) AttackableUnit(attacker *Unit, x, y int) *Unit {
	c := g.Cell(x, y)
	if c == nil {
		return nil
	}
	for _, u := range c.occupants {
		if u.IsDead() {
			continue
		}
		if attacker.Control.CanAttack(u.Control) {
			return u
		}
	}
	return nil
}

// AdjacentCells возвращает все клетки в квадрате радиуса radius
// (по Чебышеву, включительно) вокруг center, существующие на сетке.
// Порядок строго построчный (y внешний, x внутренний) - от него
// зависят детерминизм генерации действий и подсветка.
func (g *Grid) AdjacentCells(center Position, radius int) []*Cell {
	var cells []*Cell
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			if c := g.Cell(x, y); c != nil {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// PathableCells - фильтр AdjacentCells по проходимости
func (g *Grid) PathableCells(center Position, radius int) []*Cell {
	var cells []*Cell
	for _, c := range g.AdjacentCells(center, radius) {
		if c.IsPathable() {
			cells = append(cells, c)
		}
	}
	return cells
}

// PlaceUnit регистрирует юнита в клетке, соответствующей его позиции.
// Вызывается один раз при спавне.
func (g *Grid) PlaceUnit(u *Unit) bool {
	c := g.Cell(u.Pos.X, u.Pos.Y)
	if c == nil {
		return false
	}
	c.AddUnit(u)
	return true
}

// MoveImmediate - механический примитив перемещения: выписать из старой
// клетки, вписать в новую, обновить позицию и направление, списать очко.
// Легальность хода (проходимость, дальность) проверяет ВЫЗЫВАЮЩИЙ -
// генератор действий или контроллер хода. Здесь проверок нет.
//
// Возвращает false, только если у боевого юнита не хватило очков;
// в этом случае состояние не меняется.
func (g *Grid) MoveImmediate(u *Unit, to *Cell) bool {
	if to == nil {
		return false
	}
	if u.Stats != nil && !u.Stats.UseActionPoints(APCostMove) {
		return false
	}

	if from := g.Cell(u.Pos.X, u.Pos.Y); from != nil {
		from.RemoveUnit(u)
	}

	u.Facing = u.Pos.FacingTo(to.Pos())
	u.Pos = to.Pos()
	to.AddUnit(u)
	return true
}

// RemoveUnit выписывает юнита из его клетки (смерть, деспавн)
func (g *Grid) RemoveUnit(u *Unit) {
	if c := g.Cell(u.Pos.X, u.Pos.Y); c != nil {
		c.RemoveUnit(u)
	}
}
