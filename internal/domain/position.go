package domain

import "math"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo возвращает точное евклидово расстояние до другой точки (float)
func (p Position) DistanceTo(other Position) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ChebyshevTo возвращает "шахматное" расстояние (максимум модулей по осям).
// Диагональный сосед находится на расстоянии 1.
func (p Position) ChebyshevTo(other Position) int {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ)
func (p Position) IsAdjacent(other Position) bool {
	return p != other && p.ChebyshevTo(other) <= 1
}

// Shift возвращает новую позицию со смещением (не меняя текущую)
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// FacingTo возвращает угол (в радианах) от текущей точки к цели.
// Ядру он не нужен - это косметика для клиентской анимации поворота.
func (p Position) FacingTo(other Position) float64 {
	return math.Atan2(float64(other.Y-p.Y), float64(other.X-p.X))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
