// Package scenario строит уровни: план описывает местность и слой
// объектов в той же форме записей, которую отдает загрузчик карт.
// Используется встроенным демо-уровнем и тестами движка.
package scenario

import (
	"tactics-server/internal/domain"
)

// Plan предоставляет fluent API для описания уровня
type Plan struct {
	width   int
	height  int
	walls   map[domain.Position]bool
	records []domain.SpawnRecord
}

// New создает пустой план уровня заданного размера
func New(width, height int) *Plan {
	return &Plan{
		width:  width,
		height: height,
		walls:  make(map[domain.Position]bool),
	}
}

// Wall помечает тайл непроходимым
func (p *Plan) Wall(x, y int) *Plan {
	p.walls[domain.Position{X: x, Y: y}] = true
	return p
}

// WallRect помечает прямоугольник тайлов непроходимым (включительно)
func (p *Plan) WallRect(x0, y0, x1, y1 int) *Plan {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p.Wall(x, y)
		}
	}
	return p
}

// SpawnPC добавляет точку спавна бойца отряда
func (p *Plan) SpawnPC(name string, x, y, hp, ap int) *Plan {
	p.records = append(p.records, domain.SpawnRecord{
		X: x, Y: y,
		Kind: domain.SpawnPC.String(),
		Name: name, HP: hp, AP: ap,
	})
	return p
}

// SpawnHostile добавляет точку спавна противника
func (p *Plan) SpawnHostile(name string, x, y, hp, ap int) *Plan {
	p.records = append(p.records, domain.SpawnRecord{
		X: x, Y: y,
		Kind: domain.SpawnHostile.String(),
		Name: name, HP: hp, AP: ap,
	})
	return p
}

// Speak добавляет диалоговый триггер на клетку
func (p *Plan) Speak(x, y int, text string) *Plan {
	p.records = append(p.records, domain.SpawnRecord{
		X: x, Y: y,
		Kind:      domain.SpawnGridEvent.String(),
		EventType: domain.GridEventSpeak.String(),
		Text:      text,
	})
	return p
}

// Win добавляет триггер победы на клетку
func (p *Plan) Win(x, y int, text string) *Plan {
	p.records = append(p.records, domain.SpawnRecord{
		X: x, Y: y,
		Kind:      domain.SpawnGridEvent.String(),
		EventType: domain.GridEventWin.String(),
		Text:      text,
	})
	return p
}

// Size возвращает размеры уровня
func (p *Plan) Size() (int, int) {
	return p.width, p.height
}

// Records возвращает слой объектов в форме записей карты
func (p *Plan) Records() []domain.SpawnRecord {
	return p.records
}

// Terrain возвращает предикат "тайл блокирует движение"
func (p *Plan) Terrain() func(x, y int) bool {
	return func(x, y int) bool {
		return p.walls[domain.Position{X: x, Y: y}]
	}
}
