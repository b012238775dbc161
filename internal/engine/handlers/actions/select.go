package actions

import (
	"tactics-server/internal/engine/handlers"
	"tactics-server/pkg/api"
)

// HandleSelect выбирает юнита отряда по индексу.
// Индекс за пределами ростера контроллер молча игнорирует.
func HandleSelect(ctx handlers.Context, p api.SelectPayload) (handlers.Result, error) {
	ctx.Game.SelectPlayer(p.Index)
	return handlers.EmptyResult(), nil
}
