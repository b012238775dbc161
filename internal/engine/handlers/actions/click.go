package actions

import (
	"tactics-server/internal/engine/handlers"
	"tactics-server/pkg/api"
)

// HandleClick передает контроллеру клик по клетке. Координаты уже
// разрешены клиентом в клетки сетки. Клик мимо выбора и мимо
// доступных действий - no-op, поэтому ошибок здесь не бывает.
func HandleClick(ctx handlers.Context, p api.PositionPayload) (handlers.Result, error) {
	ctx.Game.HandleClick(p.X, p.Y)
	return handlers.EmptyResult(), nil
}
