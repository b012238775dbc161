package actions

import (
	"tactics-server/internal/engine/handlers"
)

// HandleEndTurn завершает фазу игрока. Фаза AI отрабатывает синхронно
// внутри вызова; следующая команда увидит уже новую фазу игрока.
func HandleEndTurn(ctx handlers.Context) (handlers.Result, error) {
	ctx.Game.EndTurn()
	return handlers.Result{Msg: "Ход передан.", MsgType: "INFO"}, nil
}
