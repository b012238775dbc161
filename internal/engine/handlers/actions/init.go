package actions

import (
	"tactics-server/internal/engine/handlers"
)

// HandleInit - первое сообщение сессии, триггер начальной отрисовки
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Msg: "Отряд готов. Командуйте.", MsgType: "INFO"}, nil
}
