package handlers

import (
	"encoding/json"
)

// TurnController описывает операции контроллера хода, доступные командам.
// GameService неявно реализует этот интерфейс.
type TurnController interface {
	SelectPlayer(index int)
	HandleClick(x, y int)
	EndTurn()
}

// Context передает хендлеру доступ к движку
type Context struct {
	Game TurnController
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, COMBAT, SPEECH, ERROR)
}

// HandlerFunc - это контракт для любой команды (SELECT, CLICK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
