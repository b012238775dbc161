package domain

import "encoding/json"

// InternalCommand - команда внутри движка (после парсинга ActionType)
type InternalCommand struct {
	Action  ActionType
	Token   string // ID сессии, приславшей команду
	Payload json.RawMessage
}
