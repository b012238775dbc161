package engine

import "tactics-server/internal/domain"

// Config хранит параметры запуска движка
type Config struct {
	// VisionRadius - радиус обнаружения целей враждебным AI (по Чебышеву)
	VisionRadius int

	// CommandBuffer - емкость канала входящих команд
	CommandBuffer int
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		VisionRadius:  domain.AIVisionRadius,
		CommandBuffer: 100,
	}
}
