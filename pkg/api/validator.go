package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p SelectPayload) Validate() error {
	if p.Index < 0 {
		return errors.New("unit index cannot be negative")
	}
	return nil
}

// PositionPayload валидатора не имеет намеренно: клик по любой
// координате безопасен - вне сетки и мимо подсветки он просто no-op.
