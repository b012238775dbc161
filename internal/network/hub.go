package network

import (
	"sync"

	"tactics-server/pkg/api"
)

// Broadcaster занимается только рассылкой уведомлений подписчикам.
// Ядро шлет и забывает: возвращаемых значений от презентационного
// слоя оно не потребляет.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: SessionID -> Личный канал
	subscribers map[string]chan api.ServerNotice
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerNotice),
	}
}

// Register создает личный канал для сессии
func (b *Broadcaster) Register(sessionID string) chan api.ServerNotice {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerNotice, 100)
	b.subscribers[sessionID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
	}
}

// SendTo отправляет уведомление конкретной сессии (Unicast)
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerNotice) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		select {
		case ch <- msg:
		default:
			// Канал переполнен: уведомления не критичны, теряем
		}
	}
}

// Broadcast отправляет всем (командир + зрители)
func (b *Broadcaster) Broadcast(msg api.ServerNotice) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}
