package pubsub

import (
	"sync"
)

// Event — единица доставки подписчику.
type Event struct {
	Topic   string
	Kind    string
	Payload interface{}
}

// Hub — реестр подписчиков по темам. Доставка at-most-once: отправка
// неблокирующая, при переполненном буфере подписчика событие отбрасывается.
// Никакого глобального синглтона, жизненный цикл принадлежит приложению.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*Subscription]struct{}
	closed bool
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe регистрирует подписчика на набор тем. Подписчик обязан вызвать
// Close при отключении.
func (h *Hub) Subscribe(buffer int, topics ...string) *Subscription {
	if buffer <= 0 {
		buffer = 1
	}

	sub := &Subscription{
		hub:    h,
		topics: topics,
		ch:     make(chan Event, buffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(sub.ch)
		return sub
	}

	for _, topic := range topics {
		set, ok := h.subs[topic]
		if !ok {
			set = make(map[*Subscription]struct{})
			h.subs[topic] = set
		}
		set[sub] = struct{}{}
	}

	return sub
}

// Publish рассылает событие подписчикам темы. Возвращает количество
// доставленных и отброшенных сообщений. Нет подписчиков — событие молча
// пропадает.
func (h *Hub) Publish(topic, kind string, payload interface{}) (delivered, dropped int) {
	event := Event{
		Topic:   topic,
		Kind:    kind,
		Payload: payload,
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[topic] {
		select {
		case sub.ch <- event:
			delivered++
		default:
			dropped++
		}
	}

	return delivered, dropped
}

// Close закрывает все подписки; последующие Subscribe получают закрытый канал.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	seen := make(map[*Subscription]struct{})
	for _, set := range h.subs {
		for sub := range set {
			seen[sub] = struct{}{}
		}
	}
	for sub := range seen {
		close(sub.ch)
	}
	h.subs = make(map[string]map[*Subscription]struct{})
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	removed := false
	for _, topic := range sub.topics {
		if set, ok := h.subs[topic]; ok {
			if _, member := set[sub]; member {
				delete(set, sub)
				removed = true
			}
			if len(set) == 0 {
				delete(h.subs, topic)
			}
		}
	}

	if removed {
		close(sub.ch)
	}
}

type Subscription struct {
	hub    *Hub
	topics []string
	ch     chan Event
	once   sync.Once
}

// Events — канал входящих событий; закрывается при Close подписки или хаба.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Topics возвращает темы подписки.
func (s *Subscription) Topics() []string {
	out := make([]string, len(s.topics))
	copy(out, s.topics)
	return out
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
	})
}
