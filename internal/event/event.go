// internal/event/event.go
package event

// EventType - имя, под которым публикуется событие.
type EventType string

// Event - одно уведомление. Data содержит одну из структур данных
// из types.go.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener получает события, на которые подписан.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc превращает обычную функцию в Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher синхронно раздает события слушателям в порядке подписки.
// Используется только из потока симуляции.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher создает пустой диспетчер.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener сразу на несколько типов событий.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe снимает первую подписку listener на eventType.
// Слушатели должны быть сравнимы; ListenerFunc снять нельзя.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch доставляет событие всем подписчикам.
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}
