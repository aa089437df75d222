package game

import "grid-snake/game/types"

type EventType int

const (
	EventLifeStarted EventType = iota
	EventFoodEaten
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventLifeStarted:
		return "life_started"
	case EventFoodEaten:
		return "food_eaten"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type Event struct {
	Type   EventType
	LifeID string
	Score  int
	Cell   types.Point // food cell for EventFoodEaten, fatal cell for EventGameOver
	Length int
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
