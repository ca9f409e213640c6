package logger

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventOperationReceived EventType = "operation_received"
	EventOperationRecorded EventType = "operation_recorded"
	EventOperationRejected EventType = "operation_rejected"
	EventDetectionStarted  EventType = "detection_started"
	EventDetectionDone     EventType = "detection_completed"
	EventAlertRaised       EventType = "alert_raised"
	EventCardStatusChanged EventType = "card_status_changed"
	EventCardIssued        EventType = "card_issued"
	EventKafkaSent         EventType = "kafka_sent"
	EventKafkaReceived     EventType = "kafka_received"
	EventRedisSaved        EventType = "redis_saved"
	EventDBUpdated         EventType = "db_updated"
)

// Компоненты, в которых происходят события
const (
	ComponentAPI      = "api"
	ComponentGRPC     = "grpc"
	ComponentKafka    = "kafka"
	ComponentRedis    = "redis"
	ComponentSQLite   = "sqlite"
	ComponentPipeline = "pipeline"
)

type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Service   string                 `json:"service"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Component string                 `json:"component"`
}

// EventLogger хранит последние maxSize событий в памяти
type EventLogger struct {
	events  []Event
	mu      sync.RWMutex
	maxSize int
}

var globalLogger *EventLogger

func init() {
	globalLogger = NewEventLogger(1000) // Храним последние 1000 событий
}

func NewEventLogger(maxSize int) *EventLogger {
	return &EventLogger{
		events:  make([]Event, 0, maxSize),
		maxSize: maxSize,
	}
}

func LogEvent(eventType EventType, service string, component string, data map[string]interface{}) {
	globalLogger.LogEvent(eventType, service, component, data)
}

func (el *EventLogger) LogEvent(eventType EventType, service string, component string, data map[string]interface{}) {
	el.mu.Lock()
	defer el.mu.Unlock()

	el.events = append(el.events, Event{
		ID:        generateID(),
		Type:      eventType,
		Service:   service,
		Component: component,
		Timestamp: time.Now(),
		Data:      data,
	})

	if len(el.events) > el.maxSize {
		el.events = el.events[len(el.events)-el.maxSize:]
	}
}

func GetEvents(limit int) []Event {
	return globalLogger.GetEvents(limit)
}

// GetEvents возвращает последние limit событий (limit <= 0 - все)
func (el *EventLogger) GetEvents(limit int) []Event {
	el.mu.RLock()
	defer el.mu.RUnlock()

	return lastN(el.events, limit)
}

func GetEventsByType(eventType EventType, limit int) []Event {
	return globalLogger.GetEventsByType(eventType, limit)
}

// GetEventsByType возвращает последние limit событий указанного типа
func (el *EventLogger) GetEventsByType(eventType EventType, limit int) []Event {
	el.mu.RLock()
	defer el.mu.RUnlock()

	filtered := make([]Event, 0)
	for _, event := range el.events {
		if event.Type == eventType {
			filtered = append(filtered, event)
		}
	}
	return lastN(filtered, limit)
}

func lastN(events []Event, limit int) []Event {
	if limit <= 0 || limit > len(events) {
		limit = len(events)
	}
	result := make([]Event, limit)
	copy(result, events[len(events)-limit:])
	return result
}

func GetStats() map[string]interface{} {
	return globalLogger.GetStats()
}

func (el *EventLogger) GetStats() map[string]interface{} {
	el.mu.RLock()
	defer el.mu.RUnlock()

	componentStats := make(map[string]int)
	serviceStats := make(map[string]int)
	typeStats := make(map[string]int)

	for _, event := range el.events {
		componentStats[event.Component]++
		serviceStats[event.Service]++
		typeStats[string(event.Type)]++
	}

	return map[string]interface{}{
		"total_events": len(el.events),
		"components":   componentStats,
		"services":     serviceStats,
		"event_types":  typeStats,
	}
}

func generateID() string {
	return "evt_" + uuid.New().String()
}

func (e Event) MarshalJSON() ([]byte, error) {
	type Alias Event
	return json.Marshal(&struct {
		Timestamp string `json:"timestamp"`
		*Alias
	}{
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Alias:     (*Alias)(&e),
	})
}
