package service

import (
	"sync"
	"time"
)

type NotificationLevel string

const (
	NotificationLevel_Info  NotificationLevel = "info"
	NotificationLevel_Warn  NotificationLevel = "warn"
	NotificationLevel_Error NotificationLevel = "error"
)

type Notification struct {
	Level   NotificationLevel
	Message string
	At      time.Time
}

// NotificationService is an explicit publish/subscribe registry. it used to
// be tempting to make this a package-level singleton - constructing it once
// per app instance instead keeps callers testable and the coupling visible.
type NotificationService interface {
	Subscribe() (<-chan Notification, func())
	Publish(level NotificationLevel, message string)
}

func NewNotificationService() NotificationService {
	return &notificationServiceHandler{
		subscribers: map[int]chan Notification{},
	}
}

type notificationServiceHandler struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]chan Notification
}

func (h *notificationServiceHandler) Subscribe() (<-chan Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Notification, 16)
	h.subscribers[id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if ch, ok := h.subscribers[id]; ok {
			delete(h.subscribers, id)
			close(ch)
		}
	}
	return ch, unsubscribe
}

func (h *notificationServiceHandler) Publish(level NotificationLevel, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := Notification{
		Level:   level,
		Message: message,
		At:      time.Now().UTC(),
	}
	for _, ch := range h.subscribers {
		select {
		case ch <- n:
		default:
			// slow subscriber - drop rather than block the publisher
		}
	}
}
