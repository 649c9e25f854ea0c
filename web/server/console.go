package server

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// DefaultConsoleSize is how many messages the server keeps for /api/console
const DefaultConsoleSize = 200

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// Console keeps the most recent messages, dropping the oldest once full
type Console struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	capacity int
}

func NewConsole(capacity int) *Console {
	return &Console{capacity: capacity}
}

// Add appends msg, evicting the oldest message when at capacity
func (c *Console) Add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity <= 0 {
		return
	}
	if len(c.messages) == c.capacity {
		copy(c.messages, c.messages[1:])
		c.messages = c.messages[:len(c.messages)-1]
	}
	c.messages = append(c.messages, msg)
}

// Messages returns a copy of the stored messages, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]ConsoleMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// WebLogger implements core.Logger by writing to the server log and the console
type WebLogger struct {
	renderID string
	console  *Console
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, console *Console) core.Logger {
	return &WebLogger{
		renderID: renderID,
		console:  console,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to the server log
	log.Printf("[%s] %s", wl.renderID, strings.TrimRight(message, "\n"))

	if wl.console != nil {
		wl.console.Add(ConsoleMessage{
			RenderID:  wl.renderID,
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		})
	}
}
