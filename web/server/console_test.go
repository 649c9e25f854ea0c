package server

import (
	"fmt"
	"testing"
	"time"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	console := NewConsole(10)
	logger := NewWebLogger("test-render-123", console)

	testMessage := "Test log message"
	logger.Printf("%s\n", testMessage)

	messages := console.Messages()
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	msg := messages[0]
	if msg.Message != testMessage+"\n" {
		t.Errorf("Expected message '%s', got '%s'", testMessage+"\n", msg.Message)
	}
	if msg.Level != "info" {
		t.Errorf("Expected level 'info', got '%s'", msg.Level)
	}
	if msg.RenderID != "test-render-123" {
		t.Errorf("Expected render ID 'test-render-123', got '%s'", msg.RenderID)
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
	}
}

func TestWebLogger_FormattedMessages(t *testing.T) {
	console := NewConsole(10)
	logger := NewWebLogger("test-render-format", console)

	logger.Printf("Rendering %dx%d, %d samples per pixel\n", 400, 225, 20)

	expected := "Rendering 400x225, 20 samples per pixel\n"
	if got := console.Messages()[0].Message; got != expected {
		t.Errorf("Expected formatted message '%s', got '%s'", expected, got)
	}
}

func TestWebLogger_NilConsole(t *testing.T) {
	// This should not panic
	logger := NewWebLogger("test-render-nil", nil)
	logger.Printf("Test message with nil console\n")
}

func TestConsole_EvictsOldest(t *testing.T) {
	console := NewConsole(3)
	for i := 1; i <= 5; i++ {
		console.Add(ConsoleMessage{Message: fmt.Sprintf("Message %d", i)})
	}

	messages := console.Messages()
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	for i, expected := range []string{"Message 3", "Message 4", "Message 5"} {
		if messages[i].Message != expected {
			t.Errorf("Message %d: expected '%s', got '%s'", i, expected, messages[i].Message)
		}
	}

	// Returned slice is a copy
	messages[0].Message = "changed"
	if console.Messages()[0].Message != "Message 3" {
		t.Error("Messages should return a copy")
	}
}

func TestConsole_ConcurrentAdds(t *testing.T) {
	console := NewConsole(50)
	done := make(chan struct{})
	for w := 0; w < 4; w++ {
		go func(w int) {
			logger := NewWebLogger(fmt.Sprintf("render-%d", w), console)
			for i := 0; i < 100; i++ {
				logger.Printf("worker %d message %d\n", w, i)
			}
			done <- struct{}{}
		}(w)
	}
	for w := 0; w < 4; w++ {
		<-done
	}

	if n := len(console.Messages()); n != 50 {
		t.Errorf("Expected console to hold 50 messages, got %d", n)
	}
}
