package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/rtview/go-interactive-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Seq       int       `json:"seq"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// consoleBufferSize caps how many messages the console retains
const consoleBufferSize = 200

// ConsoleLog implements core.Logger by retaining recent messages for
// the web client to poll, in addition to writing them to stdout
type ConsoleLog struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	nextSeq  int
}

// NewConsoleLog creates a new console log
func NewConsoleLog() *ConsoleLog {
	return &ConsoleLog{}
}

// Printf implements the core.Logger interface
func (cl *ConsoleLog) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Print(message)

	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.messages = append(cl.messages, ConsoleMessage{
		Seq:       cl.nextSeq,
		Message:   message,
		Timestamp: time.Now(),
	})
	cl.nextSeq++
	if len(cl.messages) > consoleBufferSize {
		cl.messages = cl.messages[len(cl.messages)-consoleBufferSize:]
	}
}

// Since returns all retained messages with a sequence number of at
// least seq
func (cl *ConsoleLog) Since(seq int) []ConsoleMessage {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	out := make([]ConsoleMessage, 0, len(cl.messages))
	for _, m := range cl.messages {
		if m.Seq >= seq {
			out = append(out, m)
		}
	}
	return out
}

var _ core.Logger = (*ConsoleLog)(nil)
