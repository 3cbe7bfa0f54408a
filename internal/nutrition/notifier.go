package nutrition

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// Notifier receives user-facing failure messages from the store.
// Implementations must not block; the store calls Notify while holding
// no locks but inside the mutation path.
type Notifier interface {
	Notify(message string)
}

// LogNotifier writes notifications to the service log only.
type LogNotifier struct{}

func (LogNotifier) Notify(message string) {
	log.Warnf("notification: %s", message)
}

const memoryNotifierCap = 32

// MemoryNotifier keeps the most recent notifications in memory so the
// local HTTP surface can hand them to the shell. Oldest entries are
// dropped once the buffer is full.
type MemoryNotifier struct {
	mu       sync.Mutex
	messages []string
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{}
}

func (n *MemoryNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.messages) >= memoryNotifierCap {
		n.messages = n.messages[1:]
	}
	n.messages = append(n.messages, message)
}

// Drain returns the buffered notifications and clears the buffer.
func (n *MemoryNotifier) Drain() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	drained := n.messages
	n.messages = nil
	return drained
}
