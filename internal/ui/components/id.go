package components

import (
	"fmt"
	"sync"
)

var (
	idMutex   sync.Mutex
	idCounter int
)

// nextID generates a component identifier that is unique within the process.
// Callers that do not supply an explicit identifier get one of these, which
// guarantees sibling controls in the same render tree never collide.
func nextID(prefix string) string {
	idMutex.Lock()
	defer idMutex.Unlock()
	idCounter++
	return fmt.Sprintf("%s-%d", prefix, idCounter)
}
