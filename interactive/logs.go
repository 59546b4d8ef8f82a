package interactive

import (
	"sync"

	"github.com/joshyorko/heron/common"
)

// heldLogs keeps log lines away from the alternate screen while the
// program runs and writes them out once it is gone.
type heldLogs struct {
	mu    sync.Mutex
	lines []string
}

func holdLogs() *heldLogs {
	held := &heldLogs{}
	common.SetLogInterceptor(held.keep)
	return held
}

func (it *heldLogs) keep(message string) bool {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.lines = append(it.lines, message)
	return true
}

func (it *heldLogs) release() {
	common.ClearLogInterceptor()
	it.mu.Lock()
	lines := it.lines
	it.lines = nil
	it.mu.Unlock()
	common.Replay(lines...)
}
