package safe

import (
	"runtime"

	"go.uber.org/zap"
)

// Go runs fn on a new goroutine and logs a recovered panic with its stack
// instead of taking the process down. The HTTP listeners start through it.
func Go(fn func()) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				stack := make([]byte, 2048)
				n := runtime.Stack(stack, false)
				zap.S().Errorf("goroutine panic: %v\n%s", err, stack[:n])
			}
		}()
		fn()
	}()
}
