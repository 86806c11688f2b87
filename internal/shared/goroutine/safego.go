// Package goroutine launches background work that must not crash the server.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/GithubESPI/dotationsFrontend/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and logs a panic with its stack instead of propagating it.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
