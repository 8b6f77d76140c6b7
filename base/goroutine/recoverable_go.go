package goroutine

import (
	"runtime/debug"

	"github.com/warrantify/goapi/base/log"
)

var (
	logger = log.Log()
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type RecoverableGoOptions struct {
	afterRecovered func(panic interface{}, stack []byte)
}

type RecoverableGoOptionsFunc = func(*RecoverableGoOptions)

func WithAfterRecovered(f func(panic interface{}, stack []byte)) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) {
		options.afterRecovered = f
	}
}

// RecoverableGo runs f in a new goroutine. The returned channel yields a
// PanicEvent if f panicked, or is closed when f returns normally.
func RecoverableGo(f func(), fns ...RecoverableGoOptionsFunc) chan *PanicEvent {
	panicChan := make(chan *PanicEvent, 1)
	go func() {
		if ev := Run(f, fns...); ev != nil {
			panicChan <- ev
			return
		}
		close(panicChan)
	}()
	return panicChan
}

// Run calls f on the current goroutine and converts a panic into a PanicEvent.
func Run(f func(), fns ...RecoverableGoOptionsFunc) (ev *PanicEvent) {
	opts := RecoverableGoOptions{}
	for _, fn := range fns {
		fn(&opts)
	}

	defer func() {
		if p := recover(); p != nil {
			stack := debug.Stack()

			logger.WithFields(log.Fields{
				"err":   p,
				"stack": string(stack),
			}).Error("panic")

			if opts.afterRecovered != nil {
				opts.afterRecovered(p, stack)
			}

			ev = &PanicEvent{p, stack}
		}
	}()

	f()
	return nil
}
