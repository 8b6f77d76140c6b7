package ctx

import (
	"context"
	"time"

	"github.com/warrantify/goapi/base/log"
)

type Ctx struct {
	context.Context
	log.Logger
}

type ctxKey string

const requestIDKey = ctxKey("requestID")

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, ctxKey(key), val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func Value(c Ctx, key string) interface{} {
	return c.Context.Value(ctxKey(key))
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

// WithRequestID tags both the context and its logger with the request id
func WithRequestID(parent Ctx, id string) Ctx {
	return WithValue(parent, string(requestIDKey), id)
}

func RequestID(c Ctx) string {
	id, _ := c.Context.Value(requestIDKey).(string)
	return id
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

// Detach keeps the logger and values of parent but drops its deadline and
// cancellation, for work that outlives the request that scheduled it.
func Detach(parent Ctx) Ctx {
	return Ctx{
		Context: detached{parent.Context},
		Logger:  parent.Logger,
	}
}

type detached struct {
	parent context.Context
}

func (detached) Deadline() (time.Time, bool) { return time.Time{}, false }

func (detached) Done() <-chan struct{} { return nil }

func (detached) Err() error { return nil }

func (d detached) Value(key interface{}) interface{} { return d.parent.Value(key) }
