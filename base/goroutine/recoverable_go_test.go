package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	ev := <-RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("panic")
		},
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	assert.Equal(t, []string{
		"run task",
		"after recovered",
		"panic",
	}, res)
	assert.Equal(t, "panic", ev.Panic)
	assert.NotEmpty(t, ev.Stack)
}

func TestRecoverableGoWithoutPanic(t *testing.T) {
	done := false
	ev, ok := <-RecoverableGo(func() { done = true })
	assert.False(t, ok)
	assert.Nil(t, ev)
	assert.True(t, done)
}

func TestRun(t *testing.T) {
	assert.Nil(t, Run(func() {}))
	ev := Run(func() { panic("boom") })
	if assert.NotNil(t, ev) {
		assert.Equal(t, "boom", ev.Panic)
	}
}
