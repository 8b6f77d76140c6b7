package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "foo", "bar")
	ts.Equal("bar", Value(ctx, "foo"))
	ts.Nil(Value(bg, "foo"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"a": "b",
		"c": "d",
	})
	ts.Equal("b", Value(ctx, "a"))
	ts.Equal("d", Value(ctx, "c"))
}

func (ts *testsuite) TestRequestID() {
	ctx := WithRequestID(Background(), "req-1")
	ts.Equal("req-1", RequestID(ctx))
	ts.Equal("", RequestID(Background()))
}

func (ts *testsuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	defer cancel()
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	ts.False(after100Ms(ctx))
}

func (ts *testsuite) TestTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	ts.False(after100Ms(ctx))
	ts.Equal(context.DeadlineExceeded, ctx.Err())
}

func (ts *testsuite) TestDetach() {
	parent, cancel := WithCancel(WithRequestID(Background(), "req-2"))
	detached := Detach(parent)
	cancel()
	ts.Error(parent.Err())
	ts.NoError(detached.Err())
	ts.Equal("req-2", RequestID(detached))
	ts.True(after100Ms(detached))
}

func after100Ms(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(100 * time.Millisecond):
		return true
	}
}
