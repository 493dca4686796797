package engine

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestLoopRunsPostsAndFrames(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(time.Millisecond, zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	posted := make(chan struct{})
	if !l.Post(func() { close(posted) }) {
		t.Fatal("Post rejected on a running loop")
	}
	<-posted

	framed := make(chan struct{})
	l.Post(func() {
		l.RequestFrame(func(time.Time) { close(framed) })
	})
	select {
	case <-framed:
	case <-time.After(time.Second):
		t.Fatal("frame never ran")
	}

	cancel()
	if err := <-errCh; err != nil {
		t.Errorf("Run returned %v", err)
	}
	<-l.Done()

	if l.Post(func() {}) {
		t.Error("Post accepted after loop exit")
	}
}
