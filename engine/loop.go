package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/ballpit/parameter"
)

// Loop owns the single goroutine every simulation callback runs on
// Frames come from a ticker; host events from other goroutines enter through Post
type Loop struct {
	*FrameQueue

	tp       TimeProvider
	interval time.Duration
	posts    chan func()
	done     chan struct{}
	logger   *zap.Logger
}

// NewLoop creates a loop ticking at interval
func NewLoop(interval time.Duration, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	tp := NewMonotonicTimeProvider()
	return &Loop{
		FrameQueue: NewFrameQueue(tp),
		tp:         tp,
		interval:   interval,
		posts:      make(chan func(), parameter.PostQueueSize),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Post queues fn to run on the loop goroutine
// Returns false once the loop has exited
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.posts <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run blocks until ctx is canceled
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.logger.Debug("loop started", zap.Duration("interval", l.interval))
	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop stopped", zap.Error(ctx.Err()))
			return nil
		case fn := <-l.posts:
			fn()
		case <-ticker.C:
			l.Tick(l.tp.Now())
		}
	}
}

// Done is closed after Run returns
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
