package keyboard_hook

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"keytap/keyboard"
)

const (
	DefaultQueueSize = 256

	stopRetryInterval = 10 * time.Millisecond
)

// Picker connects a Hook to listeners. The hook goroutine resolves each
// transition and hands the events to a queue; a processor goroutine drains
// the queue into the Dispatcher so listeners never stall the hook.
type Picker struct {
	hook       Hook
	resolver   *keyboard.Resolver
	dispatcher *Dispatcher
	logger     *slog.Logger
	queueSize  int
	dropped    atomic.Uint64
}

func NewPicker(h Hook, resolver *keyboard.Resolver, dispatcher *Dispatcher, logger *slog.Logger, queueSize int) *Picker {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Picker{
		hook:       h,
		resolver:   resolver,
		dispatcher: dispatcher,
		logger:     logger,
		queueSize:  queueSize,
	}
}

// Register installs the hook and blocks until ctx is done or the hook exits.
// The resolver starts from a clean modifier state. Queued events are
// dispatched before Register returns.
func (p *Picker) Register(ctx context.Context) error {
	p.resolver.Reset()
	queue := make(chan keyboard.Event, p.queueSize)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range queue {
			p.dispatcher.Dispatch(e)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		p.logger.Debug("start hook", slog.String("hook", p.hook.Name()))
		errCh <- p.hook.Register(func(t keyboard.Transition) {
			for _, e := range p.resolver.Translate(t) {
				select {
				case queue <- e:
				default:
					n := p.dropped.Add(1)
					p.logger.Warn("event queue full, dropping event", slog.String("event", e.String()), slog.Uint64("dropped", n))
				}
			}
		})
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		err = p.stop(errCh)
	}

	close(queue)
	<-done
	p.logger.Debug("hook stopped", slog.String("hook", p.hook.Name()), slog.Uint64("dropped", p.dropped.Load()))
	return err
}

// stop unregisters the hook until its Register returns. A hook that has not
// started yet may reject the first attempts.
func (p *Picker) stop(errCh <-chan error) error {
	ticker := time.NewTicker(stopRetryInterval)
	defer ticker.Stop()
	for {
		if err := p.hook.Unregister(); err != nil {
			p.logger.Warn("unregister hook", slog.String("hook", p.hook.Name()), slog.Any("err", err))
		}
		select {
		case err := <-errCh:
			return err
		case <-ticker.C:
		}
	}
}

func (p *Picker) Unregister() error {
	return p.hook.Unregister()
}

// Dropped returns how many events were discarded because the queue was full.
func (p *Picker) Dropped() uint64 {
	return p.dropped.Load()
}
