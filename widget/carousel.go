package widget

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the time between carousel frames.
const DefaultInterval = 2 * time.Second

// Carousel rotates through a fixed number of frames while hovered. The
// ticker behind it is a scoped resource: Enter acquires it, Leave releases
// it, and cancelling the context passed to Enter releases it too.
type Carousel struct {
	frames   int
	interval time.Duration

	mu     sync.Mutex
	index  int
	cancel context.CancelFunc
	done   chan struct{}
}

// NewCarousel returns a stopped carousel over frames images. An interval
// of zero or less uses DefaultInterval.
func NewCarousel(frames int, interval time.Duration) *Carousel {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Carousel{frames: frames, interval: interval}
}

// Rotates reports whether the carousel has enough frames to rotate. A
// single image is shown statically.
func (c *Carousel) Rotates() bool {
	return c.frames > 1
}

// Index returns the frame currently shown.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Running reports whether the rotation timer is live.
func (c *Carousel) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.runningLocked()
}

func (c *Carousel) runningLocked() bool {
	if c.done == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// Enter starts the rotation. onTick, when non-nil, is called from the timer
// goroutine with each new index. Enter is a no-op while already running or
// when there is nothing to rotate.
func (c *Carousel) Enter(ctx context.Context, onTick func(index int)) {
	if !c.Rotates() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.runningLocked() {
		return
	}
	if c.done != nil {
		// Previous run ended through its context; forget it.
		c.cancel()
		c.index = 0
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	go c.run(ctx, done, onTick)
}

func (c *Carousel) run(ctx context.Context, done chan struct{}, onTick func(int)) {
	defer close(done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			c.index = (c.index + 1) % c.frames
			idx := c.index
			c.mu.Unlock()
			if onTick != nil {
				onTick(idx)
			}
		}
	}
}

// Leave stops the rotation, waits for the timer goroutine to exit and
// resets to the first frame. It is safe to call at any time, repeatedly.
func (c *Carousel) Leave() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	c.mu.Lock()
	if c.done == nil {
		c.index = 0
	}
	c.mu.Unlock()
}
