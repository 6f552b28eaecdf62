package carousel

import (
	"context"
	"errors"
	"time"
)

// ErrStopped is returned when events are sent to a stopped controller
var ErrStopped = errors.New("carousel controller stopped")

type eventKind int

const (
	eventReady eventKind = iota
	eventLeft
	eventRight
	eventResize
	eventApplyResize
)

type event struct {
	kind           eventKind
	containerWidth int
	viewportWidth  int
}

// RenderFunc receives a frame every time the carousel is redrawn
type RenderFunc func(Frame)

// Controller owns one carousel's state and serialises every event through
// a single loop, so handlers never run concurrently with each other.
// Nothing is drawn until Ready delivers the first layout measurement.
type Controller struct {
	layout    Layout
	state     State
	ready     bool
	render    RenderFunc
	events    chan event
	done      chan struct{}
	debouncer *Debouncer

	// pending holds the latest resize measurement while debouncing
	pending event
}

// NewController creates a controller for total items.
// layout supplies the breakpoint and gap; widths arrive with Ready.
func NewController(total int, layout Layout, resizeDelay time.Duration, render RenderFunc) *Controller {
	return &Controller{
		layout:    layout,
		state:     NewState(total, layout.ItemsPerView()),
		render:    render,
		events:    make(chan event, 16),
		done:      make(chan struct{}),
		debouncer: NewDebouncer(resizeDelay),
	}
}

// Run processes events until ctx is cancelled
func (c *Controller) Run(ctx context.Context) error {
	defer close(c.done)
	defer c.debouncer.Cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-c.events:
			c.handle(ev)
		}
	}
}

func (c *Controller) handle(ev event) {
	switch ev.kind {
	case eventReady:
		c.measure(ev)
		c.state = c.state.Resize(c.layout.ItemsPerView())
		c.ready = true
		c.draw()
	case eventLeft:
		if !c.ready {
			return
		}
		c.state = c.state.Left()
		c.draw()
	case eventRight:
		if !c.ready {
			return
		}
		c.state = c.state.Right()
		c.draw()
	case eventResize:
		if !c.ready {
			return
		}
		c.pending = ev
		c.debouncer.Debounce(func() {
			c.post(event{kind: eventApplyResize})
		})
	case eventApplyResize:
		c.measure(c.pending)
		c.state = c.state.Resize(c.layout.ItemsPerView())
		c.draw()
	}
}

func (c *Controller) measure(ev event) {
	if ev.containerWidth > 0 {
		c.layout.ContainerWidth = ev.containerWidth
	}
	if ev.viewportWidth > 0 {
		c.layout.ViewportWidth = ev.viewportWidth
	}
}

func (c *Controller) draw() {
	if c.render != nil {
		c.render(c.layout.Frame(c.state))
	}
}

func (c *Controller) post(ev event) error {
	select {
	case <-c.done:
		return ErrStopped
	default:
	}
	select {
	case c.events <- ev:
		return nil
	case <-c.done:
		return ErrStopped
	}
}

// Ready signals that the strip has been laid out with the given widths
func (c *Controller) Ready(containerWidth, viewportWidth int) error {
	return c.post(event{kind: eventReady, containerWidth: containerWidth, viewportWidth: viewportWidth})
}

// Left handles a left-arrow click
func (c *Controller) Left() error {
	return c.post(event{kind: eventLeft})
}

// Right handles a right-arrow click
func (c *Controller) Right() error {
	return c.post(event{kind: eventRight})
}

// Resize reports new widths; bursts are coalesced by the debouncer
func (c *Controller) Resize(containerWidth, viewportWidth int) error {
	return c.post(event{kind: eventResize, containerWidth: containerWidth, viewportWidth: viewportWidth})
}

// Done is closed once Run has returned
func (c *Controller) Done() <-chan struct{} {
	return c.done
}
