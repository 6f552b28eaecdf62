package carousel

import (
	"context"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestItemsPerView(t *testing.T) {
	assert.Equal(t, 1, ItemsPerView(375, 768))
	assert.Equal(t, 1, ItemsPerView(767, 768))
	assert.Equal(t, 3, ItemsPerView(768, 768))
	assert.Equal(t, 3, ItemsPerView(1440, 768))
}

func TestMaxIndex(t *testing.T) {
	assert.Equal(t, 2, NewState(5, 3).MaxIndex())
	assert.Equal(t, 0, NewState(2, 3).MaxIndex())
	assert.Equal(t, 0, NewState(0, 3).MaxIndex())
	assert.Equal(t, 4, NewState(5, 1).MaxIndex())
}

func TestRightClampsAtMaxIndex(t *testing.T) {
	s := NewState(5, 3)
	for i := 0; i < 3; i++ {
		s = s.Right()
	}
	assert.Equal(t, 2, s.Index)
	assert.False(t, s.CanNext())
	assert.True(t, s.CanPrev())
}

func TestLeftStopsAtZero(t *testing.T) {
	s := NewState(5, 3).Left()
	assert.Equal(t, 0, s.Index)
	assert.False(t, s.CanPrev())
}

func TestResizeClampsDown(t *testing.T) {
	s := NewState(5, 1)
	for i := 0; i < 4; i++ {
		s = s.Right()
	}
	require.Equal(t, 4, s.Index)

	s = s.Resize(3)
	assert.Equal(t, 2, s.Index)

	s = s.Resize(1)
	assert.Equal(t, 2, s.Index, "growing the range does not move the index")
}

func TestSeek(t *testing.T) {
	s := NewState(5, 3)
	assert.Equal(t, 2, s.Seek(10).Index)
	assert.Equal(t, 0, s.Seek(-3).Index)
	assert.Equal(t, 1, s.Seek(1).Index)
}

func TestIndexStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		s := NewState(rng.IntN(8), WideItems)
		for step := 0; step < 100; step++ {
			switch rng.IntN(4) {
			case 0:
				s = s.Left()
			case 1:
				s = s.Right()
			case 2:
				s = s.Resize(NarrowItems)
			case 3:
				s = s.Resize(WideItems)
			}
			require.GreaterOrEqual(t, s.Index, 0)
			require.LessOrEqual(t, s.Index, max(0, s.Total-s.ItemsPerView))
		}
	}
}

func TestLayoutFrame(t *testing.T) {
	l := Layout{ContainerWidth: 1048, ViewportWidth: 1280, Breakpoint: 768, Gap: 24}
	s := NewState(5, l.ItemsPerView()).Right().Right()

	f := l.Frame(s)
	assert.Equal(t, 3, f.ItemsPerView)
	assert.Equal(t, 2, f.MaxIndex)
	assert.InDelta(t, 333.3333, f.ItemWidth, 0.001)
	assert.InDelta(t, 2*(333.3333+24), f.Offset, 0.001)
	assert.False(t, f.PrevDisabled)
	assert.True(t, f.NextDisabled)
	assert.Equal(t, "translateX(-714.67px)", f.Transform())
	assert.Equal(t, "0 0 333.33px", f.ItemBasis())
}

func TestLayoutNarrow(t *testing.T) {
	l := Layout{ContainerWidth: 320, ViewportWidth: 375, Breakpoint: 768, Gap: 24}
	f := l.Frame(NewState(4, l.ItemsPerView()).Right())
	assert.Equal(t, 1, f.ItemsPerView)
	assert.Equal(t, float64(320), f.ItemWidth)
	assert.Equal(t, float64(344), f.Offset)
}

func TestDebouncerCoalesces(t *testing.T) {
	var called, last atomic.Int32
	d := NewDebouncer(30 * time.Millisecond)

	for i := 1; i <= 5; i++ {
		v := int32(i)
		d.Debounce(func() {
			last.Store(v)
			called.Add(1)
		})
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return called.Load() == 1 }, time.Second, 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), called.Load())
	assert.Equal(t, int32(5), last.Load())
}

func TestDebouncerCancel(t *testing.T) {
	var called atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)
	d.Debounce(func() { called.Add(1) })
	d.Cancel()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), called.Load())
}

func TestDebouncerRearmsAfterApply(t *testing.T) {
	var called atomic.Int32
	d := NewDebouncer(10 * time.Millisecond)

	d.Debounce(func() { called.Add(1) })
	assert.Eventually(t, func() bool { return called.Load() == 1 }, time.Second, 5*time.Millisecond)

	d.Debounce(func() { called.Add(10) })
	assert.Eventually(t, func() bool { return called.Load() == 11 }, time.Second, 5*time.Millisecond)
}

// frameRecorder collects frames drawn by a controller
type frameRecorder struct {
	mu     sync.Mutex
	frames []Frame
}

func (r *frameRecorder) record(f Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
}

func (r *frameRecorder) snapshot() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

func (r *frameRecorder) last() (Frame, bool) {
	frames := r.snapshot()
	if len(frames) == 0 {
		return Frame{}, false
	}
	return frames[len(frames)-1], true
}

func startController(t *testing.T, total int, rec *frameRecorder) (*Controller, context.CancelFunc) {
	t.Helper()
	layout := Layout{Breakpoint: 768, Gap: 24}
	c := NewController(total, layout, 20*time.Millisecond, rec.record)
	ctx, cancel := context.WithCancel(context.Background())
	go c.Run(ctx)
	return c, func() {
		cancel()
		<-c.Done()
	}
}

func TestControllerWaitsForReady(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &frameRecorder{}
	c, stop := startController(t, 5, rec)
	defer stop()

	require.NoError(t, c.Right())
	require.NoError(t, c.Resize(500, 500))
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, rec.snapshot(), "nothing is drawn before ready")

	require.NoError(t, c.Ready(1048, 1280))
	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, 5*time.Millisecond)

	f, _ := rec.last()
	assert.Equal(t, 0, f.Index)
	assert.Equal(t, 3, f.ItemsPerView)
	assert.True(t, f.PrevDisabled)
}

func TestControllerNavigationAndResize(t *testing.T) {
	defer goleak.VerifyNone(t)

	rec := &frameRecorder{}
	c, stop := startController(t, 5, rec)
	defer stop()

	require.NoError(t, c.Ready(320, 375))
	for i := 0; i < 6; i++ {
		require.NoError(t, c.Right())
	}
	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 7 }, time.Second, 5*time.Millisecond)
	f, _ := rec.last()
	require.Equal(t, 4, f.Index)
	require.Equal(t, 1, f.ItemsPerView)

	// a burst of resizes draws once, after the delay
	for _, w := range []int{800, 900, 1280} {
		require.NoError(t, c.Resize(1048, w))
	}
	assert.Eventually(t, func() bool { return len(rec.snapshot()) == 8 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, rec.snapshot(), 8)

	f, _ = rec.last()
	assert.Equal(t, 3, f.ItemsPerView)
	assert.Equal(t, 2, f.Index)
	assert.True(t, f.NextDisabled)
}

func TestControllerStopped(t *testing.T) {
	defer goleak.VerifyNone(t)

	c, stop := startController(t, 3, &frameRecorder{})
	stop()
	assert.ErrorIs(t, c.Left(), ErrStopped)
}
