package progress

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

const barWidth = 30

// New builds a Bar over total voxels, ticking at interval (DefaultInterval
// if zero) and writing to out. The returned Bar owns its own counter;
// its Counter field is the *uint64 to hand to internal/partition.Run.
func New(total uint64, interval time.Duration, out io.Writer) *Bar {
	if interval <= 0 {
		interval = DefaultInterval
	}
	var counter uint64
	return &Bar{
		Counter:  &counter,
		Total:    total,
		Interval: interval,
		Out:      out,
	}
}

// Start begins the background render loop. It is a no-op if already
// running.
func (b *Bar) Start() {
	if b.stopCh != nil {
		return
	}
	b.start = startTime()
	b.stopCh = make(chan struct{})
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ticker := time.NewTicker(b.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-b.stopCh:
				b.render()
				return
			case <-ticker.C:
				b.render()
			}
		}
	}()
}

// Stop signals the render loop to draw one final frame and exit,
// blocking until it has.
func (b *Bar) Stop() {
	if b.stopCh == nil {
		return
	}
	close(b.stopCh)
	b.wg.Wait()
	fmt.Fprintln(b.Out)
	b.stopCh = nil
}

func (b *Bar) render() {
	done := atomic.LoadUint64(b.Counter)
	if done > b.Total {
		done = b.Total
	}

	var frac float64
	if b.Total > 0 {
		frac = float64(done) / float64(b.Total)
	}
	filled := int(frac * float64(barWidth))
	bar := make([]byte, barWidth)
	for i := range bar {
		switch {
		case i < filled:
			bar[i] = '='
		case i == filled:
			bar[i] = '>'
		default:
			bar[i] = ' '
		}
	}

	elapsed := time.Since(b.start)
	eta := estimateETA(frac, elapsed)

	fmt.Fprintf(b.Out, "\r[%s] %s/%s voxels  %s elapsed  eta %s",
		string(bar),
		humanize.Comma(int64(done)),
		humanize.Comma(int64(b.Total)),
		elapsed.Round(100*time.Millisecond),
		eta,
	)
}

// estimateETA extrapolates remaining time linearly from the fraction
// complete so far; it reports "?" before any progress has been made.
func estimateETA(frac float64, elapsed time.Duration) string {
	if frac <= 0 {
		return "?"
	}
	total := time.Duration(float64(elapsed) / frac)
	remaining := total - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining.Round(100 * time.Millisecond).String()
}

func startTime() time.Time {
	return time.Now()
}
