package progress

import (
	"io"
	"sync"
	"time"
)

// DefaultInterval is the refresh period used when Bar is constructed
// with a zero interval.
const DefaultInterval = 100 * time.Millisecond

// Bar renders "[===>   ] done/total voxels  <elapsed> elapsed  eta <eta>" to Out on a
// ticker, reading Counter with a relaxed atomic load. It is safe to
// pass Counter directly as internal/partition.Run's progress parameter.
type Bar struct {
	Counter  *uint64
	Total    uint64
	Interval time.Duration
	Out      io.Writer

	start  time.Time
	stopCh chan struct{}
	wg     sync.WaitGroup
}
