package metrics

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/yildizm/sentimeter/internal/sentiment"
)

// Timer is a thread-safe timer for measuring analysis durations
type Timer struct {
	count     int64
	totalTime int64
	minTime   int64
	maxTime   int64
}

const unsetMin = int64(^uint64(0) >> 1)

// NewTimer creates an empty timer
func NewTimer() *Timer {
	return &Timer{minTime: unsetMin}
}

// Record records a duration measurement
func (t *Timer) Record(duration time.Duration) {
	nanos := duration.Nanoseconds()

	atomic.AddInt64(&t.count, 1)
	atomic.AddInt64(&t.totalTime, nanos)

	for {
		current := atomic.LoadInt64(&t.minTime)
		if nanos >= current || atomic.CompareAndSwapInt64(&t.minTime, current, nanos) {
			break
		}
	}
	for {
		current := atomic.LoadInt64(&t.maxTime)
		if nanos <= current || atomic.CompareAndSwapInt64(&t.maxTime, current, nanos) {
			break
		}
	}
}

// Count returns the number of recorded measurements
func (t *Timer) Count() int64 {
	return atomic.LoadInt64(&t.count)
}

// MinTime returns the minimum recorded time
func (t *Timer) MinTime() time.Duration {
	minTime := atomic.LoadInt64(&t.minTime)
	if minTime == unsetMin {
		return 0
	}
	return time.Duration(minTime)
}

// MaxTime returns the maximum recorded time
func (t *Timer) MaxTime() time.Duration {
	return time.Duration(atomic.LoadInt64(&t.maxTime))
}

// AvgTime returns the average time of all measurements
func (t *Timer) AvgTime() time.Duration {
	count := atomic.LoadInt64(&t.count)
	if count == 0 {
		return 0
	}
	return time.Duration(atomic.LoadInt64(&t.totalTime) / count)
}

// Tally aggregates results for a run. Safe for concurrent use.
type Tally struct {
	positive int64
	negative int64
	neutral  int64
	errors   int64
	// sum of comparative scores, stored as float64 bits
	comparativeSum uint64
	timer          *Timer
}

// Summary is a point-in-time view of a Tally
type Summary struct {
	Total           int64         `json:"total"`
	Positive        int64         `json:"positive"`
	Negative        int64         `json:"negative"`
	Neutral         int64         `json:"neutral"`
	Errors          int64         `json:"errors"`
	MeanComparative float64       `json:"mean_comparative"`
	AvgDuration     time.Duration `json:"avg_duration"`
	MaxDuration     time.Duration `json:"max_duration"`
}

// NewTally creates an empty tally
func NewTally() *Tally {
	return &Tally{timer: NewTimer()}
}

// Observe records one successful analysis
func (t *Tally) Observe(result *sentiment.Result, took time.Duration) {
	switch result.Category() {
	case sentiment.CategoryPositive:
		atomic.AddInt64(&t.positive, 1)
	case sentiment.CategoryNegative:
		atomic.AddInt64(&t.negative, 1)
	default:
		atomic.AddInt64(&t.neutral, 1)
	}
	t.addComparative(result.Comparative)
	t.timer.Record(took)
}

// ObserveError records one failed analysis
func (t *Tally) ObserveError() {
	atomic.AddInt64(&t.errors, 1)
}

func (t *Tally) addComparative(value float64) {
	for {
		old := atomic.LoadUint64(&t.comparativeSum)
		next := math.Float64bits(math.Float64frombits(old) + value)
		if atomic.CompareAndSwapUint64(&t.comparativeSum, old, next) {
			return
		}
	}
}

// Summary returns the current totals
func (t *Tally) Summary() Summary {
	s := Summary{
		Positive:    atomic.LoadInt64(&t.positive),
		Negative:    atomic.LoadInt64(&t.negative),
		Neutral:     atomic.LoadInt64(&t.neutral),
		Errors:      atomic.LoadInt64(&t.errors),
		AvgDuration: t.timer.AvgTime(),
		MaxDuration: t.timer.MaxTime(),
	}
	s.Total = s.Positive + s.Negative + s.Neutral
	if s.Total > 0 {
		s.MeanComparative = math.Float64frombits(atomic.LoadUint64(&t.comparativeSum)) / float64(s.Total)
	}
	return s
}
