package util

import (
	"math"
)

// MovingWindow keeps running statistics over the last capacity values.
//
// Values live in a ring. head is the slot the next value goes into, and the
// oldest value sits length slots behind it.
type MovingWindow struct {
	ring []float64
	head int

	length   int
	capacity int

	sumSq  float64
	stddev float64

	sum     float64
	average float64
}

// NewMovingWindow returns a new moving window.
func NewMovingWindow(size int) *MovingWindow {
	if size < 1 {
		size = 1
	}

	return &MovingWindow{
		ring:     make([]float64, size),
		capacity: size,
	}
}

func (mw *MovingWindow) calcFinal() (float64, float64) {
	if mw.length > 0 {
		mw.average = mw.sum / float64(mw.length)
	} else {
		mw.average = 0
	}

	if mw.length > 1 {
		variance := (mw.sumSq / float64(mw.length)) - (mw.average * mw.average)
		mw.stddev = math.Sqrt(math.Abs(variance))
	} else {
		mw.stddev = 0
	}

	return mw.average, mw.stddev
}

func (mw *MovingWindow) oldest() int {
	return (mw.head - mw.length + mw.capacity) % mw.capacity
}

// Update pushes value, evicting the oldest value when full, and returns the
// new mean and standard deviation.
func (mw *MovingWindow) Update(value float64) (float64, float64) {
	if mw.length < mw.capacity {
		mw.length++
	} else {
		old := mw.ring[mw.head]
		mw.sum -= old
		mw.sumSq -= old * old
	}

	mw.ring[mw.head] = value
	mw.head = (mw.head + 1) % mw.capacity

	mw.sum += value
	mw.sumSq += value * value

	return mw.calcFinal()
}

// Drop removes the count oldest values from the window.
func (mw *MovingWindow) Drop(count int) (float64, float64) {
	for ; count > 0 && mw.length > 0; count-- {
		old := mw.ring[mw.oldest()]
		mw.sum -= old
		mw.sumSq -= old * old
		mw.length--
	}

	// clear what is left over so rounding errors do not pile up
	if mw.length < 2 {
		mw.sumSq = 0
		if mw.length == 1 {
			v := mw.ring[mw.oldest()]
			mw.sum = v
			mw.sumSq = v * v
		} else {
			mw.sum = 0
		}
	}

	return mw.calcFinal()
}

// Reset empties the window.
func (mw *MovingWindow) Reset() {
	mw.head = 0
	mw.length = 0
	mw.sum = 0
	mw.sumSq = 0
	mw.calcFinal()
}

// Len returns how many items in the window
func (mw *MovingWindow) Len() int {
	return mw.length
}

// Cap returns max size of window
func (mw *MovingWindow) Cap() int {
	return mw.capacity
}

// Mean is the moving window average
func (mw *MovingWindow) Mean() float64 {
	return mw.average
}

// StdDev is the moving window standard deviation
func (mw *MovingWindow) StdDev() float64 {
	return mw.stddev
}

// Stats returns the mean and standard deviation of the window
func (mw *MovingWindow) Stats() (float64, float64) {
	return mw.average, mw.stddev
}
