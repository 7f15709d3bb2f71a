package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduleFiresOnce(t *testing.T) {
	s := NewSettler()
	defer s.Stop()

	var fired atomic.Int32
	s.Schedule("s1", 10*time.Millisecond, func() { fired.Add(1) })

	assert.Eventually(t, func() bool {
		return fired.Load() == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestCancelStopsPendingSettlement(t *testing.T) {
	s := NewSettler()
	defer s.Stop()

	var fired atomic.Int32
	s.Schedule("s1", 30*time.Millisecond, func() { fired.Add(1) })

	assert.True(t, s.Cancel("s1"))
	assert.False(t, s.Cancel("s1"))

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestScheduleReplacesPreviousTimer(t *testing.T) {
	s := NewSettler()
	defer s.Stop()

	var first, second atomic.Int32
	s.Schedule("s1", 50*time.Millisecond, func() { first.Add(1) })
	s.Schedule("s1", 10*time.Millisecond, func() { second.Add(1) })

	assert.Eventually(t, func() bool {
		return second.Load() == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, first.Load())
}

func TestStopRejectsNewWork(t *testing.T) {
	s := NewSettler()

	var fired atomic.Int32
	s.Schedule("s1", 20*time.Millisecond, func() { fired.Add(1) })
	s.Stop()

	s.Schedule("s2", time.Millisecond, func() { fired.Add(1) })

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, fired.Load())
}
