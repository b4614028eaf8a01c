package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingTask struct {
	runs     atomic.Int32
	interval time.Duration
}

func (t *countingTask) Run(ctx context.Context) error {
	t.runs.Add(1)
	return nil
}

func (t *countingTask) Interval() time.Duration { return t.interval }
func (t *countingTask) Name() string            { return "counting-task" }

func TestScheduler_RunsTaskImmediately(t *testing.T) {
	task := &countingTask{interval: time.Hour}
	s := New(context.Background())
	s.AddTask(task)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return task.runs.Load() == 1
	}, time.Second, 10*time.Millisecond, "task should run once on start")
}

func TestScheduler_RunsTaskOnTicks(t *testing.T) {
	task := &countingTask{interval: 20 * time.Millisecond}
	s := New(context.Background())
	s.AddTask(task)

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return task.runs.Load() >= 3
	}, time.Second, 10*time.Millisecond, "task should run repeatedly on its interval")
}

func TestScheduler_StopHaltsTasks(t *testing.T) {
	task := &countingTask{interval: 10 * time.Millisecond}
	s := New(context.Background())
	s.AddTask(task)

	s.Start()
	assert.Eventually(t, func() bool {
		return task.runs.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	after := task.runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, task.runs.Load(), "no runs after Stop")
}

func TestScheduler_ParentContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	task := &countingTask{interval: 10 * time.Millisecond}
	s := New(ctx)
	s.AddTask(task)

	s.Start()
	cancel()
	s.Stop()

	after := task.runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, task.runs.Load())
}
