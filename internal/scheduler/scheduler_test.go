package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/oracle/pkg/logger"
)

type fakeJob struct {
	name     string
	schedule string
	runs     atomic.Int32
	failures int32
}

func (j *fakeJob) Name() string     { return j.name }
func (j *fakeJob) Schedule() string { return j.schedule }

func (j *fakeJob) Run(ctx context.Context) error {
	n := j.runs.Add(1)
	if n <= j.failures {
		return errors.New("transient failure")
	}
	return nil
}

func newTestScheduler() *Scheduler {
	s := New(logger.NewNop())
	s.retryDelay = time.Millisecond
	return s
}

func waitForHistory(t *testing.T, s *Scheduler, job string, n int) []RunResult {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		runs := s.History(job)
		if len(runs) >= n {
			return runs
		}
		if time.Now().After(deadline) {
			t.Fatalf("expected %d recorded runs for %s, have %d", n, job, len(runs))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestAddJobRejectsDuplicates(t *testing.T) {
	s := newTestScheduler()
	require.NoError(t, s.AddJob(&fakeJob{name: "scan", schedule: "0 0 2 * * *"}))
	assert.Error(t, s.AddJob(&fakeJob{name: "scan", schedule: "0 0 3 * * *"}))
	assert.Equal(t, []string{"scan"}, s.Jobs())
}

func TestAddJobRejectsBadSchedule(t *testing.T) {
	s := newTestScheduler()
	assert.Error(t, s.AddJob(&fakeJob{name: "scan", schedule: "not a cron expr"}))
}

func TestRunNowExecutesAndRecords(t *testing.T) {
	s := newTestScheduler()
	job := &fakeJob{name: "scan", schedule: "0 0 2 * * *"}
	require.NoError(t, s.AddJob(job))

	require.NoError(t, s.RunNow("scan"))
	runs := waitForHistory(t, s, "scan", 1)

	assert.True(t, runs[0].Success)
	assert.Empty(t, runs[0].Error)
	assert.Equal(t, int32(1), job.runs.Load())
}

func TestRunNowUnknownJob(t *testing.T) {
	s := newTestScheduler()
	assert.Error(t, s.RunNow("nope"))
}

func TestJobRetriesUntilSuccess(t *testing.T) {
	s := newTestScheduler()
	job := &fakeJob{name: "flaky", schedule: "0 0 2 * * *", failures: 2}
	require.NoError(t, s.AddJob(job))

	require.NoError(t, s.RunNow("flaky"))
	runs := waitForHistory(t, s, "flaky", 1)

	assert.True(t, runs[0].Success, "succeeds on the third attempt")
	assert.Equal(t, int32(3), job.runs.Load())
}

func TestJobFailureRecordedAfterRetries(t *testing.T) {
	s := newTestScheduler()
	job := &fakeJob{name: "broken", schedule: "0 0 2 * * *", failures: 100}
	require.NoError(t, s.AddJob(job))

	require.NoError(t, s.RunNow("broken"))
	runs := waitForHistory(t, s, "broken", 1)

	assert.False(t, runs[0].Success)
	assert.Equal(t, "transient failure", runs[0].Error)
	assert.Equal(t, int32(4), job.runs.Load(), "initial attempt plus three retries")
}
