package inmemory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/finwise-dev/finwise-backend/internal/jobs"
)

func TestQueuePublishAndConsume(t *testing.T) {
	q := NewQueue(4, 1)
	defer q.Close()

	var mu sync.Mutex
	seen := []string{}
	done := make(chan struct{})

	err := q.Start(context.Background(), func(ctx context.Context, job *jobs.SummaryRefreshJob) error {
		mu.Lock()
		seen = append(seen, job.UID)
		mu.Unlock()
		if len(seen) == 2 {
			close(done)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}

	for _, uid := range []string{"uid-1", "uid-2"} {
		if err := q.PublishSummaryRefresh(context.Background(), &jobs.SummaryRefreshJob{UID: uid}); err != nil {
			t.Fatalf("publish error: %v", err)
		}
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("jobs not consumed in time")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 || seen[0] != "uid-1" || seen[1] != "uid-2" {
		t.Fatalf("unexpected jobs consumed: %v", seen)
	}
}

func TestQueuePublishFillsDefaults(t *testing.T) {
	q := NewQueue(1, 1)
	defer q.Close()

	job := &jobs.SummaryRefreshJob{UID: "uid-1"}
	if err := q.PublishSummaryRefresh(context.Background(), job); err != nil {
		t.Fatalf("publish error: %v", err)
	}

	if job.JobID == "" {
		t.Errorf("expected a generated job ID")
	}
	if job.Status != jobs.StatusPending {
		t.Errorf("expected pending status, got %s", job.Status)
	}
	if job.CreatedAt.IsZero() {
		t.Errorf("expected CreatedAt to be set")
	}
	if job.MaxRetries != 2 {
		t.Errorf("expected default MaxRetries 2, got %d", job.MaxRetries)
	}
}

func TestQueueRetriesFailedJob(t *testing.T) {
	q := NewQueue(4, 1)
	defer q.Close()

	var mu sync.Mutex
	attempts := 0
	done := make(chan struct{})

	err := q.Start(context.Background(), func(ctx context.Context, job *jobs.SummaryRefreshJob) error {
		mu.Lock()
		defer mu.Unlock()
		attempts++
		if attempts < 2 {
			return errors.New("transient failure")
		}
		close(done)
		return nil
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}

	if err := q.PublishSummaryRefresh(context.Background(), &jobs.SummaryRefreshJob{UID: "uid-1"}); err != nil {
		t.Fatalf("publish error: %v", err)
	}

	// First attempt fails, backoff is one second, then the retry succeeds.
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatalf("job was not retried in time")
	}
}

func TestQueuePublishAfterClose(t *testing.T) {
	q := NewQueue(1, 1)
	if err := q.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	err := q.PublishSummaryRefresh(context.Background(), &jobs.SummaryRefreshJob{UID: "uid-1"})
	if err == nil {
		t.Fatalf("expected publish to fail on a closed queue")
	}
}

func TestQueueStopWaitsForWorkers(t *testing.T) {
	q := NewQueue(1, 2)

	started := make(chan struct{})
	release := make(chan struct{})

	err := q.Start(context.Background(), func(ctx context.Context, job *jobs.SummaryRefreshJob) error {
		close(started)
		<-release
		return nil
	})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}

	if err := q.PublishSummaryRefresh(context.Background(), &jobs.SummaryRefreshJob{UID: "uid-1"}); err != nil {
		t.Fatalf("publish error: %v", err)
	}
	<-started

	stopErr := make(chan error, 1)
	go func() {
		stopErr <- q.Stop(context.Background())
	}()

	select {
	case <-stopErr:
		t.Fatalf("Stop returned while a job was still running")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	select {
	case err := <-stopErr:
		if err != nil {
			t.Fatalf("Stop error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Stop did not return after workers drained")
	}
}
