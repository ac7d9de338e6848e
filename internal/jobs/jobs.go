package jobs

import (
	"context"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRetrying  Status = "retrying"
)

// SummaryRefreshJob asks the workers to regenerate one user's summaries.
// Uploads publish it after the behavior label is persisted so the HTTP
// response does not wait on the oracle.
type SummaryRefreshJob struct {
	JobID       string     `json:"job_id"`
	UID         string     `json:"uid"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Error       string     `json:"error,omitempty"`
	RetryCount  int        `json:"retry_count"`
	MaxRetries  int        `json:"max_retries"`
}

// Publisher enqueues summary-refresh jobs. The in-memory implementation is
// the only one today; the interface leaves room for Cloud Tasks later.
type Publisher interface {
	PublishSummaryRefresh(ctx context.Context, job *SummaryRefreshJob) error
	Close() error
}

// Consumer runs published jobs through a handler.
type Consumer interface {
	Start(ctx context.Context, handler Handler) error
	Stop(ctx context.Context) error
}

// Handler processes one job; a returned error triggers a retry until the
// job's retry budget runs out.
type Handler func(ctx context.Context, job *SummaryRefreshJob) error
