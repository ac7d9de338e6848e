package services

import (
	"context"
	"io"

	"github.com/finwise-dev/finwise-backend/internal/dto"
	"github.com/finwise-dev/finwise-backend/internal/errs"
	"github.com/finwise-dev/finwise-backend/internal/ingest"
	"github.com/finwise-dev/finwise-backend/internal/models"
	"github.com/finwise-dev/finwise-backend/pkg/logger"
)

type transactionTSStore interface {
	Exists(ctx context.Context, uid string, key models.TransactionKey) (bool, error)
	Insert(ctx context.Context, uid string, tx *models.Transaction) error
	List(ctx context.Context, uid string) ([]*models.Transaction, error)
}

type userTSStore interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
	SetFinancialBehavior(ctx context.Context, uid string, behavior models.Behavior) error
}

type summaryRefresher interface {
	Refresh(ctx context.Context, uid string) error
}

type transactionService struct {
	store     transactionTSStore
	users     userTSStore
	summaries summaryRefresher
}

func NewTransactionService(store transactionTSStore, users userTSStore, summaries summaryRefresher) *transactionService {
	return &transactionService{
		store:     store,
		users:     users,
		summaries: summaries,
	}
}

// Upload ingests one CSV statement: parse, validate the date span, insert
// each candidate exactly once, reclassify the full history, and queue a
// summary refresh. Validation runs before any insert, so a rejected batch
// leaves nothing behind.
func (s *transactionService) Upload(ctx context.Context, uid string, file io.Reader) (dto.UploadResult, error) {
	log := logger.FromContext(ctx)

	batch, err := ingest.Parse(ctx, file)
	if err != nil {
		return dto.UploadResult{}, errs.NewValidationError("uploaded file is not readable CSV")
	}

	if err := ingest.ValidateHistorySpan(batch.Dates); err != nil {
		return dto.UploadResult{}, err
	}

	accepted := 0
	for i := range batch.Candidates {
		tx := batch.Candidates[i]

		// Check-then-insert keeps re-uploads idempotent. Within a batch the
		// first occurrence of a key wins; later identical rows match the row
		// just inserted and are skipped.
		exists, err := s.store.Exists(ctx, uid, tx.Key())
		if err != nil {
			return dto.UploadResult{}, err
		}
		if exists {
			continue
		}

		if err := s.store.Insert(ctx, uid, &tx); err != nil {
			return dto.UploadResult{}, err
		}
		accepted++
	}

	history, err := s.store.List(ctx, uid)
	if err != nil {
		return dto.UploadResult{}, err
	}
	behavior := ClassifyBehavior(history)
	if err := s.users.SetFinancialBehavior(ctx, uid, behavior); err != nil {
		return dto.UploadResult{}, err
	}

	// The upload has succeeded at this point; a refresh that cannot be queued
	// only delays regeneration until the next summary read.
	if err := s.summaries.Refresh(ctx, uid); err != nil {
		log.Warn("failed to queue summary refresh", "error", err)
	}

	log.Info("statement upload processed",
		"accepted", accepted, "skipped_rows", batch.Skipped, "behavior", behavior)

	return dto.UploadResult{Accepted: accepted, Behavior: behavior}, nil
}

// List returns the user's full transaction history with the current behavior
// label. Users without a profile yet read as Unknown.
func (s *transactionService) List(ctx context.Context, uid string) (dto.TransactionList, error) {
	txs, err := s.store.List(ctx, uid)
	if err != nil {
		return dto.TransactionList{}, err
	}

	behavior := models.BehaviorUnknown
	user, err := s.users.GetUser(ctx, uid)
	switch {
	case err == nil && user.FinancialBehavior != "":
		behavior = user.FinancialBehavior
	case err != nil && !isNotFound(err):
		return dto.TransactionList{}, err
	}

	return dto.TransactionList{Transactions: txs, Behavior: behavior}, nil
}
