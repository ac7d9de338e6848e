package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/finwise-dev/finwise-backend/internal/errs"
	"github.com/finwise-dev/finwise-backend/internal/models"
)

type summaryStore struct {
	client *firestore.Client
}

func NewSummaryStore(client *firestore.Client) *summaryStore {
	return &summaryStore{client: client}
}

func (s *summaryStore) doc(uid string) *firestore.DocumentRef {
	return s.client.Collection("users").Doc(uid).Collection("summaries").Doc("latest")
}

// Get loads the cached summary record. An absent record is reported as
// NotFoundError; the freshness gate treats that as stale.
func (s *summaryStore) Get(ctx context.Context, uid string) (*models.Summary, error) {
	doc, err := s.doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("no cached summary")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get summary", err)
	}

	var summary models.Summary
	if err := doc.DataTo(&summary); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse summary data", err)
	}
	return &summary, nil
}

// Upsert replaces the summary record wholesale with a fresh timestamp.
func (s *summaryStore) Upsert(ctx context.Context, uid string, summary *models.Summary) error {
	summary.UpdatedAt = time.Now()
	_, err := s.doc(uid).Set(ctx, summary)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to upsert summary", err)
	}
	return nil
}

// SetStatus flips only the status flag, used to mark a refresh as pending
// before the generator has produced new content.
func (s *summaryStore) SetStatus(ctx context.Context, uid string, st models.SummaryStatus) error {
	_, err := s.doc(uid).Set(ctx, map[string]interface{}{
		"status": st,
	}, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to set summary status", err)
	}
	return nil
}
