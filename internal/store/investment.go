package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/finwise-dev/finwise-backend/internal/errs"
	"github.com/finwise-dev/finwise-backend/internal/models"
)

type investmentStore struct {
	client *firestore.Client
}

func NewInvestmentStore(client *firestore.Client) *investmentStore {
	return &investmentStore{client: client}
}

func (s *investmentStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("investments")
}

func (s *investmentStore) Create(ctx context.Context, uid string, inv *models.Investment) error {
	if inv.InvestmentID == "" {
		inv.InvestmentID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	_, err := s.collection(uid).Doc(inv.InvestmentID).Set(ctx, inv)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to create investment", err)
	}
	return nil
}

func (s *investmentStore) List(ctx context.Context, uid string) ([]*models.Investment, error) {
	docs, err := s.collection(uid).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list investments", err)
	}
	invs := make([]*models.Investment, 0, len(docs))
	for _, d := range docs {
		var inv models.Investment
		if err := d.DataTo(&inv); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse investment data", err)
		}
		invs = append(invs, &inv)
	}
	return invs, nil
}

// HasAny reports whether the user has at least one recorded investment.
func (s *investmentStore) HasAny(ctx context.Context, uid string) (bool, error) {
	iter := s.collection(uid).Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errs.NewDatabaseError("read", "failed to probe investments", err)
	}
	return true, nil
}
