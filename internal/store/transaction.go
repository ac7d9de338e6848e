package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/finwise-dev/finwise-backend/internal/errs"
	"github.com/finwise-dev/finwise-backend/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("transactions")
}

// Exists reports whether a transaction matching the dedup key (submitted date
// string, amount, description) is already stored for this user.
func (s *transactionStore) Exists(ctx context.Context, uid string, key models.TransactionKey) (bool, error) {
	iter := s.collection(uid).
		Where("date", "==", key.Date).
		Where("amount", "==", key.Amount).
		Where("description", "==", key.Description).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errs.NewDatabaseError("read", "failed to check for duplicate transaction", err)
	}
	return true, nil
}

func (s *transactionStore) Insert(ctx context.Context, uid string, tx *models.Transaction) error {
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	_, _, err := s.collection(uid).Add(ctx, tx)
	if err != nil {
		return errs.NewDatabaseError("create", "failed to insert transaction", err)
	}
	return nil
}

func (s *transactionStore) List(ctx context.Context, uid string) ([]*models.Transaction, error) {
	docs, err := s.collection(uid).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to list transactions", err)
	}
	txs := make([]*models.Transaction, 0, len(docs))
	for _, d := range docs {
		var tx models.Transaction
		if err := d.DataTo(&tx); err != nil {
			return nil, errs.NewDatabaseError("read", "failed to parse transaction data", err)
		}
		txs = append(txs, &tx)
	}
	return txs, nil
}

// HasAny reports whether the user has at least one stored transaction.
func (s *transactionStore) HasAny(ctx context.Context, uid string) (bool, error) {
	iter := s.collection(uid).Limit(1).Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errs.NewDatabaseError("read", "failed to probe transactions", err)
	}
	return true, nil
}
