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

// cryptoHelper encrypts sensitive profile fields before they hit Firestore.
type cryptoHelper interface {
	KmsEncrypt(ctx context.Context, plaintext string) (string, error)
	KmsDecrypt(ctx context.Context, ciphertext string) (string, error)
}

type userStore struct {
	client *firestore.Client
	crypt  cryptoHelper
}

func NewUserStore(client *firestore.Client, crypt cryptoHelper) *userStore {
	return &userStore{client: client, crypt: crypt}
}

func (s *userStore) doc(uid string) *firestore.DocumentRef {
	return s.client.Collection("users").Doc(uid)
}

// GetUser loads the profile and decrypts the investment goal. A missing
// profile document is reported as NotFoundError.
func (s *userStore) GetUser(ctx context.Context, uid string) (*models.User, error) {
	doc, err := s.doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.NewNotFoundError("user profile not found")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to get user profile", err)
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errs.NewDatabaseError("read", "failed to parse user profile data", err)
	}

	if user.InvestmentGoal != "" {
		plain, err := s.crypt.KmsDecrypt(ctx, user.InvestmentGoal)
		if err != nil {
			return nil, errs.NewDatabaseError("read", "failed to decrypt investment goal", err)
		}
		user.InvestmentGoal = plain
	}

	return &user, nil
}

func (s *userStore) SetFinancialBehavior(ctx context.Context, uid string, behavior models.Behavior) error {
	_, err := s.doc(uid).Set(ctx, map[string]interface{}{
		"uid":               uid,
		"financialBehavior": behavior,
		"updatedAt":         time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to persist financial behavior", err)
	}
	return nil
}

func (s *userStore) SetInvestmentGoal(ctx context.Context, uid, goal string) error {
	stored := ""
	if goal != "" {
		var err error
		stored, err = s.crypt.KmsEncrypt(ctx, goal)
		if err != nil {
			return errs.NewDatabaseError("update", "failed to encrypt investment goal", err)
		}
	}

	_, err := s.doc(uid).Set(ctx, map[string]interface{}{
		"uid":            uid,
		"investmentGoal": stored,
		"updatedAt":      time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errs.NewDatabaseError("update", "failed to persist investment goal", err)
	}
	return nil
}
