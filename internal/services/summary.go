package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/finwise-dev/finwise-backend/internal/dto"
	"github.com/finwise-dev/finwise-backend/internal/errs"
	"github.com/finwise-dev/finwise-backend/internal/jobs"
	"github.com/finwise-dev/finwise-backend/internal/models"
	"github.com/finwise-dev/finwise-backend/pkg/logger"
)

// summaryErrorPrefix marks a field whose oracle call failed. The freshness
// gate treats any field starting with it as stale.
const summaryErrorPrefix = "Error generating summary"

const (
	missingTransactions = "transactions"
	missingInvestments  = "investments"
)

const (
	defaultBehaviorSummary = "No bank transactions found. Start by uploading your bank statement to get a personalized summary of your financial behavior. " +
		"Tracking your expenses and income is the first step to better financial health!"
	defaultInvestmentSummary = "No investments found. Add your investments to receive a summary of your investment activity and personalized suggestions. " +
		"Investing early helps you reach your financial goals faster!"
)

func defaultInvestmentTips() []string {
	return []string{
		"Set clear financial goals (e.g., saving for a house, retirement, or education).",
		"Build an emergency fund covering 3-6 months of living expenses.",
		"Start with simple investments like mutual funds or recurring deposits.",
		"Track your expenses and income to understand your financial habits.",
		"Upload your bank statement and add your investments to get personalized advice!",
	}
}

type textOracle interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type summarySSStore interface {
	Get(ctx context.Context, uid string) (*models.Summary, error)
	Upsert(ctx context.Context, uid string, summary *models.Summary) error
	SetStatus(ctx context.Context, uid string, st models.SummaryStatus) error
}

type transactionSSStore interface {
	List(ctx context.Context, uid string) ([]*models.Transaction, error)
	HasAny(ctx context.Context, uid string) (bool, error)
}

type investmentSSStore interface {
	List(ctx context.Context, uid string) ([]*models.Investment, error)
	HasAny(ctx context.Context, uid string) (bool, error)
}

type userSSStore interface {
	GetUser(ctx context.Context, uid string) (*models.User, error)
}

type summaryService struct {
	oracle    textOracle
	store     summarySSStore
	txs       transactionSSStore
	invs      investmentSSStore
	users     userSSStore
	publisher jobs.Publisher

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSummaryService(oracle textOracle, store summarySSStore, txs transactionSSStore, invs investmentSSStore, users userSSStore, publisher jobs.Publisher) *summaryService {
	return &summaryService{
		oracle:    oracle,
		store:     store,
		txs:       txs,
		invs:      invs,
		users:     users,
		publisher: publisher,
		locks:     map[string]*sync.Mutex{},
	}
}

// userLock serializes regeneration per user so concurrent readers cannot
// recompute the same summaries side by side.
func (s *summaryService) userLock(uid string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[uid]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[uid] = lock
	}
	return lock
}

// Refresh marks the cached record as pending and queues a background
// regeneration. Callers get their HTTP response before the oracle runs; a
// crashed job leaves the pending flag behind, which reads detect as stale.
func (s *summaryService) Refresh(ctx context.Context, uid string) error {
	if err := s.store.SetStatus(ctx, uid, models.SummaryStatusPending); err != nil {
		return err
	}
	return s.publisher.PublishSummaryRefresh(ctx, &jobs.SummaryRefreshJob{UID: uid})
}

// Generate recomputes all three summary fields and upserts the record. Oracle
// failures are isolated per field: the failing field gets the error sentinel
// and the operation still completes and persists. If another writer produced
// a fresh record while this call waited on the user lock, that record is
// returned untouched.
func (s *summaryService) Generate(ctx context.Context, uid string) (*models.Summary, error) {
	lock := s.userLock(uid)
	lock.Lock()
	defer lock.Unlock()

	log := logger.FromContext(ctx)

	if cur, err := s.store.Get(ctx, uid); err == nil && !isStale(cur) {
		log.Debug("summary already fresh, skipping regeneration", "uid", uid)
		return cur, nil
	}

	txs, err := s.txs.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	invs, err := s.invs.List(ctx, uid)
	if err != nil {
		return nil, err
	}

	if len(txs) == 0 && len(invs) == 0 {
		summary := &models.Summary{
			FinancialBehaviorSummary: defaultBehaviorSummary,
			InvestmentSummary:        defaultInvestmentSummary,
			InvestmentTips:           defaultInvestmentTips(),
			Status:                   models.SummaryStatusReady,
		}
		if err := s.store.Upsert(ctx, uid, summary); err != nil {
			return nil, err
		}
		log.Info("no history for user, wrote default summaries", "uid", uid)
		return summary, nil
	}

	goal := ""
	user, err := s.users.GetUser(ctx, uid)
	switch {
	case err == nil:
		goal = user.InvestmentGoal
	case isNotFound(err):
		// no profile yet, no goal to embed
	default:
		return nil, err
	}

	txLines := transactionLines(txs)
	invLines := investmentLines(invs)

	summary := &models.Summary{Status: models.SummaryStatusReady}
	summary.FinancialBehaviorSummary = s.generateField(ctx, behaviorSummaryPrompt(txLines))
	summary.InvestmentSummary = s.generateField(ctx, investmentSummaryPrompt(invLines))

	tipsText, err := s.oracle.GenerateText(ctx, investmentTipsPrompt(txLines, invLines, goal))
	if err != nil {
		log.Warn("oracle call failed for investment tips", "error", err)
		summary.InvestmentTips = []string{sentinel(err)}
	} else {
		summary.InvestmentTips = splitTips(cleanOracleText(tipsText))
	}

	if err := s.store.Upsert(ctx, uid, summary); err != nil {
		return nil, err
	}

	log.Info("summaries regenerated", "uid", uid)
	return summary, nil
}

// Get is the freshness gate. Incomplete history returns fixed guidance
// annotated with the missing categories, without touching the cached record.
// A stale cached record is regenerated synchronously before responding.
func (s *summaryService) Get(ctx context.Context, uid string) (dto.SummaryResponse, error) {
	hasTxs, err := s.txs.HasAny(ctx, uid)
	if err != nil {
		return dto.SummaryResponse{}, err
	}
	hasInvs, err := s.invs.HasAny(ctx, uid)
	if err != nil {
		return dto.SummaryResponse{}, err
	}

	var missing []string
	if !hasTxs {
		missing = append(missing, missingTransactions)
	}
	if !hasInvs {
		missing = append(missing, missingInvestments)
	}
	if len(missing) > 0 {
		return dto.SummaryResponse{
			FinancialBehaviorSummary: defaultBehaviorSummary,
			InvestmentSummary:        defaultInvestmentSummary,
			InvestmentTips:           defaultInvestmentTips(),
			MissingData:              missing,
		}, nil
	}

	summary, err := s.store.Get(ctx, uid)
	if err != nil {
		if !isNotFound(err) {
			return dto.SummaryResponse{}, err
		}
		summary = nil
	}

	if isStale(summary) {
		summary, err = s.Generate(ctx, uid)
		if err != nil {
			return dto.SummaryResponse{}, err
		}
	}

	return dto.SummaryResponse{
		FinancialBehaviorSummary: summary.FinancialBehaviorSummary,
		InvestmentSummary:        summary.InvestmentSummary,
		InvestmentTips:           summary.InvestmentTips,
		UpdatedAt:                summary.UpdatedAt,
	}, nil
}

func (s *summaryService) generateField(ctx context.Context, prompt string) string {
	text, err := s.oracle.GenerateText(ctx, prompt)
	if err != nil {
		logger.FromContext(ctx).Warn("oracle call failed for summary field", "error", err)
		return sentinel(err)
	}
	return cleanOracleText(text)
}

func sentinel(err error) string {
	return fmt.Sprintf("%s: %v", summaryErrorPrefix, err)
}

// isStale reports whether a cached record needs regeneration: absent, not
// marked ready, any empty field, or any field carrying the error sentinel.
func isStale(s *models.Summary) bool {
	if s == nil {
		return true
	}
	if s.Status != models.SummaryStatusReady {
		return true
	}
	if s.FinancialBehaviorSummary == "" || s.InvestmentSummary == "" || len(s.InvestmentTips) == 0 {
		return true
	}
	return strings.HasPrefix(s.FinancialBehaviorSummary, summaryErrorPrefix) ||
		strings.HasPrefix(s.InvestmentSummary, summaryErrorPrefix) ||
		strings.HasPrefix(s.InvestmentTips[0], summaryErrorPrefix)
}

func isNotFound(err error) bool {
	var nf *errs.NotFoundError
	return errors.As(err, &nf)
}
