package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/finwise-dev/finwise-backend/internal/bootstrap"
	"github.com/finwise-dev/finwise-backend/internal/config"
	"github.com/finwise-dev/finwise-backend/internal/crypto"
	"github.com/finwise-dev/finwise-backend/internal/handlers"
	"github.com/finwise-dev/finwise-backend/internal/jobs"
	"github.com/finwise-dev/finwise-backend/internal/jobs/inmemory"
	"github.com/finwise-dev/finwise-backend/internal/response"
	"github.com/finwise-dev/finwise-backend/internal/router"
	"github.com/finwise-dev/finwise-backend/internal/services"
	"github.com/finwise-dev/finwise-backend/internal/store"
	"github.com/finwise-dev/finwise-backend/pkg/logger"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// helpers
	kmsHelper := crypto.NewKMS(bs.KMS, cfg.KMSKeyName)

	// stores
	ustore := store.NewUserStore(bs.Firestore, kmsHelper)
	tstore := store.NewTransactionStore(bs.Firestore)
	istore := store.NewInvestmentStore(bs.Firestore)
	sstore := store.NewSummaryStore(bs.Firestore)

	// background summary refresh queue
	queue := inmemory.NewQueue(cfg.SummaryQueueSize, cfg.SummaryWorkers)
	defer queue.Close()

	// services
	sumserv := services.NewSummaryService(bs.VertexAdapter, sstore, tstore, istore, ustore, queue)
	tserv := services.NewTransactionService(tstore, ustore, sumserv)
	iserv := services.NewInvestmentService(istore, sumserv)
	pserv := services.NewProfileService(ustore)

	// workers regenerate summaries off the request path
	workerCtx := logger.ToContext(context.Background(), bs.Log)
	err = queue.Start(workerCtx, func(ctx context.Context, job *jobs.SummaryRefreshJob) error {
		_, err := sumserv.Generate(ctx, job.UID)
		return err
	})
	exitOnError("summary worker start failed", err, bs.Log)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.TransactionSvc = tserv
	deps.SummarySvc = sumserv
	deps.InvestmentSvc = iserv
	deps.ProfileSvc = pserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":8080", r)
	exitOnError("server start failed", err, bs.Log)
}
