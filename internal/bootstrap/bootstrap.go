package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	gcpkms "cloud.google.com/go/kms/apiv1"
	"firebase.google.com/go/v4/auth"

	vertexclient "github.com/finwise-dev/finwise-backend/internal/client/vertex"
	"github.com/finwise-dev/finwise-backend/internal/config"
	"github.com/finwise-dev/finwise-backend/pkg/logger"
)

type Bootstrap struct {
	Log           *slog.Logger
	Firestore     *firestore.Client
	Firebase      *auth.Client
	KMS           *gcpkms.KeyManagementClient
	VertexAdapter *vertexclient.Adapter
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}
	bs.Firebase, err = InitFirebase(applicationCtx)
	if err != nil {
		return bs, err
	}
	bs.KMS, err = InitKMS(applicationCtx)
	if err != nil {
		return bs, err
	}
	bs.VertexAdapter, err = vertexclient.NewAdapter(
		applicationCtx, bs.Log, cfg.ProjectID, cfg.Region, cfg.VertexModel, cfg.OracleTimeout)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

func (b *Bootstrap) Close() {
	if b.VertexAdapter != nil {
		_ = b.VertexAdapter.Close()
	}
	if b.KMS != nil {
		_ = b.KMS.Close()
	}
	if b.Firestore != nil {
		_ = b.Firestore.Close()
	}
}
