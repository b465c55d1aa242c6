package aws

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/coinbase/treenode/internal/config"
)

type (
	SessionParams struct {
		fx.In
		Config *config.Config
	}
)

const (
	localStackEndpoint = "http://localhost:4566"
	localStackID       = "local"
	localStackSecret   = "local"
)

var Module = fx.Options(
	fx.Provide(NewSession),
)

func NewSession(params SessionParams) (*session.Session, error) {
	cfg := aws.NewConfig().WithRegion(params.Config.AWS.Region)
	if params.Config.AWS.IsLocalStack {
		cfg = cfg.
			WithEndpoint(localStackEndpoint).
			WithS3ForcePathStyle(true).
			WithCredentials(credentials.NewStaticCredentials(localStackID, localStackSecret, ""))
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, xerrors.Errorf("failed to create aws session: %w", err)
	}

	return sess, nil
}
