package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasmeem/internal/auth"
	"tasmeem/internal/bootstrap"
	"tasmeem/internal/db"
	"tasmeem/internal/intake"
	"tasmeem/internal/server"
	"tasmeem/internal/storage"
	"tasmeem/internal/store"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start the HTTP server",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "sweep-interval",
			Usage: "How often idle intake drafts are swept",
			Value: time.Minute,
		},
	},
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger()

	config, err := loadConfig(logger)
	if err != nil {
		return err
	}

	awsConfig, err := loadAWSConfig(ctx)
	if err != nil {
		return err
	}

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	submissionRepo := store.NewSubmissionRepository(pool)
	adminUserRepo := store.NewAdminUserRepository(pool)

	cognito, err := newCognito(ctx, awsConfig, config.CognitoUserPoolID, config.CognitoClientID, config.CognitoIssuerURL)
	if err != nil {
		return err
	}

	blobs := stagingStore(logger, awsConfig, config.StagingBucket)

	drafts := intake.NewDrafts(
		logger,
		submissionRepo,
		blobs,
		config.StagingPrefix,
		time.Duration(config.DraftTTLMinutes)*time.Minute,
	)
	drafts.Start(cCtx.Duration("sweep-interval"))
	defer drafts.Close()

	setup := bootstrap.New(logger, adminUserRepo, cognito)

	srv, err := server.New(
		config,
		logger,
		drafts,
		submissionRepo,
		adminUserRepo,
		cognito,
		setup,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}

func newCognito(ctx context.Context, awsConfig aws.Config, userPoolID, clientID, issuerURL string) (*auth.Cognito, error) {
	jwkCache, err := jwk.NewCache(ctx, httprc.NewClient())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize jwk cache: %w", err)
	}

	jwksURL := auth.JWKSURL(issuerURL)
	if err := jwkCache.Register(ctx, jwksURL); err != nil {
		return nil, fmt.Errorf("failed to register cognito jwks with cache: %w", err)
	}

	client := cognitoidentityprovider.NewFromConfig(awsConfig)
	return auth.NewCognito(client, jwkCache, userPoolID, clientID, issuerURL), nil
}

func stagingStore(logger *logrus.Logger, awsConfig aws.Config, bucket string) intake.BlobStore {
	if bucket == "" {
		logger.Info("staging images in memory")
		return storage.NewMemoryStorage()
	}

	logger.WithField("bucket", bucket).Info("staging images in s3")
	return storage.NewS3Storage(s3.NewFromConfig(awsConfig), bucket)
}
