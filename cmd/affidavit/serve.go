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

	"affidavit/internal/affidavit"
	"affidavit/internal/db"
	"affidavit/internal/server"
	"affidavit/internal/store"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig()
	if err != nil {
		return err
	}

	awsConfig, err := loadAWSConfig(ctx)
	if err != nil {
		return err
	}

	cognitoClient := cognitoidentityprovider.NewFromConfig(awsConfig)

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return err
	}
	defer pool.Close()

	userRepo := store.NewUserRepository(pool)
	caseRepo := store.NewCaseRepository(pool)
	employmentRepo := store.NewEmploymentRepository(pool)
	monthlyLineRepo := store.NewMonthlyLineRepository(pool)
	assetRepo := store.NewAssetRepository(pool)
	liabilityRepo := store.NewLiabilityRepository(pool)
	lookupRepo := store.NewLookupRepository(pool)

	var templates affidavit.TemplateSource
	if config.TemplateDir != "" {
		logger.WithField("dir", config.TemplateDir).Info("serving official form templates from disk")
		templates = affidavit.NewDirTemplateSource(config.TemplateDir)
	} else {
		s3Client := s3.NewFromConfig(awsConfig)
		templates = affidavit.NewS3TemplateSource(s3Client, config.S3BucketName, config.TemplateS3Prefix)
	}

	engine := affidavit.NewEngine(
		logger,
		userRepo,
		caseRepo,
		employmentRepo,
		monthlyLineRepo,
		assetRepo,
		liabilityRepo,
		lookupRepo,
		templates,
	)

	jwkCache, err := jwk.NewCache(context.Background(), httprc.NewClient())
	if err != nil {
		return fmt.Errorf("failed to initialize jwk cache: %w", err)
	}

	jwksURL := fmt.Sprintf("%s/.well-known/jwks.json", config.CognitoIssuerURL)

	err = jwkCache.Register(context.Background(), jwksURL)
	if err != nil {
		return fmt.Errorf("failed to register cognito jwk with cache: %w", err)
	}

	srv, err := server.New(
		config,
		logger,
		cognitoClient,
		engine,
		userRepo,
		employmentRepo,
		monthlyLineRepo,
		assetRepo,
		liabilityRepo,
		jwkCache,
		jwksURL,
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
