package server

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"affidavit/internal/affidavit"
	"affidavit/internal/store"
	"affidavit/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/go-playground/form/v4"
	"github.com/gorilla/securecookie"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger *logrus.Logger
	config *types.Config

	engine *affidavit.Engine

	userRepo        *store.UserRepository
	employmentRepo  *store.EmploymentRepository
	monthlyLineRepo *store.MonthlyLineRepository
	assetRepo       *store.AssetRepository
	liabilityRepo   *store.LiabilityRepository

	cognitoClient *cognitoidentityprovider.Client
	cookie        *securecookie.SecureCookie

	jwksCache *jwk.Cache
	jwksURL   string

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	cognitoClient *cognitoidentityprovider.Client,
	engine *affidavit.Engine,
	userRepo *store.UserRepository,
	employmentRepo *store.EmploymentRepository,
	monthlyLineRepo *store.MonthlyLineRepository,
	assetRepo *store.AssetRepository,
	liabilityRepo *store.LiabilityRepository,
	jwkCache *jwk.Cache,
	jwksURL string,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	s := &Service{
		logger:        logger,
		config:        config,
		cognitoClient: cognitoClient,
		cookie:        securecookie.New(hashKey, blockKey),

		engine: engine,

		userRepo:        userRepo,
		employmentRepo:  employmentRepo,
		monthlyLineRepo: monthlyLineRepo,
		assetRepo:       assetRepo,
		liabilityRepo:   liabilityRepo,

		jwksCache: jwkCache,
		jwksURL:   jwksURL,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/login", s.handlePostLogin, http.MethodPost)
	r.HandleFunc("/logout", s.handlePostLogout, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/affidavit/summary", s.handleGetSummary, http.MethodGet)
		r.HandleFunc("/affidavit/pdf", s.handleGetGenericPDF, http.MethodGet)
		r.HandleFunc("/affidavit/official", s.handleGetOfficialPDF, http.MethodGet)

		r.HandleFunc("/affidavit/employment", s.handleListEmployment, http.MethodGet)
		r.HandleFunc("/affidavit/employment", s.handleCreateEmployment, http.MethodPost)
		r.HandleFunc("/affidavit/employment/:id", s.handlePatchEmployment, http.MethodPatch)
		r.HandleFunc("/affidavit/employment/:id", s.handleDeleteEmployment, http.MethodDelete)

		r.HandleFunc("/affidavit/assets", s.handleListAssets, http.MethodGet)
		r.HandleFunc("/affidavit/assets", s.handleCreateAsset, http.MethodPost)
		r.HandleFunc("/affidavit/assets/:id", s.handlePatchAsset, http.MethodPatch)
		r.HandleFunc("/affidavit/assets/:id", s.handleDeleteAsset, http.MethodDelete)

		r.HandleFunc("/affidavit/liabilities", s.handleListLiabilities, http.MethodGet)
		r.HandleFunc("/affidavit/liabilities", s.handleCreateLiability, http.MethodPost)
		r.HandleFunc("/affidavit/liabilities/:id", s.handlePatchLiability, http.MethodPatch)
		r.HandleFunc("/affidavit/liabilities/:id", s.handleDeleteLiability, http.MethodDelete)

		r.HandleFunc("/affidavit/contingent-assets", s.handleListContingentAssets, http.MethodGet)
		r.HandleFunc("/affidavit/contingent-assets", s.handleCreateContingentAsset, http.MethodPost)
		r.HandleFunc("/affidavit/contingent-assets/:id", s.handlePatchContingentAsset, http.MethodPatch)
		r.HandleFunc("/affidavit/contingent-assets/:id", s.handleDeleteContingentAsset, http.MethodDelete)

		r.HandleFunc("/affidavit/contingent-liabilities", s.handleListContingentLiabilities, http.MethodGet)
		r.HandleFunc("/affidavit/contingent-liabilities", s.handleCreateContingentLiability, http.MethodPost)
		r.HandleFunc("/affidavit/contingent-liabilities/:id", s.handlePatchContingentLiability, http.MethodPatch)
		r.HandleFunc("/affidavit/contingent-liabilities/:id", s.handleDeleteContingentLiability, http.MethodDelete)

		// incomes/deductions/expenses share the monthly-line shape; the
		// param route is registered last so the fixed collections above
		// keep precedence
		r.HandleFunc("/affidavit/:category", s.handleListMonthly, http.MethodGet)
		r.HandleFunc("/affidavit/:category", s.handleCreateMonthly, http.MethodPost)
		r.HandleFunc("/affidavit/:category/:id", s.handlePatchMonthly, http.MethodPatch)
		r.HandleFunc("/affidavit/:category/:id", s.handleDeleteMonthly, http.MethodDelete)
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Service) userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextKeyUserID).(string)
	if !ok {
		return "", fmt.Errorf("user id not found in context")
	}
	return userID, nil
}

func (s *Service) principalFromContext(ctx context.Context) (affidavit.Principal, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return affidavit.Principal{}, err
	}

	role, _ := ctx.Value(contextKeyRole).(types.UserRole)
	return affidavit.Principal{ID: userID, Role: role}, nil
}
