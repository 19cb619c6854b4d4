package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmnete/bimasoft-backend/internal/auditlog"
	"github.com/mmnete/bimasoft-backend/internal/brokerlink"
	"github.com/mmnete/bimasoft-backend/internal/customer"
	"github.com/mmnete/bimasoft-backend/internal/identity"
	"github.com/mmnete/bimasoft-backend/internal/lookup/registry"
	"github.com/mmnete/bimasoft-backend/internal/lookup/tira"
	"github.com/mmnete/bimasoft-backend/internal/lookup/vehicle"
	"github.com/mmnete/bimasoft-backend/internal/messaging/kafka"
	"github.com/mmnete/bimasoft-backend/internal/notification"
	"github.com/mmnete/bimasoft-backend/internal/onboarding"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	"github.com/mmnete/bimasoft-backend/internal/policy"
	"github.com/mmnete/bimasoft-backend/internal/shared/counter"
	"github.com/mmnete/bimasoft-backend/internal/shared/requestmeta"
	"github.com/mmnete/bimasoft-backend/internal/user"
)

func registerModules(api *gin.RouterGroup, a *App, provider identity.Provider) error {
	cfg := a.Config
	gormDB, db, rdb := a.GormDB, a.DB, a.Redis
	logger := a.logger

	// --- Repositories ---
	organizationRepos := map[string]organization.Repository{
		"":                       organization.NewRepository(gormDB, ""),
		organization.TypeCompany: organization.NewRepository(gormDB, organization.TypeCompany),
		organization.TypeBroker:  organization.NewRepository(gormDB, organization.TypeBroker),
	}
	userRepo := user.NewRepository(gormDB)
	auditRepo := auditlog.NewRepository(gormDB)
	metadataRepo := auditlog.NewMetadataRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	counterRepo := counter.NewRepository(gormDB)
	customerRepos := customer.Repositories{
		Customers:   customer.NewRepository(gormDB),
		Individuals: customer.NewIndividualRepository(gormDB),
		Corporates:  customer.NewCorporateRepository(gormDB),
		Links:       customer.NewLinkRepository(gormDB),
	}
	policyRepo := policy.NewRepository(gormDB)
	motorRepo := policy.NewMotorRepository(gormDB)
	brokerLinkRepo := brokerlink.NewRepository(gormDB)

	// --- Outbound clients ---
	lookupClient := &http.Client{Timeout: cfg.HTTP.LookupTimeout}
	geolocator := requestmeta.NewHTTPGeolocator(cfg.HTTP.GeoIPURL, cfg.HTTP.LookupTimeout, logger)
	notifier := notification.New(cfg.Mail.SendGridAPIKey, cfg.Mail.From, cfg.Mail.FromName, logger)
	companyRegistry, err := registry.New()
	if err != nil {
		return err
	}

	// --- Services ---
	auditService := auditlog.NewService(auditRepo, metadataRepo, geolocator, logger)
	userService := user.NewService(userRepo, provider, logger)
	onboarder := onboarding.NewOrchestrator(onboarding.Dependencies{
		DB:            db,
		Organizations: organizationRepos,
		Users:         userRepo,
		Outbox:        outboxRepo,
		Identity:      provider,
		Metadata:      auditService,
		Notifier:      notifier,
		Metrics:       onboarding.NewMetrics(a.Metrics),
		LoginURL:      cfg.LoginURL(),
	}, logger)
	approver := onboarding.NewApprover(cfg.App.DevPass, organizationRepos, logger)
	companyService := organization.NewService(organization.TypeCompany, organizationRepos[organization.TypeCompany], organizationRepos[""], logger)
	brokerService := organization.NewService(organization.TypeBroker, organizationRepos[organization.TypeBroker], organizationRepos[""], logger)
	customerService := customer.NewService(db, customerRepos, organizationRepos[""], logger)
	individualService := customer.NewIndividualService(customerRepos.Customers, customerRepos.Individuals, logger)
	corporateService := customer.NewCorporateService(customerRepos.Customers, customerRepos.Corporates, logger)
	policyService := policy.NewService(db, policyRepo, motorRepo, counterRepo, customerRepos.Customers, logger)
	motorService := policy.NewMotorService(policyRepo, motorRepo, logger)
	brokerLinkService := brokerlink.NewService(
		brokerLinkRepo,
		organizationRepos[organization.TypeBroker],
		organizationRepos[organization.TypeCompany],
		logger,
	)
	vehicleService := vehicle.NewService([]vehicle.Source{
		vehicle.NewNHTSASource(cfg.HTTP.NHTSAURL, lookupClient, cfg.HTTP.LookupTimeout),
		vehicle.NewCarQuerySource(cfg.HTTP.CarQueryURL, lookupClient, cfg.HTTP.LookupTimeout),
	}, rdb, cfg.HTTP.VehicleCacheTTL, logger)
	verifier := tira.NewVerifier(cfg.HTTP.TIRAURL, lookupClient, cfg.HTTP.LookupTimeout, logger)

	// --- Routes Registration ---
	onboarding.RegisterRoutes(api, onboarding.NewHandler(onboarder, approver, logger), rdb)
	organization.RegisterRoutes(api, organization.NewHandler(companyService, logger))
	organization.RegisterRoutes(api, organization.NewHandler(brokerService, logger))
	user.RegisterRoutes(api, user.NewHandler(userService, logger), provider)
	auditlog.RegisterRoutes(api, auditlog.NewHandler(auditService, logger))
	customer.RegisterRoutes(api, customer.NewHandler(customerService, individualService, corporateService, logger))
	policy.RegisterRoutes(api, policy.NewHandler(policyService, motorService, logger))
	brokerlink.RegisterRoutes(api, brokerlink.NewHandler(brokerLinkService, logger))
	registry.RegisterRoutes(api, registry.NewHandler(companyRegistry))
	vehicle.RegisterRoutes(api, vehicle.NewHandler(vehicleService, logger))
	tira.RegisterRoutes(api, tira.NewHandler(verifier, logger))

	return nil
}
