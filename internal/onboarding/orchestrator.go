package onboarding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mmnete/bimasoft-backend/internal/auditlog"
	"github.com/mmnete/bimasoft-backend/internal/events"
	"github.com/mmnete/bimasoft-backend/internal/identity"
	"github.com/mmnete/bimasoft-backend/internal/messaging/kafka"
	"github.com/mmnete/bimasoft-backend/internal/notification"
	onboardingerrors "github.com/mmnete/bimasoft-backend/internal/onboarding/errors"
	"github.com/mmnete/bimasoft-backend/internal/organization"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"github.com/mmnete/bimasoft-backend/internal/user"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type Policy int

const (
	// Required steps abort the run on failure.
	Required Policy = iota
	// BestEffort steps log failures and let the run continue.
	BestEffort
)

func (p Policy) String() string {
	if p == BestEffort {
		return "best_effort"
	}
	return "required"
}

const (
	StepProvisionIdentity    = "provision_identity"
	StepPersistOrganization  = "persist_organization"
	StepRecordMetadata       = "record_metadata"
	StepSendWelcomeEmail     = "send_welcome_email"
	StepSendCredentialsEmail = "send_credentials_email"
)

type Step struct {
	Name   string
	Policy Policy
	Run    func(ctx context.Context, st *state) error
}

type state struct {
	orgType  string
	req      Request
	identity identity.Identity
	org      *organization.Organization
	adminID  int64
}

type Dependencies struct {
	DB *sql.DB
	// Organizations holds one repository per organization type plus the
	// untyped one under "" used for cross-type uniqueness checks.
	Organizations map[string]organization.Repository
	Users         user.Repository
	Outbox        kafka.OutboxRepository
	Identity      identity.Provider
	Metadata      MetadataRecorder
	Notifier      notification.Notifier
	Metrics       *Metrics
	LoginURL      string
}

type Orchestrator struct {
	deps   Dependencies
	steps  []Step
	logger *zap.Logger
}

func NewOrchestrator(deps Dependencies, logger ...*zap.Logger) *Orchestrator {
	l := zap.L().Named("onboarding.orchestrator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("onboarding.orchestrator")
	}
	o := &Orchestrator{deps: deps, logger: l}
	o.steps = []Step{
		{Name: StepProvisionIdentity, Policy: Required, Run: o.provisionIdentity},
		{Name: StepPersistOrganization, Policy: Required, Run: o.persistOrganization},
		{Name: StepRecordMetadata, Policy: BestEffort, Run: o.recordMetadata},
		{Name: StepSendWelcomeEmail, Policy: Required, Run: o.sendWelcomeEmail},
		{Name: StepSendCredentialsEmail, Policy: Required, Run: o.sendCredentialsEmail},
	}
	return o
}

// Steps lists the step names in execution order.
func (o *Orchestrator) Steps() []string {
	names := make([]string, len(o.steps))
	for i, s := range o.steps {
		names[i] = s.Name
	}
	return names
}

// Onboard folds the steps in order. A failing Required step stops the run
// and its error is returned as is.
func (o *Orchestrator) Onboard(ctx context.Context, orgType string, req Request) (Result, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, o.logger)
	if !organization.ValidType(orgType) {
		return Result{}, apperror.BadRequest("Unknown organization type")
	}
	log.Debug("onboarding requested",
		zap.String("request_id", rid),
		zap.String("type", orgType),
		zap.String("legal_name", req.LegalName),
	)

	st := &state{orgType: orgType, req: req}
	for _, step := range o.steps {
		start := time.Now()
		err := step.Run(ctx, st)
		if err == nil {
			o.deps.Metrics.observe(step.Name, outcomeOK, time.Since(start))
			continue
		}
		if step.Policy == BestEffort {
			o.deps.Metrics.observe(step.Name, outcomeDegraded, time.Since(start))
			log.Warn("onboarding step degraded",
				zap.String("request_id", rid),
				zap.String("step", step.Name),
				zap.Error(err),
			)
			continue
		}
		o.deps.Metrics.observe(step.Name, outcomeFailed, time.Since(start))
		log.Warn("onboarding step failed",
			zap.String("request_id", rid),
			zap.String("step", step.Name),
			zap.Error(err),
		)
		return Result{}, err
	}

	log.Info("onboarding success",
		zap.String("request_id", rid),
		zap.Int64("organization_id", st.org.ID),
		zap.Int64("admin_user_id", st.adminID),
	)
	return Result{OrganizationResponse: organization.ToResponse(*st.org), AdminUserID: st.adminID}, nil
}

func (o *Orchestrator) provisionIdentity(ctx context.Context, st *state) error {
	ident, err := o.deps.Identity.CreateIdentity(ctx, st.req.AdminEmail, st.req.AdminFullName)
	if err != nil {
		return onboardingerrors.ErrAccountCreationFailed.WithCause(err)
	}
	if ident.SubjectID == "" || ident.GeneratedPassword == "" {
		return onboardingerrors.ErrAccountCreationFailed
	}
	st.identity = ident
	return nil
}

func (o *Orchestrator) persistOrganization(ctx context.Context, st *state) error {
	if err := o.persist(ctx, st); err != nil {
		o.compensateIdentity(ctx, st.identity.SubjectID)
		return err
	}
	return nil
}

func (o *Orchestrator) persist(ctx context.Context, st *state) error {
	rid := contextutil.GetRequestID(ctx)
	req := st.req

	tx, err := o.deps.DB.BeginTx(ctx, nil)
	if err != nil {
		o.logger.Error("onboarding begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	allOrgs := o.deps.Organizations[""].WithTx(tx)
	existing, err := allOrgs.FindByUniqueFields(ctx, req.uniqueValues().Columns(), 0)
	if err != nil {
		return err
	}
	if existing != nil {
		return organization.DuplicateOf(existing, req.uniqueValues())
	}

	users := o.deps.Users.WithTx(tx)
	admin, err := users.FindByEmail(ctx, req.AdminEmail)
	if err != nil {
		return err
	}
	if admin != nil {
		return apperror.Duplicate(fmt.Sprintf("A user with the email %q already exists", req.AdminEmail))
	}

	org := &organization.Organization{
		OrganizationType:  st.orgType,
		LegalName:         req.LegalName,
		BrelaNumber:       req.BrelaNumber,
		TinNumber:         req.TinNumber,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		TiraLicense:       req.TiraLicense,
		PhysicalAddress:   datatypes.NewJSONType(req.PhysicalAddress),
		InsuranceTypes:    datatypes.NewJSONSlice(req.InsuranceTypes),
		PaymentMethods:    datatypes.NewJSONSlice(req.PaymentMethods),
		CompanyDetailsURL: req.CompanyDetailsURL,
		AccountStatus:     organization.StatusPendingApproval,
	}
	if err := o.deps.Organizations[st.orgType].WithTx(tx).Create(ctx, org); err != nil {
		return organization.MapRepositoryError(st.orgType, err)
	}

	var phone *string
	if req.AdminPhoneNumber != "" {
		phone = &req.AdminPhoneNumber
	}
	adminUser := &user.User{
		IdentityUID:       st.identity.SubjectID,
		FullName:          req.AdminFullName,
		Email:             req.AdminEmail,
		PhoneNumber:       phone,
		Role:              user.RoleAdmin,
		InsuranceEntityID: org.ID,
		EntityType:        st.orgType,
		Status:            user.StatusActive,
	}
	if err := users.Create(ctx, adminUser); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.Duplicate(fmt.Sprintf("A user with the email %q already exists", req.AdminEmail))
		}
		return err
	}

	event, err := kafka.NewOutboxEvent(ctx, "organization", strconv.FormatInt(org.ID, 10),
		events.OrganizationOnboardedType, events.OrganizationOnboardedTopic,
		events.OrganizationOnboardedEvent{
			EventType:        events.OrganizationOnboardedType,
			RequestID:        rid,
			OrganizationID:   org.ID,
			OrganizationType: st.orgType,
			LegalName:        org.LegalName,
			ContactEmail:     org.ContactEmail,
			Address:          req.PhysicalAddress.String(),
			AdminEmail:       req.AdminEmail,
			OccurredAt:       time.Now().UTC(),
		})
	if err != nil {
		return err
	}
	if err := o.deps.Outbox.WithTx(tx).Create(ctx, event); err != nil {
		o.logger.Error("onboarding outbox persist failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		o.logger.Error("onboarding commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	st.org = org
	st.adminID = adminUser.ID
	return nil
}

// compensateIdentity removes an account whose organization never landed.
// Failures are logged only; the original error wins.
func (o *Orchestrator) compensateIdentity(ctx context.Context, subjectID string) {
	if subjectID == "" {
		return
	}
	if err := o.deps.Identity.DeleteIdentity(context.WithoutCancel(ctx), subjectID); err != nil {
		o.logger.Error("onboarding identity compensation failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("subject", subjectID),
			zap.Error(err),
		)
	}
}

func (o *Orchestrator) recordMetadata(ctx context.Context, st *state) error {
	if o.deps.Metadata == nil {
		return nil
	}
	return o.deps.Metadata.RecordMetadata(ctx, auditlog.MetadataInput{
		OrganizationID: st.org.ID,
		Action:         organization.MetadataActionCreated,
		PerformedBy:    st.req.AdminFullName,
		Client:         st.req.Client,
	})
}

func (o *Orchestrator) sendWelcomeEmail(ctx context.Context, st *state) error {
	err := o.deps.Notifier.Send(ctx, st.req.AdminEmail, notification.KindWelcome, notification.TemplateData{
		Name: st.req.LegalName,
	})
	if err != nil {
		return onboardingerrors.ErrNotificationFailed.WithCause(err)
	}
	return nil
}

func (o *Orchestrator) sendCredentialsEmail(ctx context.Context, st *state) error {
	err := o.deps.Notifier.Send(ctx, st.req.AdminEmail, notification.KindCredentials, notification.TemplateData{
		Name:     st.req.AdminFullName,
		Email:    st.req.AdminEmail,
		Password: st.identity.GeneratedPassword,
		LoginURL: o.deps.LoginURL,
	})
	if err != nil {
		return onboardingerrors.ErrNotificationFailed.WithCause(err)
	}
	return nil
}
