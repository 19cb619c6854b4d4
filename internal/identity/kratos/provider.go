// Package kratos adapts an Ory Kratos deployment to identity.Provider.
package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mmnete/bimasoft-backend/internal/identity"
	"github.com/ory/client-go"
	"go.uber.org/zap"
)

type Provider struct {
	public   *client.APIClient
	admin    *client.APIClient
	schemaID string
	logger   *zap.Logger
}

var _ identity.Provider = (*Provider)(nil)

func newAPIClient(url string) *client.APIClient {
	cfg := client.NewConfiguration()
	cfg.Servers = client.ServerConfigurations{
		{URL: url},
	}
	return client.NewAPIClient(cfg)
}

func NewProvider(publicURL, adminURL, schemaID string, logger ...*zap.Logger) *Provider {
	l := zap.L().Named("identity.kratos")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	if schemaID == "" {
		schemaID = "default"
	}
	return &Provider{
		public:   newAPIClient(publicURL),
		admin:    newAPIClient(adminURL),
		schemaID: schemaID,
		logger:   l,
	}
}

func (p *Provider) CreateIdentity(ctx context.Context, email string, fullName string) (identity.Identity, error) {
	password, err := identity.GeneratePassword(identity.DefaultPasswordLength)
	if err != nil {
		return identity.Identity{}, err
	}

	body := client.CreateIdentityBody{
		SchemaId: p.schemaID,
		Traits: map[string]interface{}{
			"email": email,
			"name":  fullName,
		},
		Credentials: &client.IdentityWithCredentials{
			Password: &client.IdentityWithCredentialsPassword{
				Config: &client.IdentityWithCredentialsPasswordConfig{Password: &password},
			},
		},
	}

	created, resp, err := p.admin.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(body).Execute()
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusConflict {
			return identity.Identity{}, identity.ErrAlreadyExists
		}
		return identity.Identity{}, fmt.Errorf("kratos create identity: %w", err)
	}

	p.logger.Info("identity created", zap.String("subject", created.Id))
	return identity.Identity{SubjectID: created.Id, GeneratedPassword: password}, nil
}

func (p *Provider) Authenticate(ctx context.Context, email string, password string) (identity.Session, error) {
	flow, _, err := p.public.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return identity.Session{}, fmt.Errorf("kratos login flow: %w", err)
	}

	body := client.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&client.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	})
	login, resp, err := p.public.FrontendAPI.UpdateLoginFlow(ctx).Flow(flow.Id).UpdateLoginFlowBody(body).Execute()
	if err != nil {
		if resp != nil && resp.StatusCode < http.StatusInternalServerError {
			return identity.Session{}, identity.ErrInvalidCredentials
		}
		return identity.Session{}, fmt.Errorf("kratos login: %w", err)
	}
	if login.SessionToken == nil || login.Session.Identity == nil {
		return identity.Session{}, errors.New("kratos login: session token missing")
	}

	return identity.Session{SubjectID: login.Session.Identity.Id, Token: *login.SessionToken}, nil
}

func (p *Provider) VerifyToken(ctx context.Context, token string) (string, error) {
	session, resp, err := p.public.FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return "", identity.ErrInvalidToken
		}
		return "", fmt.Errorf("kratos whoami: %w", err)
	}
	if session.Identity == nil {
		return "", identity.ErrInvalidToken
	}
	return session.Identity.Id, nil
}

func (p *Provider) Revoke(ctx context.Context, subjectID string) error {
	resp, err := p.admin.IdentityAPI.DeleteIdentitySessions(ctx, subjectID).Execute()
	if err != nil && (resp == nil || resp.StatusCode != http.StatusNotFound) {
		return fmt.Errorf("kratos revoke sessions: %w", err)
	}
	return nil
}

func (p *Provider) DeleteIdentity(ctx context.Context, subjectID string) error {
	resp, err := p.admin.IdentityAPI.DeleteIdentity(ctx, subjectID).Execute()
	if err != nil && (resp == nil || resp.StatusCode != http.StatusNotFound) {
		return fmt.Errorf("kratos delete identity: %w", err)
	}
	return nil
}
