// Package access authorizes API clients. Each configured API key resolves to
// a client subject and casbin decides which routes that subject may call.
package access

import (
	"crypto/subtle"
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

const (
	ClientBackoffice = "backoffice"
	ClientLookup     = "lookup"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj) && regexMatch(r.act, p.act)
`

// defaultPolicies grants the backoffice key everything and the lookup key
// read-only access to the public-data lookups.
var defaultPolicies = [][]string{
	{ClientBackoffice, "/api/v1/*", "GET|POST|PUT|DELETE|PATCH"},
	{ClientLookup, "/api/v1/motor-details", "GET"},
	{ClientLookup, "/api/v1/insurance/companies/search-company", "GET"},
	{ClientLookup, "/api/v1/insurance/brokers/search-broker", "GET"},
	{ClientLookup, "/api/v1/insurance/search-entity", "GET"},
	{ClientLookup, "/api/v1/motor/verify", "POST"},
}

type EnforceRequest struct {
	Client string
	Path   string
	Method string
}

//go:generate mockgen -source=access.go -destination=mock/access_mock.go -package=mock
type Service interface {
	// ResolveKey returns the client owning key.
	ResolveKey(key string) (string, bool)
	Enforce(req EnforceRequest) (bool, error)
}

type apiKey struct {
	key    []byte
	client string
}

type service struct {
	keys     []apiKey
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

// NewService builds the enforcer from the embedded model. keys maps an API
// key to its client subject. Empty keys are ignored.
func NewService(keys map[string]string, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("access.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}

	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("access model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("access enforcer: %w", err)
	}
	if _, err := enforcer.AddPolicies(defaultPolicies); err != nil {
		return nil, fmt.Errorf("access policies: %w", err)
	}

	s := &service{enforcer: enforcer, logger: l}
	for key, client := range keys {
		if key == "" {
			continue
		}
		s.keys = append(s.keys, apiKey{key: []byte(key), client: client})
	}
	return s, nil
}

func (s *service) ResolveKey(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	candidate := []byte(key)
	for _, k := range s.keys {
		if subtle.ConstantTimeCompare(candidate, k.key) == 1 {
			return k.client, true
		}
	}
	return "", false
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(req.Client, req.Path, req.Method)
	if err != nil {
		s.logger.Error("access enforce failed",
			zap.String("client", req.Client),
			zap.String("path", req.Path),
			zap.String("method", req.Method),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("access enforce result",
		zap.String("client", req.Client),
		zap.String("path", req.Path),
		zap.String("method", req.Method),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
