// Package tira verifies motor cover notes against the TIRA public portal.
package tira

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
	"github.com/mmnete/bimasoft-backend/internal/shared/contextutil"
	"go.uber.org/zap"
)

const (
	paramTypeRegistration = 2

	cacheSize = 1024
	cacheTTL  = 10 * time.Minute
)

var (
	ErrRegistrationRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Registration number is required",
		http.StatusBadRequest,
	)
	ErrNotInsured = apperror.New(
		apperror.CodeInvalidInput,
		"Vehicle is not insured or verification failed",
		http.StatusBadRequest,
	)
	ErrParseResponse = apperror.New(
		apperror.CodeExternalDependency,
		"Error parsing XML response",
		http.StatusInternalServerError,
	)
	ErrUpstream = apperror.New(
		apperror.CodeExternalDependency,
		"An error occurred while verifying the vehicle's insurance.",
		http.StatusInternalServerError,
	)
)

// CoverNote is the data element of a verified response. Inner elements are
// kept as raw XML since the portal does not publish a schema.
type CoverNote struct {
	Fields map[string]string `json:"fields"`
}

type envelope struct {
	XMLName xml.Name `xml:"Response"`
	Error   string   `xml:"error"`
	Data    dataNode `xml:"data"`
}

type dataNode struct {
	Text  string    `xml:",chardata"`
	Items []xmlNode `xml:",any"`
}

type xmlNode struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

//go:generate mockgen -source=tira.go -destination=mock/tira_mock.go -package=mock

type Verifier interface {
	Verify(ctx context.Context, registration string) (CoverNote, error)
}

type verifier struct {
	url     string
	client  *http.Client
	timeout time.Duration
	cache   *expirable.LRU[string, CoverNote]
	logger  *zap.Logger
}

func NewVerifier(url string, client *http.Client, timeout time.Duration, logger ...*zap.Logger) Verifier {
	l := zap.L().Named("tira.verifier")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tira.verifier")
	}
	return &verifier{
		url:     url,
		client:  client,
		timeout: timeout,
		cache:   expirable.NewLRU[string, CoverNote](cacheSize, nil, cacheTTL),
		logger:  l,
	}
}

type verifyRequest struct {
	ParamType   int    `json:"paramType"`
	SearchParam string `json:"searchParam"`
}

func (v *verifier) Verify(ctx context.Context, registration string) (CoverNote, error) {
	reg := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(registration), " ", ""))
	if reg == "" {
		return CoverNote{}, ErrRegistrationRequired
	}
	if note, ok := v.cache.Get(reg); ok {
		return note, nil
	}
	rid := contextutil.GetRequestID(ctx)

	raw, err := v.post(ctx, reg)
	if err != nil {
		v.logger.Error("tira request failed", zap.String("request_id", rid), zap.Error(err))
		return CoverNote{}, ErrUpstream.WithCause(err)
	}

	var env envelope
	if err := xml.Unmarshal(raw, &env); err != nil {
		v.logger.Warn("tira response not xml", zap.String("request_id", rid), zap.Error(err))
		return CoverNote{}, ErrParseResponse
	}
	if strings.TrimSpace(env.Error) != "false" {
		v.logger.Info("vehicle not verified", zap.String("request_id", rid), zap.String("registration", reg))
		return CoverNote{}, ErrNotInsured
	}

	note := CoverNote{Fields: make(map[string]string, len(env.Data.Items))}
	for _, item := range env.Data.Items {
		note.Fields[item.XMLName.Local] = strings.TrimSpace(item.Text)
	}
	if len(note.Fields) == 0 && strings.TrimSpace(env.Data.Text) != "" {
		note.Fields["data"] = strings.TrimSpace(env.Data.Text)
	}
	v.cache.Add(reg, note)

	v.logger.Info("vehicle verified", zap.String("request_id", rid), zap.String("registration", reg))
	return note, nil
}

func (v *verifier) post(ctx context.Context, reg string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	body, err := json.Marshal(verifyRequest{ParamType: paramTypeRegistration, SearchParam: reg})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/xml")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	// The portal answers failures with an XML envelope too, so only a
	// non-XML 5xx is an upstream error.
	if resp.StatusCode >= http.StatusInternalServerError && !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("<")) {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return raw, nil
}
