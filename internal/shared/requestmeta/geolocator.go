package requestmeta

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=geolocator.go -destination=mock/geolocator_mock.go -package=mock

// Geolocator resolves an IP to a human readable location. Lookups are best
// effort: failures yield "".
type Geolocator interface {
	Lookup(ctx context.Context, ip string) string
}

type httpGeolocator struct {
	client      *http.Client
	urlTemplate string
	logger      *zap.Logger
}

// NewHTTPGeolocator queries an ip-api.com compatible endpoint. urlTemplate
// must contain one %s for the IP.
func NewHTTPGeolocator(urlTemplate string, timeout time.Duration, logger ...*zap.Logger) Geolocator {
	l := zap.L().Named("requestmeta.geolocator")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("requestmeta.geolocator")
	}
	return &httpGeolocator{
		client:      &http.Client{Timeout: timeout},
		urlTemplate: urlTemplate,
		logger:      l,
	}
}

type geoResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	Country    string `json:"country"`
	RegionName string `json:"regionName"`
	City       string `json:"city"`
}

func (g *httpGeolocator) Lookup(ctx context.Context, ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(g.urlTemplate, ip), nil)
	if err != nil {
		g.logger.Warn("build geolocation request failed", zap.Error(err))
		return ""
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("geolocation lookup failed", zap.String("ip", ip), zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Warn("geolocation lookup non-200", zap.String("ip", ip), zap.Int("status", resp.StatusCode))
		return ""
	}

	var body geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		g.logger.Warn("decode geolocation response failed", zap.Error(err))
		return ""
	}
	if body.Status != "" && body.Status != "success" {
		g.logger.Debug("geolocation not resolved", zap.String("ip", ip), zap.String("reason", body.Message))
		return ""
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{body.City, body.RegionName, body.Country} {
		if p != "" && (len(parts) == 0 || parts[len(parts)-1] != p) {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
