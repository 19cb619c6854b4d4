package vehicle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

//go:generate mockgen -source=vehicle_sources.go -destination=mock/vehicle_sources_mock.go -package=mock

// Source is one upstream catalog.
type Source interface {
	Name() string
	Models(ctx context.Context, brand string) ([]Model, error)
}

func getJSON(ctx context.Context, client *http.Client, timeout time.Duration, target string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 4<<20))
}

type nhtsaSource struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// NewNHTSASource queries the vPIC GetModelsForMake endpoint under baseURL.
func NewNHTSASource(baseURL string, client *http.Client, timeout time.Duration) Source {
	return &nhtsaSource{baseURL: strings.TrimRight(baseURL, "/"), client: client, timeout: timeout}
}

func (s *nhtsaSource) Name() string { return "nhtsa" }

type nhtsaResponse struct {
	Results []struct {
		MakeName        string `json:"Make_Name"`
		ModelName       string `json:"Model_Name"`
		VehicleTypeName string `json:"VehicleTypeName"`
	} `json:"Results"`
}

func (s *nhtsaSource) Models(ctx context.Context, brand string) ([]Model, error) {
	target := fmt.Sprintf("%s/GetModelsForMake/%s?format=json", s.baseURL, url.PathEscape(brand))
	raw, err := getJSON(ctx, s.client, s.timeout, target)
	if err != nil {
		return nil, err
	}
	var body nhtsaResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode nhtsa response: %w", err)
	}

	out := make([]Model, 0, perSourceLimit)
	for _, r := range body.Results {
		if len(out) == perSourceLimit {
			break
		}
		out = append(out, Model{Make: r.MakeName, Model: r.ModelName, VehicleType: orUnknown(r.VehicleTypeName)})
	}
	return out, nil
}

type carQuerySource struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

func NewCarQuerySource(baseURL string, client *http.Client, timeout time.Duration) Source {
	return &carQuerySource{baseURL: baseURL, client: client, timeout: timeout}
}

func (s *carQuerySource) Name() string { return "carquery" }

type carQueryResponse struct {
	Models []struct {
		MakeDisplay string `json:"make_display"`
		MakeID      string `json:"model_make_id"`
		ModelName   string `json:"model_name"`
		VehicleType string `json:"model_vehicle_type"`
	} `json:"Models"`
}

func (s *carQuerySource) Models(ctx context.Context, brand string) ([]Model, error) {
	target := s.baseURL + "?cmd=getModels&make=" + url.QueryEscape(brand)
	raw, err := getJSON(ctx, s.client, s.timeout, target)
	if err != nil {
		return nil, err
	}
	var body carQueryResponse
	if err := json.Unmarshal(unwrapJSONP(raw), &body); err != nil {
		return nil, fmt.Errorf("decode carquery response: %w", err)
	}

	out := make([]Model, 0, perSourceLimit)
	for _, m := range body.Models {
		if len(out) == perSourceLimit {
			break
		}
		name := m.MakeDisplay
		if name == "" {
			name = m.MakeID
		}
		out = append(out, Model{Make: name, Model: m.ModelName, VehicleType: orUnknown(m.VehicleType)})
	}
	return out, nil
}

// unwrapJSONP strips the "?(...);" wrapper CarQuery adds when no callback
// parameter is sent.
func unwrapJSONP(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	start := bytes.IndexByte(trimmed, '(')
	if start < 0 || bytes.HasPrefix(trimmed, []byte("{")) {
		return trimmed
	}
	end := bytes.LastIndexByte(trimmed, ')')
	if end <= start {
		return trimmed
	}
	return trimmed[start+1 : end]
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return CategoryUnknown
	}
	return s
}
