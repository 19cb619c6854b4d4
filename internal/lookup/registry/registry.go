// Package registry searches the embedded lists of licensed insurance
// companies and brokers so onboarding forms can be prefilled.
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	KindCompany = "company"
	KindBroker  = "broker"

	minQueryLength = 2
)

//go:embed data/insurance_companies.json
var companiesFile []byte

//go:embed data/insurance_brokers.json
var brokersFile []byte

type record struct {
	CompanyName     string `json:"company_name"`
	DateOfLicense   string `json:"date_of_license"`
	NumberOfLicense string `json:"number_of_license"`
	Status          string `json:"status"`
	Country         string `json:"country"`
	Phone           string `json:"phone_number"`
	Email           string `json:"email"`
	Address         string `json:"address"`
	ProfileURL      string `json:"profile_url"`
}

// Entity is a registry hit shaped like the onboarding payload.
type Entity struct {
	LegalName         string `json:"legalName"`
	TiraLicense       string `json:"tiraLicense"`
	DateOfLicense     string `json:"dateOfLicense"`
	LicenseStatus     string `json:"licenseStatus"`
	ContactEmail      string `json:"contactEmail"`
	ContactPhone      string `json:"contactPhone"`
	AdminEmail        string `json:"adminEmail"`
	Country           string `json:"country"`
	Address           string `json:"address"`
	CompanyDetailsURL string `json:"companyDetailsUrl"`
	Type              string `json:"type"`
}

type Searcher interface {
	Search(kind, query string) []Entity
	SearchAll(query string) []Entity
}

// Registry holds both datasets in memory. It is read-only after New.
type Registry struct {
	sets map[string][]record
}

func New() (*Registry, error) {
	companies, err := parse(companiesFile)
	if err != nil {
		return nil, fmt.Errorf("parse company registry: %w", err)
	}
	brokers, err := parse(brokersFile)
	if err != nil {
		return nil, fmt.Errorf("parse broker registry: %w", err)
	}
	return newRegistry(companies, brokers), nil
}

func newRegistry(companies, brokers []record) *Registry {
	return &Registry{sets: map[string][]record{
		KindCompany: companies,
		KindBroker:  brokers,
	}}
}

func parse(raw []byte) ([]record, error) {
	var rows []record
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Search matches query case-insensitively anywhere in the company name.
// Queries shorter than two characters return an empty slice.
func (r *Registry) Search(kind, query string) []Entity {
	out := []Entity{}
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < minQueryLength {
		return out
	}
	for _, rec := range r.sets[kind] {
		if strings.Contains(strings.ToLower(rec.CompanyName), q) {
			out = append(out, toEntity(rec, kind))
		}
	}
	return out
}

func (r *Registry) SearchAll(query string) []Entity {
	return append(r.Search(KindCompany, query), r.Search(KindBroker, query)...)
}

func toEntity(rec record, kind string) Entity {
	return Entity{
		LegalName:         rec.CompanyName,
		TiraLicense:       rec.NumberOfLicense,
		DateOfLicense:     rec.DateOfLicense,
		LicenseStatus:     rec.Status,
		ContactEmail:      rec.Email,
		ContactPhone:      rec.Phone,
		AdminEmail:        rec.Email,
		Country:           rec.Country,
		Address:           rec.Address,
		CompanyDetailsURL: rec.ProfileURL,
		Type:              kind,
	}
}
