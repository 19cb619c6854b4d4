package organization

import "time"

type OrganizationResponse struct {
	ID                int64           `json:"id"`
	OrganizationType  string          `json:"organizationType"`
	LegalName         string          `json:"legalName"`
	BrelaNumber       string          `json:"brelaNumber"`
	TinNumber         string          `json:"tinNumber"`
	ContactEmail      string          `json:"contactEmail"`
	ContactPhone      string          `json:"contactPhone"`
	TiraLicense       *string         `json:"tiraLicense,omitempty"`
	PhysicalAddress   Address         `json:"physicalAddress"`
	InsuranceTypes    []string        `json:"insuranceTypes"`
	PaymentMethods    []PaymentMethod `json:"paymentMethods"`
	CompanyDetailsURL *string         `json:"companyDetailsUrl,omitempty"`
	AccountStatus     string          `json:"accountStatus"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

type CreationMetadata struct {
	PerformedBy     *string    `json:"performedBy,omitempty"`
	IPAddress       *string    `json:"ipAddress,omitempty"`
	DeviceType      *string    `json:"deviceType,omitempty"`
	OperatingSystem *string    `json:"operatingSystem,omitempty"`
	Browser         *string    `json:"browser,omitempty"`
	Geolocation     *string    `json:"geolocation,omitempty"`
	RecordedAt      *time.Time `json:"recordedAt,omitempty"`
}

type PendingOrganizationResponse struct {
	OrganizationResponse
	Metadata *CreationMetadata `json:"metadata,omitempty"`
}

func ToResponse(org Organization) OrganizationResponse {
	types := []string(org.InsuranceTypes)
	if types == nil {
		types = []string{}
	}
	methods := []PaymentMethod(org.PaymentMethods)
	if methods == nil {
		methods = []PaymentMethod{}
	}
	return OrganizationResponse{
		ID:                org.ID,
		OrganizationType:  org.OrganizationType,
		LegalName:         org.LegalName,
		BrelaNumber:       org.BrelaNumber,
		TinNumber:         org.TinNumber,
		ContactEmail:      org.ContactEmail,
		ContactPhone:      org.ContactPhone,
		TiraLicense:       org.TiraLicense,
		PhysicalAddress:   org.PhysicalAddress.Data(),
		InsuranceTypes:    types,
		PaymentMethods:    methods,
		CompanyDetailsURL: org.CompanyDetailsURL,
		AccountStatus:     org.AccountStatus,
		CreatedAt:         org.CreatedAt,
		UpdatedAt:         org.UpdatedAt,
	}
}

func toResponses(orgs []Organization) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, ToResponse(o))
	}
	return out
}

func toPendingResponse(p PendingOrganization) PendingOrganizationResponse {
	resp := PendingOrganizationResponse{OrganizationResponse: ToResponse(p.Organization)}
	if p.PerformedBy != nil || p.RecordedAt != nil {
		resp.Metadata = &CreationMetadata{
			PerformedBy:     p.PerformedBy,
			IPAddress:       p.IPAddress,
			DeviceType:      p.DeviceType,
			OperatingSystem: p.OperatingSystem,
			Browser:         p.Browser,
			Geolocation:     p.Geolocation,
			RecordedAt:      p.RecordedAt,
		}
	}
	return resp
}
