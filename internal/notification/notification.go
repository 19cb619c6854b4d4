package notification

import "context"

type Kind string

const (
	KindWelcome         Kind = "welcome"
	KindCredentials     Kind = "credentials"
	KindApprovalRequest Kind = "approval_request"
)

// TemplateData carries the values a template may reference. Unused fields
// are ignored.
type TemplateData struct {
	Name           string
	Email          string
	Password       string
	LoginURL       string
	CompanyName    string
	CompanyEmail   string
	CompanyAddress string
}

//go:generate mockgen -source=notification.go -destination=mock/notification_mock.go -package=mock

type Notifier interface {
	Send(ctx context.Context, to string, kind Kind, data TemplateData) error
}
