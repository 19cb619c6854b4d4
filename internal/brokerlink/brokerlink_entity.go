package brokerlink

import "time"

const linkTable = "brokers_companies"

// Relation is one broker acting for one insurance company.
type Relation struct {
	BrokerID  int64     `gorm:"column:broker_id;primaryKey"`
	CompanyID int64     `gorm:"column:company_id;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at;<-:false"`
}
