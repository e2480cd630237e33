package tenant

import "gorm.io/gorm"

// Scope narrows a query to one tenant. Every repository query against a
// tenant-scoped table goes through this; nothing else appends the
// tenant_id predicate.
func Scope(tenantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}
