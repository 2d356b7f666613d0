package query

import (
	"time"

	"gorm.io/gorm"
)

// Between filtra column no intervalo fechado [start, end].
func Between(column string, start, end time.Time) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" <= ?", start, end)
	}
}
