// Package dbtx lets gorm repositories join a transaction that a service
// opened on the underlying *sql.DB.
package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a handle whose statements run on tx. A nil tx returns db unchanged.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}

	// Context forces gorm to clone the statement, so the original handle keeps its pool.
	scoped := db.Session(&gorm.Session{
		NewDB:                  true,
		Context:                context.Background(),
		SkipDefaultTransaction: true,
	})
	scoped.Statement.ConnPool = tx
	return scoped
}
