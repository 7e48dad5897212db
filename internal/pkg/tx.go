package pkg

import "gorm.io/gorm"

// WithTx runs fn inside a transaction started on db. It commits when fn
// returns nil and rolls back on error or panic; a panic is re-raised after
// the rollback.
//
// db may be pinned to a single connection (see BaseDAO.Execute); the
// transaction then runs on that connection.
func WithTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	committed = true
	return tx.Commit().Error
}
