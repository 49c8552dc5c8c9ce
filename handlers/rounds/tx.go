package rounds

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds a row-level lock to a round query. Participants and
// their scores live in one JSONB document per round, so every mutation must
// re-read the row under this lock inside a transaction; an unlocked
// read-modify-write would overwrite whatever a concurrent writer committed
// in between.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
