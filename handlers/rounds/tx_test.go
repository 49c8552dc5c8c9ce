package rounds

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fieldscore/models"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=fieldscore dbname=fieldscore"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestLockForUpdateEmitsRowLock(t *testing.T) {
	db := dryRunDB(t)

	var round models.Round
	stmt := lockForUpdate(db).Where("id = ?", "round-1").Find(&round).Statement

	sql := stmt.SQL.String()
	require.True(t, strings.HasSuffix(sql, "FOR UPDATE"), "expected row lock, got: %s", sql)
}
