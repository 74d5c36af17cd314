package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpenCreatesSchema(t *testing.T) {
	db, err := Open(Options{Driver: DriverSQLite, Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	defer Close(db)

	for _, table := range []string{"categories", "products", "movements"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
}

func TestOpenIsIdempotentOnExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventario.db")

	db, err := Open(Options{Driver: DriverSQLite, Path: path, LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("INSERT INTO categories (name) VALUES (?)", "Vitamins").Error)
	require.NoError(t, Close(db))

	db, err = Open(Options{Driver: DriverSQLite, Path: path, LogLevel: "silent"})
	require.NoError(t, err)
	defer Close(db)

	var count int64
	require.NoError(t, db.Table("categories").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUniqueViolationIsTranslated(t *testing.T) {
	db, err := Open(Options{Driver: DriverSQLite, Path: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	defer Close(db)

	type category struct {
		ID   uint
		Name string
	}
	require.NoError(t, db.Table("categories").Create(&category{Name: "Vitamins"}).Error)

	err = db.Table("categories").Create(&category{Name: "Vitamins"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(Options{Driver: "oracle"})
	assert.Error(t, err)
}
