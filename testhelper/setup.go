package testhelper

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestDatabaseDSNEnv names the variable holding the Postgres DSN of the test database
const TestDatabaseDSNEnv = "TEST_DATABASE_DSN"

// envFiles are searched upwards from the package directory under test
var envFiles = []string{
	".env.test",
	"../.env.test",
	"../../.env.test",
}

// SetupTestDB connects to the test database and auto-migrates the given models.
// The test is skipped when no DSN is configured.
func SetupTestDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	dsn := os.Getenv(TestDatabaseDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping database test", TestDatabaseDSNEnv)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			t.Fatalf("failed auto migrating test models: %v", err)
		}
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// TruncateTables empties the given tables between tests
func TruncateTables(t *testing.T, db *gorm.DB, tables ...string) {
	t.Helper()
	for _, table := range tables {
		if err := db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error; err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}
