package database

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/trackademic/trackademic/core"
)

func dsn(dbName string, admin bool, conf *core.Config) string {
	user := conf.Database.User
	password := conf.Database.Password
	if admin && conf.Database.AdminUser != "" {
		user = conf.Database.AdminUser
		password = conf.Database.AdminPass
	}

	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		conf.Database.Host, conf.Database.Port, user, password, dbName, sslMode,
	)
}

func open(dbName string, admin bool, conf *core.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if conf.Debug {
		logLevel = logger.Warn
	}
	return gorm.Open(postgres.Open(dsn(dbName, admin, conf)), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
}

func Open(conf *core.Config) (*gorm.DB, error) {
	db, err := open(conf.Database.Name, false, conf)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(db); err != nil {
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "getting underlying DB")
	}

	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		if err = sqlDB.Ping(); err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}
	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// CreateIfNotExist connects to the maintenance database and creates the
// app database when missing. Requires admin credentials in conf.
func CreateIfNotExist(conf *core.Config) error {
	db, err := open("postgres", true, conf)
	if err != nil {
		return errors.Wrap(err, "opening maintenance database")
	}
	if err = ping(db); err != nil {
		return err
	}

	var exists bool
	row := db.Raw("SELECT true FROM pg_database WHERE datname = ?", conf.Database.Name).Row()
	if err = row.Scan(&exists); err != nil && err.Error() != "sql: no rows in result set" {
		return errors.Wrap(err, "checking DB")
	}
	if !exists {
		if err = db.Exec(fmt.Sprintf("CREATE DATABASE %s", conf.Database.Name)).Error; err != nil {
			return errors.Wrap(err, "creating database")
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "getting underlying DB")
	}
	return sqlDB.Close()
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
