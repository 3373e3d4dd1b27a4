package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	// ContextURL is the gin context key the request base URL is stored under.
	ContextURL ContextKey = "crewplan-backend-url"

	// ContextUser is the gin context key the authenticated identity is
	// stored under. It is stamped into the audit fields on writes.
	ContextUser ContextKey = "crewplan-backend-user"
)

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	// Migration with foreign keys disabled since sqlite does not support
	// ALTER COLUMN: tables are copied to a temporary table, then the table
	// is dropped and recreated
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.Callback().Query().After("*").Register("crewplan:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("crewplan:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("crewplan:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("crewplan:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().Before("gorm:create").Register("crewplan:audit_create", auditCreateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().Before("gorm:update").Register("crewplan:version", versionCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().Before("gorm:update").Register("crewplan:audit_update", auditUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("crewplan:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("crewplan:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("crewplan:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// versionCallback increments the version counter on every update.
func versionCallback(db *gorm.DB) {
	if db.Error != nil || db.Statement.Schema == nil {
		return
	}

	if _, ok := db.Statement.Schema.FieldsByName["Version"]; ok {
		db.Statement.SetColumn("Version", gorm.Expr("version + 1"), true)
	}
}

// contextIdentity returns the caller identity the router stored in the
// request context, if there is one.
func contextIdentity(db *gorm.DB) (string, bool) {
	if db.Statement.Context == nil {
		return "", false
	}

	user, ok := db.Statement.Context.Value(string(ContextUser)).(string)
	return user, ok && user != ""
}

// auditCreateCallback stamps the caller identity on new records.
func auditCreateCallback(db *gorm.DB) {
	if db.Error != nil || db.Statement.Schema == nil {
		return
	}

	user, ok := contextIdentity(db)
	if !ok {
		return
	}

	if _, ok := db.Statement.Schema.FieldsByName["CreatedBy"]; ok {
		db.Statement.SetColumn("CreatedBy", user, true)
		db.Statement.SetColumn("UpdatedBy", user, true)
	}
}

// auditUpdateCallback stamps the caller identity on every update.
func auditUpdateCallback(db *gorm.DB) {
	if db.Error != nil || db.Statement.Schema == nil {
		return
	}

	user, ok := contextIdentity(db)
	if !ok {
		return
	}

	if _, ok := db.Statement.Schema.FieldsByName["UpdatedBy"]; ok {
		db.Statement.SetColumn("UpdatedBy", user, true)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// Reference entity names are unique
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed") && strings.HasSuffix(db.Error.Error(), ".name") {
		db.Error = ErrNameNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information
		// to the end user. We log the error and provide a general error
		// message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(
		Department{},
		JobTitle{},
		Skill{},
		AccountManager{},
		Customer{},
		ProjectType{},
		CommercialStatus{},
		Employee{},
		Project{},
		AllocationType{},
		Allocation{},
		AllocationDetail{},
		BankHoliday{},
	)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
