package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"shop/internal/shared/config"
	"shop/internal/shared/logger"
)

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(db *gorm.DB, models ...interface{}) error
	// GetName returns the strategy name
	GetName() string
}

// ScriptStrategy is a Strategy backed by versioned SQL scripts.
type ScriptStrategy interface {
	Strategy
	MigrateDown(db *gorm.DB, steps int) error
	GetVersion(db *gorm.DB) (int64, error)
	Status(db *gorm.DB) error
	// Create writes a new migration named name below dir
	Create(dir, name string) error
}

// NewScriptStrategy returns the script strategy of the given tool for driver.
func NewScriptStrategy(tool, driver string, log logger.Interface) (ScriptStrategy, error) {
	switch tool {
	case ToolGoose, "":
		return NewGooseStrategy(driver, log)
	case ToolGolangMigrate:
		return NewGolangMigrateStrategy(driver, log)
	default:
		return nil, fmt.Errorf("unsupported migration tool: %s", tool)
	}
}

// GormAutoMigrateStrategy creates and alters tables from the GORM models
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) Strategy {
	return &GormAutoMigrateStrategy{
		logger: log.With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto migration", "models_count", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// GolangMigrateStrategy implements migration using golang-migrate
type GolangMigrateStrategy struct {
	driver     string
	scriptsDir string
	logger     logger.Interface
}

// NewGolangMigrateStrategy creates a new golang-migrate strategy
func NewGolangMigrateStrategy(driver string, log logger.Interface) (ScriptStrategy, error) {
	dir, err := embeddedDir(ToolGolangMigrate, driver)
	if err != nil {
		return nil, err
	}

	return &GolangMigrateStrategy{
		driver:     driver,
		scriptsDir: dir,
		logger:     log.With("component", "migration.golang-migrate"),
	}, nil
}

// Migrate executes golang-migrate migration
func (s *GolangMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting golang-migrate migration",
		"scripts_path", s.scriptsDir)

	m, err := s.createMigrateInstance(db)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	// Get current version
	currentVersion, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		s.logger.Errorw("failed to get current migration version", "error", err)
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	s.logger.Infow("current migration status",
		"version", currentVersion,
		"dirty", dirty)

	// Check if database is dirty
	if dirty {
		s.logger.Warnw("database is in dirty state, please fix manually")
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	// Run migrations
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Get final version
	finalVersion, _, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		s.logger.Errorw("failed to get final migration version", "error", err)
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

// GetName returns the strategy name
func (s *GolangMigrateStrategy) GetName() string {
	return "golang_migrate"
}

// createMigrateInstance creates a new migrate instance over a dedicated connection.
// Closing a migrate instance closes its database, so the caller's pool is never handed over.
func (s *GolangMigrateStrategy) createMigrateInstance(db *gorm.DB) (*migrate.Migrate, error) {
	conn, err := gorm.Open(db.Dialector, &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		return nil, fmt.Errorf("failed to open migration connection: %w", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	driver, name, err := s.databaseDriver(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	source, err := iofs.New(scriptsFS, s.scriptsDir)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to open embedded scripts: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, name, driver)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return m, nil
}

func (s *GolangMigrateStrategy) databaseDriver(sqlDB *sql.DB) (migratedb.Driver, string, error) {
	switch s.driver {
	case config.DriverMySQL:
		driver, err := mysql.WithInstance(sqlDB, &mysql.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create MySQL driver: %w", err)
		}
		return driver, "mysql", nil
	case config.DriverPostgres:
		driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create PostgreSQL driver: %w", err)
		}
		return driver, "postgres", nil
	case config.DriverSQLite:
		driver, err := sqlite3.WithInstance(sqlDB, &sqlite3.Config{})
		if err != nil {
			return nil, "", fmt.Errorf("failed to create SQLite driver: %w", err)
		}
		return driver, "sqlite3", nil
	default:
		return nil, "", fmt.Errorf("unsupported database driver: %s", s.driver)
	}
}

// MigrateDown rolls back the given number of migrations
func (s *GolangMigrateStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	m, err := s.createMigrateInstance(db)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	// Execute down migrations
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.logger.Errorw("down migration failed", "error", err)
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

// GetVersion returns the current migration version, 0 when nothing was applied
func (s *GolangMigrateStrategy) GetVersion(db *gorm.DB) (int64, error) {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return 0, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return int64(version), nil
}

// Status logs the current version and dirty flag
func (s *GolangMigrateStrategy) Status(db *gorm.DB) error {
	m, err := s.createMigrateInstance(db)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get status: %w", err)
	}

	s.logger.Infow("migration status", "version", version, "dirty", dirty)
	return nil
}

// Create writes an up/down script pair for the strategy's driver below dir
func (s *GolangMigrateStrategy) Create(dir, name string) error {
	sub, err := scriptsSubdir(ToolGolangMigrate, s.driver)
	if err != nil {
		return err
	}
	return NewGenerator(joinDir(dir, sub), s.logger).CreateMigration(name)
}

type GooseStrategy struct {
	driver     string
	dialect    string
	scriptsDir string
	logger     logger.Interface
}

func NewGooseStrategy(driver string, log logger.Interface) (ScriptStrategy, error) {
	dir, err := embeddedDir(ToolGoose, driver)
	if err != nil {
		return nil, err
	}

	dialect := driver
	if driver == config.DriverSQLite {
		dialect = "sqlite3"
	}

	return &GooseStrategy{
		driver:     driver,
		dialect:    dialect,
		scriptsDir: dir,
		logger:     log.With("component", "migration.goose"),
	}, nil
}

// prepare points goose at the embedded scripts and the strategy's dialect
func (s *GooseStrategy) prepare(db *gorm.DB) (*sql.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect(s.dialect); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return sqlDB, nil
}

func (s *GooseStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting goose migration",
		"scripts_path", s.scriptsDir)

	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get current version", "error", err)
		return fmt.Errorf("failed to get current version: %w", err)
	}

	s.logger.Infow("current migration status",
		"version", currentVersion)

	if err := goose.Up(sqlDB, s.scriptsDir); err != nil {
		s.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		s.logger.Errorw("failed to get final version", "error", err)
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, s.scriptsDir); err != nil {
			s.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Infow("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return 0, err
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}

	return version, nil
}

func (s *GooseStrategy) Status(db *gorm.DB) error {
	sqlDB, err := s.prepare(db)
	if err != nil {
		return err
	}

	if err := goose.Status(sqlDB, s.scriptsDir); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	return nil
}

// Create writes a goose SQL migration for the strategy's driver below dir
func (s *GooseStrategy) Create(dir, name string) error {
	sub, err := scriptsSubdir(ToolGoose, s.driver)
	if err != nil {
		return err
	}

	// new files go to disk, not to the embedded copy
	goose.SetBaseFS(nil)
	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	target := joinDir(dir, sub)
	if err := os.MkdirAll(target, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}
	if err := goose.Create(nil, target, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Infow("migration created successfully", "name", name, "dir", target)
	return nil
}
