package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shop/internal/shared/logger"
)

// Generator creates golang-migrate style up/down script pairs
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

// NewGenerator creates a new migration generator
func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration creates a new migration file pair (up and down)
func (g *Generator) CreateMigration(name string) error {
	name = normalizeName(name)
	if name == "" {
		return fmt.Errorf("migration name is required")
	}

	g.logger.Infow("creating new migration", "name", name)

	// Generate timestamp
	created := g.now().UTC()
	timestamp := created.Format("20060102150405")

	upFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	// Ensure scripts directory exists
	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if err := g.writeFile(upFilePath, g.generateUpMigrationTemplate(name, created)); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}

	if err := g.writeFile(downFilePath, g.generateDownMigrationTemplate(name, created)); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

// writeFile writes content to a new file and refuses to overwrite
func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

func (g *Generator) generateUpMigrationTemplate(name string, created time.Time) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- Add your SQL statement here (one statement per file for MySQL)
`, name, created.Format("2006-01-02 15:04:05"))
}

func (g *Generator) generateDownMigrationTemplate(name string, created time.Time) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s

-- Add your rollback SQL statement here
`, name, created.Format("2006-01-02 15:04:05"))
}

// normalizeName turns "Add Index" into "add_index"
func normalizeName(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, "_")
}

func joinDir(root, sub string) string {
	if root == "" {
		root = DefaultScriptsRoot
	}
	return filepath.Join(root, filepath.FromSlash(sub))
}
