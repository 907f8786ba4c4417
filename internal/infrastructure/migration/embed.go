package migration

import (
	"embed"
	"fmt"
	"path"

	"shop/internal/shared/config"
)

// Supported values for the migrate --tool flag.
const (
	ToolGoose         = "goose"
	ToolGolangMigrate = "golang-migrate"
)

// DefaultScriptsRoot is the on-disk location of the scripts, relative to the repository root.
// New migrations are written here; the binary runs the embedded copy.
const DefaultScriptsRoot = "internal/infrastructure/migration/scripts"

//go:embed scripts
var scriptsFS embed.FS

// scriptsSubdir returns the directory holding the scripts of a tool and driver,
// e.g. "goose/postgres".
func scriptsSubdir(tool, driver string) (string, error) {
	var toolDir string
	switch tool {
	case ToolGoose:
		toolDir = "goose"
	case ToolGolangMigrate:
		toolDir = "migrate"
	default:
		return "", fmt.Errorf("unsupported migration tool: %s", tool)
	}

	switch driver {
	case config.DriverMySQL, config.DriverPostgres, config.DriverSQLite:
		return path.Join(toolDir, driver), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

// embeddedDir returns the embedded path of the scripts of a tool and driver.
func embeddedDir(tool, driver string) (string, error) {
	sub, err := scriptsSubdir(tool, driver)
	if err != nil {
		return "", err
	}
	return path.Join("scripts", sub), nil
}
