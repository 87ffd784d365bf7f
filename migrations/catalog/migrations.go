// Package catalog embeds the goose migrations for the catalog tables.
// Each storage driver has its own directory because the dialects differ.
package catalog

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Dir returns the migration directory inside FS for the given driver.
func Dir(driver string) string {
	if driver == "sqlite" {
		return "sqlite"
	}
	return "postgres"
}
