package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readMigration(t *testing.T, pattern string) string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration file matching %s", pattern)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestCatalogItemsMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_catalog_items.sql")

	checks := []string{
		"CREATE TYPE item_type AS ENUM ('lodge', 'activity', 'transport', 'cultural')",
		"CREATE TYPE price_basis AS ENUM ('per_night', 'per_person', 'per_vehicle', 'per_group')",
		"CREATE TABLE catalog_items",
		"CHECK (price >= 0)",
		"idx_catalog_items_type_active",
		"DROP TABLE catalog_items",
	}
	for _, check := range checks {
		if !strings.Contains(content, check) {
			t.Fatalf("catalog items migration missing %q", check)
		}
	}
}

func TestSafariPackagesMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_safari_packages.sql")

	checks := []string{
		"CREATE TABLE safari_packages",
		"CHECK (participants > 0)",
		"lodges JSONB NOT NULL DEFAULT '[]'::jsonb",
		"cultural JSONB NOT NULL DEFAULT '[]'::jsonb",
		"subtotal NUMERIC(12,2) NOT NULL",
		"idx_safari_packages_created_at",
		"DROP TABLE safari_packages",
	}
	for _, check := range checks {
		if !strings.Contains(content, check) {
			t.Fatalf("safari packages migration missing %q", check)
		}
	}
}
