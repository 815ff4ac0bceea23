package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateAdminCommand(t *testing.T) {
	t.Setenv("LPG_DB_DSN", filepath.Join(t.TempDir(), "cli.db")+"?_pragma=foreign_keys(1)")
	t.Setenv("LPG_LOG_LEVEL", "error")
	t.Setenv("LPG_BCRYPT_COST", "4")
	t.Setenv("LPG_ADMIN_PASSWORD", "root-pass")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"create-admin",
		"--username", "root",
		"--email", "root@example.com",
		"--phone", "+910000000000",
		"--address", "HQ",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Expected admin to be created, got %v", err)
	}
	if !strings.Contains(out.String(), `created admin "root"`) {
		t.Errorf("Unexpected output: %q", out.String())
	}

	rootCmd.SetArgs([]string{"create-admin",
		"--username", "root",
		"--email", "root@example.com",
		"--phone", "+910000000000",
		"--address", "HQ",
	})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected duplicate admin to fail")
	}
}

func TestMigrateCommand(t *testing.T) {
	t.Setenv("LPG_DB_DSN", filepath.Join(t.TempDir(), "migrate.db"))
	t.Setenv("LPG_LOG_LEVEL", "error")
	rootCmd.SetArgs([]string{"migrate"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Expected migrate to succeed, got %v", err)
	}
}
