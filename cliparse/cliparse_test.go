// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected sqlite backend, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "raypark.db" {
		t.Errorf("expected default sqlite file, got %s", cfg.DatabaseURL)
	}
	if cfg.AdminUsername != DefaultAdminUsername || cfg.AdminPassword != DefaultAdminPassword {
		t.Errorf("expected built-in credentials, got %s/%s", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.LoginDelay != DefaultLoginDelay {
		t.Errorf("expected login delay %v, got %v", DefaultLoginDelay, cfg.LoginDelay)
	}
	if cfg.AutofillEnabled {
		t.Error("autofill should be disabled by default")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("ADMIN_USERNAME", "manager")
	os.Setenv("LOGIN_DELAY", "0s")
	os.Setenv("AUTOFILL_ENABLED", "true")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.AdminUsername != "manager" {
		t.Errorf("expected username from env, got %s", cfg.AdminUsername)
	}
	if cfg.LoginDelay != 0 {
		t.Errorf("expected zero login delay, got %v", cfg.LoginDelay)
	}
	if !cfg.AutofillEnabled {
		t.Error("expected autofill enabled from env")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-t", "memory", "-login-delay", "250ms", "-autofill"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "memory" {
		t.Errorf("expected memory backend, got %s", cfg.DatabaseType)
	}
	if cfg.LoginDelay != 250*time.Millisecond {
		t.Errorf("expected 250ms delay, got %v", cfg.LoginDelay)
	}
	if !cfg.AutofillEnabled {
		t.Error("expected autofill enabled from flag")
	}
}

func TestParseFlags_Errors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port", map[string]string{"PORT": "abc"}, nil},
		{"unknown backend", nil, []string{"-t", "mongo"}},
		{"postgres without url", nil, []string{"-t", "postgres"}},
		{"bad login delay", map[string]string{"LOGIN_DELAY": "soon"}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Clearenv()
			defer os.Clearenv()
			for k, v := range tc.env {
				os.Setenv(k, v)
			}

			if _, err := ParseFlags(tc.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
