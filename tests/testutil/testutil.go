package testutil

import (
	"os"
	"testing"

	"github.com/kendall-kelly/essay-orders-api/config"
	"github.com/stretchr/testify/require"
)

// RequireTestEnvironment ensures that tests are running in the test environment.
// This prevents accidental execution of tests against production or development databases.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("SAFETY CHECK FAILED: Tests must run with GO_ENV=test to prevent data loss. Current GO_ENV=%q. Set GO_ENV=test before running tests.", env)
	}
}

// LoadTestConfig loads configuration from a fixed test environment and
// installs it as the package configuration.
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	t.Setenv("GO_ENV", "test")
	t.Setenv("DATABASE_URL", "sqlite://memory")
	t.Setenv("AUTH0_DOMAIN", "test.auth0.com")
	t.Setenv("AUTH0_AUDIENCE", "https://api.test.com")
	t.Setenv("AWS_S3_BUCKET", "")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}
