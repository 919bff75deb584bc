package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePath_Security(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expectError bool
		errorType   string
	}{
		{
			name:        "valid relative path",
			path:        "./src/locales",
			expectError: false,
		},
		{
			name:        "valid absolute path",
			path:        "/srv/app/locales",
			expectError: false,
		},
		{
			name:        "empty path",
			path:        "",
			expectError: true,
			errorType:   "empty path",
		},
		{
			name:        "command injection in path",
			path:        "./locales; rm -rf /",
			expectError: true,
			errorType:   "dangerous character",
		},
		{
			name:        "pipe in path",
			path:        "./locales | cat /etc/passwd",
			expectError: true,
			errorType:   "dangerous character",
		},
		{
			name:        "backtick in path",
			path:        "./locales`whoami`",
			expectError: true,
			errorType:   "dangerous character",
		},
		{
			name:        "dollar in path",
			path:        "./locales$(malicious)",
			expectError: true,
			errorType:   "dangerous character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath(tt.path)

			if tt.expectError {
				assert.Error(t, err, "Expected error for test case: %s", tt.name)
				if tt.errorType != "" {
					assert.Contains(t, strings.ToLower(err.Error()), tt.errorType)
				}
			} else {
				assert.NoError(t, err, "Expected no error for test case: %s", tt.name)
			}
		})
	}
}

func TestSecurityRegression_OutputPaths(t *testing.T) {
	attacks := []string{
		"../../../etc/passwd",
		"..",
		"/etc/cron.d",
		"out;rm -rf ~",
		"out&&curl evil",
		"out>log",
	}

	for _, path := range attacks {
		t.Run(path, func(t *testing.T) {
			cfg := Default()
			cfg.Generate.Output = path
			assert.Error(t, cfg.Validate(), "generate output %q should be rejected", path)

			cfg = Default()
			cfg.Export.Output = path
			assert.Error(t, cfg.Validate(), "export output %q should be rejected", path)
		})
	}
}
