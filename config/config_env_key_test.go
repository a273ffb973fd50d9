package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "postgres",
			},
		},
		"database": map[string]any{
			"autoMigrate":  true,
			"migrationUrl": "",
		},
		"googleOAuth": map[string]any{
			"clientId": "",
			"stateTTL": "10m",
		},
		"secretKey": map[string]any{
			"access":  "",
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DATABASE_AUTOMIGRATE", want: "database.autoMigrate"},
		{envKey: "DATABASE_MIGRATIONURL", want: "database.migrationUrl"},
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
		{envKey: "GOOGLEOAUTH_STATETTL", want: "googleOAuth.stateTTL"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
