package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "http://localhost:8002",
			"timeout": "30s",
		},
		"export": map[string]any{
			"bucketUrl": "",
			"fileName":  "",
		},
		"stub": map[string]any{
			"maxRequestBodySize": "",
			"qrSize":             0,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "API_TIMEOUT", want: "api.timeout"},
		{envKey: "EXPORT_BUCKETURL", want: "export.bucketUrl"},
		{envKey: "EXPORT_FILENAME", want: "export.fileName"},
		{envKey: "STUB_MAXREQUESTBODYSIZE", want: "stub.maxRequestBodySize"},
		{envKey: "STUB_QRSIZE", want: "stub.qrSize"},
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
