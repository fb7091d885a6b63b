package manifest

import (
	"testing"
)

func TestValidateAcceptsGeneratedManifest(t *testing.T) {
	dir := t.TempDir()
	m := New("my-app", map[string]string{"dev": "node index.js"})
	if err := Write(dir, m); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	result, err := ValidateFile(dir)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("fresh manifest should validate, issues: %+v", result.Issues)
	}
}

func TestValidateRejectsBadManifest(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing version", `{"name": "my-app"}`},
		{"bad name casing", `{"name": "MyApp", "version": "0.0.1"}`},
		{"non-string script", `{"name": "my-app", "version": "0.0.1", "scripts": {"dev": 1}}`},
		{"java without dependencies", `{"name": "my-app", "version": "0.0.1", "java": {}}`},
		{"incomplete maven coordinate", `{"name": "my-app", "version": "0.0.1", "java": {"dependencies": [{"groupId": "org.apache.hive"}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid {
				t.Error("expected validation issues, got none")
			}
			if len(result.Issues) == 0 {
				t.Error("invalid manifest should report at least one issue")
			}
		})
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if _, err := Validate([]byte("{not json")); err == nil {
		t.Error("Validate() should fail on malformed JSON")
	}
}
