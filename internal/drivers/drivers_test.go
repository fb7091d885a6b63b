package drivers

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

func TestTypesSorted(t *testing.T) {
	types, err := Types()
	if err != nil {
		t.Fatalf("Types() error: %v", err)
	}
	if len(types) == 0 {
		t.Fatal("registry is empty")
	}
	if !sort.StringsAreSorted(types) {
		t.Errorf("Types() = %v, want sorted", types)
	}
	for _, want := range []string{"postgres", "mysql", "bigquery", "hive", "jdbc"} {
		found := false
		for _, got := range types {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Types() missing %q", want)
		}
	}
}

func TestPackages(t *testing.T) {
	tests := []struct {
		dbType string
		want   []string
	}{
		{"postgres", []string{"@quarry/postgres-driver"}},
		{"redshift", []string{"@quarry/postgres-driver"}}, // wire-compatible
		{"hive", []string{JDBCPackage}},
		{"jdbc", []string{JDBCPackage}},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			got, err := Packages(tt.dbType)
			if err != nil {
				t.Fatalf("Packages(%q) error: %v", tt.dbType, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Packages(%q) = %v, want %v", tt.dbType, got, tt.want)
			}
		})
	}
}

func TestPackagesUnsupported(t *testing.T) {
	_, err := Packages("dbase")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Packages(dbase) error = %v, want ErrUnsupportedType", err)
	}
}

func TestIsJDBC(t *testing.T) {
	tests := []struct {
		dbType string
		want   bool
	}{
		{"postgres", false},
		{"bigquery", false},
		{"hive", true},
		{"presto", true},
		{"oracle", true},
		{"jdbc", true},
	}

	for _, tt := range tests {
		got, err := IsJDBC(tt.dbType)
		if err != nil {
			t.Fatalf("IsJDBC(%q) error: %v", tt.dbType, err)
		}
		if got != tt.want {
			t.Errorf("IsJDBC(%q) = %v, want %v", tt.dbType, got, tt.want)
		}
	}
}

func TestDescriptor(t *testing.T) {
	t.Run("hive carries a maven coordinate", func(t *testing.T) {
		desc, err := Descriptor("hive")
		if err != nil {
			t.Fatalf("Descriptor(hive) error: %v", err)
		}
		if desc.MavenDependency == nil {
			t.Fatal("hive descriptor should carry a Maven dependency")
		}
		if desc.MavenDependency.ArtifactID != "hive-jdbc" {
			t.Errorf("artifact = %q, want hive-jdbc", desc.MavenDependency.ArtifactID)
		}
	})

	t.Run("generic jdbc has no maven coordinate", func(t *testing.T) {
		desc, err := Descriptor("jdbc")
		if err != nil {
			t.Fatalf("Descriptor(jdbc) error: %v", err)
		}
		if desc.MavenDependency != nil {
			t.Errorf("generic jdbc should not carry a Maven dependency, got %+v", desc.MavenDependency)
		}
	})

	t.Run("non-bridge type has no descriptor", func(t *testing.T) {
		_, err := Descriptor("postgres")
		if !errors.Is(err, ErrNoJDBCDescriptor) {
			t.Errorf("Descriptor(postgres) error = %v, want ErrNoJDBCDescriptor", err)
		}
	})
}

func TestEnvVars(t *testing.T) {
	vars, err := EnvVars("postgres")
	if err != nil {
		t.Fatalf("EnvVars(postgres) error: %v", err)
	}
	if len(vars) == 0 {
		t.Fatal("postgres should declare env vars")
	}
	for _, v := range vars {
		if len(v) < len("QUARRY_") || v[:len("QUARRY_")] != "QUARRY_" {
			t.Errorf("env var %q should carry the QUARRY_ prefix", v)
		}
	}
}

func TestAllBridgeTypesHaveDescriptors(t *testing.T) {
	types, err := Types()
	if err != nil {
		t.Fatal(err)
	}
	for _, dbType := range types {
		bridge, err := IsJDBC(dbType)
		if err != nil {
			t.Fatal(err)
		}
		if !bridge {
			continue
		}
		if _, err := Descriptor(dbType); err != nil {
			t.Errorf("bridge type %q has no JDBC descriptor: %v", dbType, err)
		}
	}
}
