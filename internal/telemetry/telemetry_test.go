package telemetry

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestEventPostsPayload(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("payload is not JSON: %v", err)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	e := New("1.2.3", WithURL(srv.URL))
	e.Event("create", map[string]string{"dbType": "postgres", "template": "express"})
	e.Flush()

	if got.Event != "create" {
		t.Errorf("event = %q, want %q", got.Event, "create")
	}
	if got.CLIVersion != "1.2.3" {
		t.Errorf("cliVersion = %q, want %q", got.CLIVersion, "1.2.3")
	}
	if got.AnonymousID == "" {
		t.Error("anonymousId should be set")
	}
	if got.Properties["dbType"] != "postgres" {
		t.Errorf("properties[dbType] = %q, want %q", got.Properties["dbType"], "postgres")
	}
}

func TestEventRespectsOptOut(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("telemetry", "off")

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	e := New("dev", WithURL(srv.URL))
	e.Event("create", nil)
	e.Flush()

	if called {
		t.Error("opted-out emitter must not post events")
	}
}

func TestEventSwallowsServerErrors(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	// Must not panic or surface anything.
	e := New("dev", WithURL(srv.URL))
	e.Event("create", nil)
	e.Flush()
}

func TestNilEmitter(t *testing.T) {
	var e *Emitter
	e.Event("create", nil) // must be a no-op
	e.Flush()
}

func TestEventDoesNotBlockCaller(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	received := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(received)
		<-release
	}))
	defer srv.Close()

	e := New("dev", WithURL(srv.URL))

	// A synchronous emitter would sit in Do() until the client timeout;
	// Event must return while the handler is still held open.
	start := time.Now()
	e.Event("create", nil)
	if elapsed := time.Since(start); elapsed >= requestTimeout {
		t.Errorf("Event blocked for %v, want an immediate return", elapsed)
	}

	select {
	case <-received:
	case <-time.After(requestTimeout):
		t.Fatal("background request never reached the server")
	}
	close(release)
	e.Flush()
}
