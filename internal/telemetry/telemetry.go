package telemetry

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/quarry-analytics/quarry-cli/internal/branding"
	"github.com/quarry-analytics/quarry-cli/internal/config"
)

const requestTimeout = 2 * time.Second

// Emitter posts usage events to the telemetry endpoint.
type Emitter struct {
	url        string
	anonymous  string
	enabled    bool
	cliVersion string
	httpClient *http.Client
	inFlight   sync.WaitGroup
}

// Option customizes an Emitter. Used by tests to point at a local server.
type Option func(*Emitter)

// WithURL overrides the telemetry endpoint.
func WithURL(url string) Option {
	return func(e *Emitter) { e.url = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Emitter) { e.httpClient = c }
}

// New builds an Emitter from user config: endpoint from branding, opt-out and
// anonymous identity from ~/.quarry/config.yaml.
func New(cliVersion string, opts ...Option) *Emitter {
	e := &Emitter{
		url:        branding.TelemetryURL(),
		enabled:    config.TelemetryEnabled(),
		cliVersion: cliVersion,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	if e.enabled {
		e.anonymous = config.AnonymousID()
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type payload struct {
	Event       string            `json:"event"`
	AnonymousID string            `json:"anonymousId"`
	CLIVersion  string            `json:"cliVersion"`
	Timestamp   string            `json:"timestamp"`
	Properties  map[string]string `json:"properties,omitempty"`
}

// Event posts a single named event. It returns immediately — the request
// runs in the background — and never surfaces an error: telemetry failures
// are invisible to the user and must not affect command outcomes.
func (e *Emitter) Event(name string, properties map[string]string) {
	if e == nil || !e.enabled {
		return
	}

	p := payload{
		Event:       name,
		AnonymousID: e.anonymous,
		CLIVersion:  e.cliVersion,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Properties:  properties,
	}

	e.inFlight.Add(1)
	go func() {
		defer e.inFlight.Done()
		e.post(p)
	}()
}

// Flush waits for in-flight events before the process exits. Each request
// is bounded by the client timeout, so Flush is too.
func (e *Emitter) Flush() {
	if e == nil {
		return
	}
	e.inFlight.Wait()
}

func (e *Emitter) post(p payload) {
	body, err := json.Marshal(p)
	if err != nil {
		return
	}

	req, err := http.NewRequest(http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", branding.CLIName()+"-cli/"+e.cliVersion)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}
