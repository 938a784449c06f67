package config

import (
	"encoding/json"
	"sync/atomic"
)

// statusPayload mirrors the exact JSON schema spec.md §6 requires of the
// Status dispatcher's response payload.
type statusPayload struct {
	Version struct {
		Name     string `json:"name"`
		Protocol int    `json:"protocol"`
	} `json:"version"`
	Description struct {
		Text string `json:"text"`
	} `json:"description"`
	EnforcesSecureChat bool `json:"enforcesSecureChat"`
}

// Description is the config store's implementation of
// dispatch.Description: a read-only, race-free snapshot of the status
// JSON, published via an atomic pointer swap so the dispatcher's hot
// path never takes a lock (spec.md §5).
type Description struct {
	current atomic.Pointer[string]
}

// NewDescription builds a Description whose initial snapshot reports
// motd as the description text, matching spec.md §6's schema exactly.
func NewDescription(motd string) *Description {
	d := &Description{}
	d.Set(motd)
	return d
}

// Set publishes a new snapshot built from motd. Safe to call
// concurrently with StatusJSON from any number of driver goroutines.
func (d *Description) Set(motd string) {
	var payload statusPayload
	payload.Version.Name = "Maintenance"
	payload.Version.Protocol = 0
	payload.Description.Text = motd
	payload.EnforcesSecureChat = false

	// json.Marshal on this fixed, non-cyclic struct cannot fail.
	encoded, _ := json.Marshal(payload)
	serialized := string(encoded)
	d.current.Store(&serialized)
}

// StatusJSON implements dispatch.Description.
func (d *Description) StatusJSON() string {
	return *d.current.Load()
}
