package provider

import (
	"time"

	"github.com/ssat-prep/backend/internal/models"
)

// Probe reports whether a provider is usable. It is advisory only: a passing
// probe means credentials are present, not that the vendor is reachable. No
// round-trip call is made, so no quota is spent — and a configured provider
// with an expired key still probes as available.
func (c *Client) Probe(id ID) models.ProviderStatus {
	status := models.ProviderStatus{
		Name:      string(id),
		CheckedAt: time.Now().UTC(),
	}

	if _, ok := c.vendors[id]; !ok {
		status.Error = "no API key configured"
		return status
	}

	status.Available = true
	return status
}

// ProbeAll probes every known provider in priority order. When the mock
// vendor is active it is reported first, so the status view matches what
// generation actually uses.
func (c *Client) ProbeAll() []models.ProviderStatus {
	ids := make([]ID, 0, len(priority)+1)
	if c.Configured(Mock) {
		ids = append(ids, Mock)
	}
	ids = append(ids, priority...)

	out := make([]models.ProviderStatus, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.Probe(id))
	}
	return out
}
