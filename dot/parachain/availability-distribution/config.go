// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package availabilitydistribution

import "math/rand"

const (
	// DefaultSessionIndexCacheSize is relatively conservative, 1 to 2 should suffice.
	DefaultSessionIndexCacheSize = 5
	// DefaultSessionInfoCacheSize covers the current and the last session,
	// which are the ones needed the most.
	DefaultSessionInfoCacheSize = 2
)

// Config is the configuration of the session cache.
type Config struct {
	SessionIndexCacheSize int `toml:"session-index-cache-size,omitempty" validate:"min=1"`
	SessionInfoCacheSize  int `toml:"session-info-cache-size,omitempty" validate:"min=1"`

	// Rand is used to shuffle validator groups. A time seeded source is used if nil.
	Rand *rand.Rand `toml:"-" validate:"-"`
}

// DefaultConfig returns the default session cache configuration.
func DefaultConfig() Config {
	return Config{
		SessionIndexCacheSize: DefaultSessionIndexCacheSize,
		SessionInfoCacheSize:  DefaultSessionInfoCacheSize,
	}
}

func (c *Config) setDefaults() {
	if c.SessionIndexCacheSize < 1 {
		c.SessionIndexCacheSize = DefaultSessionIndexCacheSize
	}
	if c.SessionInfoCacheSize < 1 {
		c.SessionInfoCacheSize = DefaultSessionInfoCacheSize
	}
}
