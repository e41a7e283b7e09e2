package repository

import (
	"time"

	"go.uber.org/zap"
)

const (
	DefaultCustomersKey    = "customers_data_v1"
	DefaultLiquidationsKey = "liquidations_data_v1"
)

// StoreConfig is shared by the store-backed repositories.
type StoreConfig struct {
	Key    string
	Seed   bool
	Logger *zap.Logger
	// Now stamps createdAt; time.Now when nil.
	Now func() time.Time
}

func (c StoreConfig) key(def string) string {
	if c.Key != "" {
		return c.Key
	}
	return def
}

func (c StoreConfig) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func (c StoreConfig) now() func() time.Time {
	if c.Now != nil {
		return c.Now
	}
	return time.Now
}
