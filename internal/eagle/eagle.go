// Package eagle reads live meter data from a Rainforest EAGLE gateway
// through the Rainforest cloud.
package eagle

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultURL     = "https://rainforestcloud.com:9445"
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrTimeout reports that the cloud did not answer in time.
	ErrTimeout = errors.New("eagle: cloud request timed out")
	// ErrPoller covers every other failure talking to the cloud.
	ErrPoller = errors.New("eagle: cloud request failed")
)

//go:generate mockgen -destination=mock/poller.go -package=mock . Poller

// Poller is the subset of the cloud API the skill speaks about.
type Poller interface {
	InstantaneousDemand(ctx context.Context) (Demand, error)
	Price(ctx context.Context) (Price, error)
}

// Demand is the instantaneous power draw.
type Demand struct {
	// Kilowatts is negative when the premises exports power.
	Kilowatts float64
}

// Price is the current tariff.
type Price struct {
	// Hundredths of the currency unit per kilowatt-hour, e.g. 1234 is 12.34.
	Hundredths float64
}

type Config struct {
	URL      string
	Username string
	Password string
	CloudID  string
	// MacID selects the gateway. When empty the first device listed by the cloud is used.
	MacID   string
	Timeout time.Duration
}
