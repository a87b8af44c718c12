package asset

import (
	"errors"
	"fmt"
	"strings"
)

// Item stores the asset type of a market
type Item uint8

// Supported asset types
const (
	Empty Item = iota
	Spot
	PerpetualSwap
	Futures
)

// ErrNotSupported is returned when an unsupported asset type is referenced
var ErrNotSupported = errors.New("unsupported asset type")

// String implements the stringer interface
func (a Item) String() string {
	switch a {
	case Spot:
		return "spot"
	case PerpetualSwap:
		return "swap"
	case Futures:
		return "future"
	default:
		return ""
	}
}

// IsContract returns whether the asset type is a contract market
func (a Item) IsContract() bool {
	return a == PerpetualSwap || a == Futures
}

// IsValid returns whether the asset type is set to a supported value
func (a Item) IsValid() bool {
	return a == Spot || a == PerpetualSwap || a == Futures
}

// New parses an asset type string
func New(s string) (Item, error) {
	switch strings.ToLower(s) {
	case "spot":
		return Spot, nil
	case "swap", "perpetualswap":
		return PerpetualSwap, nil
	case "future", "futures":
		return Futures, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrNotSupported, s)
	}
}
