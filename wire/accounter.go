package wire

import (
	"fmt"
	"math"
)

const (
	// DefaultNetworkQuota is the decode budget, in bits, applied to
	// untrusted network payloads: 2 MiB.
	DefaultNetworkQuota int64 = 2 * 1024 * 1024 * 8

	// MaxDepth bounds the nesting of lists and compounds.
	MaxDepth = 512
)

// Accounter tracks the bits charged while decoding and fails once the
// quota is exceeded. Charges are made before proportional memory is
// allocated. An Accounter is not safe for concurrent use.
type Accounter struct {
	quota int64
	usage int64
}

// NewAccounter returns an Accounter allowing at most quota bits.
func NewAccounter(quota int64) *Accounter {
	return &Accounter{quota: quota}
}

// Unlimited returns an Accounter that never fails.
func Unlimited() *Accounter {
	return &Accounter{quota: math.MaxInt64}
}

// AccountBits charges n bits.
func (a *Accounter) AccountBits(n int64) error {
	if n < 0 || a.usage > a.quota-n {
		err := fmt.Errorf("%w: tried to allocate %d more bits with %d used where max allowed is %d",
			ErrBudgetExceeded, n, a.usage, a.quota)
		a.usage = a.quota
		return err
	}
	a.usage += n
	return nil
}

// Usage returns the bits charged so far.
func (a *Accounter) Usage() int64 { return a.usage }

// Quota returns the configured maximum.
func (a *Accounter) Quota() int64 { return a.quota }
