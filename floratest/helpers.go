// Package floratest provides deterministic test doubles: identities and a
// configurable ledger stub for exercising payment flows.
package floratest

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/florachain/flora"
)

// condCnt is used to generate unique conditions without any randomness, so
// tests are deterministic.
var condCnt uint64

// NewCondition returns a unique test condition.
func NewCondition() flora.Condition {
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, atomic.AddUint64(&condCnt, 1))
	return flora.NewCondition("test", "seq", data)
}

// NewAddress returns the address of a unique test condition.
func NewAddress() flora.Address {
	return NewCondition().Address()
}
