package vesting

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"golang.org/x/xerrors"
)

// Where a schedule is in its life at some time.
type VestingStatus int

const (
	// Before the cliff. Nothing may be claimed.
	Unvested VestingStatus = iota
	// Between the cliff and the end. Units vest linearly from the start.
	PartiallyVested
	// At or after the end. The whole total has vested.
	FullyVested
)

func (s VestingStatus) String() string {
	switch s {
	case Unvested:
		return "unvested"
	case PartiallyVested:
		return "partially-vested"
	case FullyVested:
		return "fully-vested"
	default:
		return "unknown"
	}
}

// Checks that a vesting window is well formed: it ends strictly after it starts and the cliff lies within it.
func ValidateWindow(start, end, cliff int64) error {
	if end <= start {
		return xerrors.Errorf("end time %d must be after start time %d", end, start)
	}
	if cliff < start || cliff > end {
		return xerrors.Errorf("cliff time %d must lie within [%d, %d]", cliff, start, end)
	}
	return nil
}

// The cumulative amount vested at a time: zero before the cliff, and otherwise the total pro-rated
// over the elapsed part of the window, rounded down.
func (s *Schedule) VestedAmount(now int64) abi.TokenAmount {
	if now < s.CliffTime || s.EndTime <= s.StartTime {
		return big.Zero()
	}
	until := now
	if until > s.EndTime {
		until = s.EndTime
	}
	if until <= s.StartTime {
		return big.Zero()
	}
	// differences of unix times can exceed int64 for windows spanning most of its range
	span := big.Sub(big.NewInt(s.EndTime), big.NewInt(s.StartTime))
	elapsed := big.Sub(big.NewInt(until), big.NewInt(s.StartTime))
	return big.Div(big.Mul(elapsed, s.TotalAmount), span)
}

// The amount a claim at a time would release: vested but not yet withdrawn.
func (s *Schedule) ClaimableAmount(now int64) abi.TokenAmount {
	claimable := big.Sub(s.VestedAmount(now), s.TotalWithdrawn)
	if claimable.Sign() <= 0 {
		return big.Zero()
	}
	return claimable
}

func (s *Schedule) Status(now int64) VestingStatus {
	switch {
	case now < s.CliffTime:
		return Unvested
	case now >= s.EndTime:
		return FullyVested
	default:
		return PartiallyVested
	}
}
