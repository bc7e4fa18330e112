package vesting

import (
	"math"

	"github.com/filecoin-project/go-state-types/big"
)

// Seed prefixes of derived addresses. Changing either moves every custodian or schedule.
const (
	CustodianSeedPrefix = "vesting_treasury"
	ScheduleSeedPrefix  = "employee_vesting"
)

// A company name is a single derivation seed, and seeds are at most 32 bytes.
const MaxCompanyNameLength = 32

// Schedule totals are bounded by the unsigned 64-bit width of deployed records.
var MaxTotalAmount = big.NewIntUnsigned(math.MaxUint64)
