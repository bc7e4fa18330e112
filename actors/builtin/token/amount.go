package token

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// Decimals of mints created without an explicit precision by test fixtures and tooling.
const DefaultDecimals = 9

// Largest supported precision. Amounts are integers, so this only bounds display.
const MaxDecimals = 18

// Renders an amount of base units as a decimal number of whole tokens.
func FormatAmount(amount abi.TokenAmount, decimals uint8) string {
	if amount.Int == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount.Int, -int32(decimals)).String()
}

// Parses a decimal number of whole tokens into base units.
// The value must be non-negative and representable exactly at the given precision.
func ParseAmount(s string, decimals uint8) (abi.TokenAmount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return big.Zero(), xerrors.Errorf("invalid token amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return big.Zero(), xerrors.Errorf("negative token amount %q", s)
	}
	scaled := d.Shift(int32(decimals))
	if !scaled.Equal(scaled.Truncate(0)) {
		return big.Zero(), xerrors.Errorf("token amount %q has more than %d decimal places", s, decimals)
	}
	return big.NewFromGo(scaled.BigInt()), nil
}
