package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

var MethodsAccount = struct {
	Constructor   abi.MethodNum
	PubkeyAddress abi.MethodNum
}{MethodConstructor, 2}

var MethodsToken = struct {
	Constructor       abi.MethodNum
	CreateMint        abi.MethodNum
	MintTo            abi.MethodNum
	CreateAccount     abi.MethodNum
	InitializeAccount abi.MethodNum
	Transfer          abi.MethodNum
	GetAccount        abi.MethodNum
}{MethodConstructor, 2, 3, 4, 5, 6, 7}

var MethodsVesting = struct {
	Constructor           abi.MethodNum
	CreateVestingAccount  abi.MethodNum
	CreateEmployeeAccount abi.MethodNum
	ClaimTokens           abi.MethodNum
}{MethodConstructor, 2, 3, 4}
