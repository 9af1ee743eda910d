package model

import "strings"

// Unit selects the chain and currency the pipeline targets.
type Unit string

// Network names the chain network the node runs on.
type Network string

var (
	BTC Unit = "BTC"
	LTC Unit = "LTC"
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Regtest Network = "regtest"
	Signet  Network = "signet"
)

// ParseUnit resolves a configured unit name. Anything other than LTC is BTC.
func ParseUnit(s string) Unit {
	if strings.EqualFold(strings.TrimSpace(s), string(LTC)) {
		return LTC
	}
	return BTC
}

// SmallestUnit returns the name of the fractional denomination.
func (u Unit) SmallestUnit() string {
	if u == LTC {
		return "lit"
	}
	return "sat"
}

// PriceAPIBase returns the default base URL of the historical price service.
func (u Unit) PriceAPIBase() string {
	if u == LTC {
		return "https://litecoinspace.org/api/v1"
	}
	return "https://mempool.space/api/v1"
}

// UnmarshalFlag lets go-flags parse a Unit option.
func (u *Unit) UnmarshalFlag(value string) error {
	*u = ParseUnit(value)
	return nil
}
