package constants

import "time"

const (
	// FetchAttempts quote source attempts per symbol, fall back on first failure
	FetchAttempts = 1
	// FetchRetryInterval interval between quote source attempts
	FetchRetryInterval = time.Second * 2
	// DefaultTimezone define default display timezone
	DefaultTimezone = "Asia/Jerusalem"
	// DefaultIndices define default name=symbol pairs
	DefaultIndices = "TA-35=TA35.TA,TA-125=^TA125.TA,TA-90=TA90.TA,Banks-5=TA-BANKS.TA"
	// DefaultUpdateIntervalSec define trading hours update interval
	DefaultUpdateIntervalSec = 60
	// DefaultOffHoursIntervalSec define off hours update interval
	DefaultOffHoursIntervalSec = 300
	// DefaultStatePath define default state file path
	DefaultStatePath = "state.json"
	// PlaceholderPrice price substituted when a symbol cannot be fetched
	PlaceholderPrice = 0
	// PlaceholderChangePercent change percent substituted when a symbol cannot be fetched
	PlaceholderChangePercent = 0
)
