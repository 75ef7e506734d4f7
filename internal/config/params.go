package config

// IndicatorParams configures the indicator engine. Zero-valued fields are
// replaced field-by-field with the canonical defaults; see WithDefaults.
type IndicatorParams struct {
	RSIPeriod       int
	FastPeriod      int
	SlowPeriod      int
	SignalPeriod    int
	BollingerPeriod int
	StdDev          float64
	EMAPeriods      []int
	SMAPeriods      []int
	ADXPeriod       int
	ATRPeriod       int
}

// DefaultParams returns the canonical indicator parameter set.
func DefaultParams() IndicatorParams {
	return IndicatorParams{
		RSIPeriod:       14,
		FastPeriod:      12,
		SlowPeriod:      26,
		SignalPeriod:    9,
		BollingerPeriod: 20,
		StdDev:          2,
		EMAPeriods:      []int{9, 21, 50, 200},
		SMAPeriods:      []int{20, 50, 200},
		ADXPeriod:       14,
		ATRPeriod:       14,
	}
}

// WithDefaults overlays p on the canonical defaults. Any field left at its
// zero value takes the default; supplied values win field-by-field.
func (p IndicatorParams) WithDefaults() IndicatorParams {
	def := DefaultParams()
	if p.RSIPeriod <= 0 {
		p.RSIPeriod = def.RSIPeriod
	}
	if p.FastPeriod <= 0 {
		p.FastPeriod = def.FastPeriod
	}
	if p.SlowPeriod <= 0 {
		p.SlowPeriod = def.SlowPeriod
	}
	if p.SignalPeriod <= 0 {
		p.SignalPeriod = def.SignalPeriod
	}
	if p.BollingerPeriod <= 0 {
		p.BollingerPeriod = def.BollingerPeriod
	}
	if p.StdDev <= 0 {
		p.StdDev = def.StdDev
	}
	if len(p.EMAPeriods) == 0 {
		p.EMAPeriods = def.EMAPeriods
	}
	if len(p.SMAPeriods) == 0 {
		p.SMAPeriods = def.SMAPeriods
	}
	if p.ADXPeriod <= 0 {
		p.ADXPeriod = def.ADXPeriod
	}
	if p.ATRPeriod <= 0 {
		p.ATRPeriod = def.ATRPeriod
	}
	return p
}
