package config

import (
	"reflect"
	"testing"
)

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		params   IndicatorParams
		expected IndicatorParams
	}{
		{
			name:     "zero value takes full defaults",
			params:   IndicatorParams{},
			expected: DefaultParams(),
		},
		{
			name:   "supplied fields win, rest defaulted",
			params: IndicatorParams{RSIPeriod: 9, StdDev: 2.5},
			expected: func() IndicatorParams {
				p := DefaultParams()
				p.RSIPeriod = 9
				p.StdDev = 2.5
				return p
			}(),
		},
		{
			name:   "negative periods treated as unset",
			params: IndicatorParams{ADXPeriod: -1},
			expected: DefaultParams(),
		},
		{
			name:   "custom period lists kept",
			params: IndicatorParams{EMAPeriods: []int{5}, SMAPeriods: []int{10}},
			expected: func() IndicatorParams {
				p := DefaultParams()
				p.EMAPeriods = []int{5}
				p.SMAPeriods = []int{10}
				return p
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.params.WithDefaults()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}
