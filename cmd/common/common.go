// Package common holds helpers shared by the tunetexture commands: flag enrichment,
// the application directory and the diagnostic log.
package common

import "github.com/GiGurra/boa/pkg/boa"

// DefaultParamEnricher derives flag names and short flags from Params struct fields.
func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}
