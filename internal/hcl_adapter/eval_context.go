package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// widthNames are the symbolic bit widths usable as bit_width values.
var widthNames = map[string]int64{
	"byte":  8,
	"word":  16,
	"dword": 32,
	"qword": 64,
}

// baseNames are the symbolic bases usable as output_base values.
var baseNames = map[string]int64{
	"bin": 2,
	"oct": 8,
	"dec": 10,
	"hex": 16,
}

// newEvalContext exposes the symbolic widths and bases as HCL variables, so a
// profile can say `bit_width = word` instead of `bit_width = 16`.
func newEvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(widthNames)+len(baseNames))
	for name, v := range widthNames {
		vars[name] = cty.NumberIntVal(v)
	}
	for name, v := range baseNames {
		vars[name] = cty.NumberIntVal(v)
	}
	return &hcl.EvalContext{Variables: vars}
}
