package radix

import (
	"fmt"
	"io"
)

// Line is one labelled rendering of a value.
type Line struct {
	Label string
	Text  string
}

// String formats the line as "<Label>:<Text>".
func (l Line) String() string {
	return l.Label + ":" + l.Text
}

// Output is the ordered set of lines produced for one value.
type Output []Line

// WriteTo writes each line followed by a newline.
func (o Output) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range o {
		n, err := fmt.Fprintln(w, line.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// CustomBaseLabel returns the label used for arbitrary-base output.
func CustomBaseLabel(base int) string {
	return fmt.Sprintf("Radix[%d]", base)
}

// Render produces one line per output mode enabled in cfg: a single
// arbitrary-base line when CustomBaseEnabled is set, otherwise decimal, hex
// and binary in that order.
func Render(v int64, cfg RenderConfig) Output {
	if cfg.CustomBaseEnabled {
		return Output{{Label: CustomBaseLabel(cfg.CustomBase), Text: CustomBase(v, cfg.CustomBase)}}
	}

	out := make(Output, 0, 3)
	if cfg.ShowDecimal {
		out = append(out, Line{Label: "Dec", Text: Decimal(v)})
	}
	if cfg.ShowHex {
		out = append(out, Line{Label: "Hex", Text: Hex(v, cfg)})
	}
	if cfg.ShowBinary {
		out = append(out, Line{Label: "Bin", Text: Binary(v, cfg)})
	}
	return out
}
