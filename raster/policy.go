package raster

import "fmt"

// Policy selects the glyphs used to plot edge cells.
type Policy int

const (
	// Solid plots every stepped cell with a full block.
	Solid Policy = iota
	// Shaded plots cells that sit far from the ideal line with a lighter
	// block, a crude form of antialiasing.
	Shaded
)

const (
	FullBlock  = '█'
	LightBlock = '▒'
)

// shadeCutoff is the intensity below which Shaded uses LightBlock.
const shadeCutoff = 0.5

var policyNames = [...]string{
	Solid:  "solid",
	Shaded: "shaded",
}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy returns the Policy named s.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return Policy(p), nil
		}
	}
	return Solid, fmt.Errorf("unknown shading policy %q (want solid or shaded)", s)
}

// Set implements flag.Value.
func (p *Policy) Set(s string) error {
	v, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// glyph returns the character for a cell whose centre lies dist cells away
// from the ideal line.
func (p Policy) glyph(dist float64) rune {
	if p != Shaded {
		return FullBlock
	}
	intensity := 1 - 2*dist
	if intensity < 0 {
		intensity = 0
	}
	if intensity < shadeCutoff {
		return LightBlock
	}
	return FullBlock
}
