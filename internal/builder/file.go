package builder

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/tphakala/go-fixedmath/lut"
)

// A policy file overrides the tables it names and keeps the defaults for
// the rest:
//
//	digits: 120
//	tables:
//	  atan:
//	    func: atan
//	    fracbits: 40
//	    regions:
//	      - {lo: "0", hi: "1", count: 512, kind: hermite, spacing: uniform}
//
// Bounds are decimals or multiples of π ("0.5pi"), kept exact.
type policyFile struct {
	Digits int                  `yaml:"digits,omitempty"`
	Tables map[string]tableFile `yaml:"tables"`
}

type tableFile struct {
	Func     string       `yaml:"func"`
	FracBits int          `yaml:"fracbits"`
	Regions  []regionFile `yaml:"regions"`
}

type regionFile struct {
	Lo      boundText `yaml:"lo"`
	Hi      boundText `yaml:"hi"`
	Count   int       `yaml:"count"`
	Kind    string    `yaml:"kind"`
	Spacing string    `yaml:"spacing"`
}

// boundText keeps the literal text of a scalar so unquoted decimals are not
// rounded through float64.
type boundText string

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (b *boundText) UnmarshalYAML(data []byte) error {
	*b = boundText(strings.Trim(strings.TrimSpace(string(data)), `"'`))
	return nil
}

// LoadPolicy reads a YAML policy file on top of DefaultPolicy.
func LoadPolicy(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy: %w", err)
	}
	p, err := ParsePolicy(data)
	if err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParsePolicy decodes YAML policy data on top of DefaultPolicy and
// validates the result.
func ParsePolicy(data []byte) (Policy, error) {
	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Policy{}, fmt.Errorf("decode policy: %w: %w", ErrInvalidPolicy, err)
	}

	p := DefaultPolicy()
	if file.Digits != 0 {
		p.Digits = file.Digits
	}
	for name, tf := range file.Tables {
		fp, err := tf.policy()
		if err != nil {
			return Policy{}, fmt.Errorf("table %s: %w", name, err)
		}
		p.Tables[name] = fp
	}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// MarshalYAML encodes p in the policy file format.
func (p Policy) MarshalYAML() ([]byte, error) {
	file := policyFile{Digits: p.Digits, Tables: make(map[string]tableFile, len(p.Tables))}
	for name, fp := range p.Tables {
		tf := tableFile{Func: fp.Func, FracBits: fp.FracBits}
		for _, r := range fp.Regions {
			tf.Regions = append(tf.Regions, regionFile{
				Lo:      boundText(r.Lo.String()),
				Hi:      boundText(r.Hi.String()),
				Count:   r.Count,
				Kind:    strings.ToLower(r.Kind.String()),
				Spacing: strings.ToLower(r.Spacing.String()),
			})
		}
		file.Tables[name] = tf
	}
	return yaml.Marshal(file)
}

func (tf tableFile) policy() (FuncPolicy, error) {
	fp := FuncPolicy{Func: tf.Func, FracBits: tf.FracBits}
	for i, rf := range tf.Regions {
		lo, err := ParseBound(string(rf.Lo))
		if err != nil {
			return fp, fmt.Errorf("region %d: %w: %w", i, ErrInvalidPolicy, err)
		}
		hi, err := ParseBound(string(rf.Hi))
		if err != nil {
			return fp, fmt.Errorf("region %d: %w: %w", i, ErrInvalidPolicy, err)
		}
		kind, err := parseKind(rf.Kind)
		if err != nil {
			return fp, fmt.Errorf("region %d: %w", i, err)
		}
		spacing, err := parseSpacing(rf.Spacing)
		if err != nil {
			return fp, fmt.Errorf("region %d: %w", i, err)
		}
		fp.Regions = append(fp.Regions, RegionPolicy{Lo: lo, Hi: hi, Count: rf.Count, Kind: kind, Spacing: spacing})
	}
	return fp, nil
}

func parseKind(s string) (lut.Kind, error) {
	for _, k := range []lut.Kind{lut.Linear, lut.Quadratic, lut.Hermite} {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation kind %q: %w", s, ErrInvalidPolicy)
}

func parseSpacing(s string) (lut.Spacing, error) {
	if s == "" {
		return lut.Uniform, nil
	}
	for _, sp := range []lut.Spacing{lut.Uniform, lut.Chebyshev} {
		if strings.EqualFold(s, sp.String()) {
			return sp, nil
		}
	}
	return 0, fmt.Errorf("unknown spacing %q: %w", s, ErrInvalidPolicy)
}
