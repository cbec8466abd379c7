package rules

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents an HCL rules file.
type Config struct {
	Rules    *RulesBlock `hcl:"rules,block"`
	LogLevel string      `hcl:"log_level,optional"`
}

// RulesBlock overrides individual table rules. Unset attributes keep their
// defaults.
type RulesBlock struct {
	DealerHitsSoft17 *bool        `hcl:"dealer_hits_soft_17,optional"`
	Payouts          *PayoutBlock `hcl:"payouts,block"`
}

// PayoutBlock overrides individual payouts.
type PayoutBlock struct {
	Win       *float64 `hcl:"win,optional"`
	Loss      *float64 `hcl:"loss,optional"`
	Push      *float64 `hcl:"push,optional"`
	Blackjack *float64 `hcl:"blackjack,optional"`
}

// DefaultConfig returns a config that leaves every rule at its default.
func DefaultConfig() *Config {
	return &Config{LogLevel: "info"}
}

// LoadConfig loads a rules file. A missing file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decodeConfig(file)
}

// ParseConfig decodes rules from HCL source.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decodeConfig(file)
}

func decodeConfig(file *hcl.File) (*Config, error) {
	var config Config
	diags := gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	return &config, nil
}

// Resolve applies the file's overrides on top of Default and validates the
// result.
func (c *Config) Resolve() (Rules, error) {
	r := Default()
	if c.Rules != nil {
		if c.Rules.DealerHitsSoft17 != nil {
			r.DealerHitsSoft17 = *c.Rules.DealerHitsSoft17
		}
		if p := c.Rules.Payouts; p != nil {
			setIf(&r.Payouts.Win, p.Win)
			setIf(&r.Payouts.Loss, p.Loss)
			setIf(&r.Payouts.Push, p.Push)
			setIf(&r.Payouts.Blackjack, p.Blackjack)
		}
	}

	if err := r.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules: %w", err)
	}
	return r, nil
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
