package input

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/simlab/nw"
)

// RunConfig is the HCL alternative to the key=value configuration. Either
// block may be omitted; each program reads only its own.
//
//	alignment {
//	  first_song  = "${config_dir}/song1.txt"
//	  second_song = "${config_dir}/song2.txt"
//	  match       = 1
//	  mismatch    = -1
//	  gap         = -2
//	  threshold   = 70
//	}
//
//	burn {
//	  forest   = "${config_dir}/forest1.txt"
//	  forecast = "${config_dir}/forecast1.txt"
//	}
type RunConfig struct {
	Align *AlignBlock `hcl:"alignment,block"`
	Burn  *BurnBlock  `hcl:"burn,block"`
}

// AlignBlock is the `alignment` block.
type AlignBlock struct {
	FirstSong  string `hcl:"first_song"`
	SecondSong string `hcl:"second_song"`
	Match      int    `hcl:"match"`
	Mismatch   int    `hcl:"mismatch"`
	Gap        int    `hcl:"gap"`
	Threshold  int    `hcl:"threshold"`
}

// BurnBlock is the `burn` block.
type BurnBlock struct {
	Forest   string `hcl:"forest"`
	Forecast string `hcl:"forecast"`
}

// AlignConfig converts the block to the shared configuration type.
func (b *AlignBlock) AlignConfig() AlignConfig {
	return AlignConfig{
		FirstSong:  b.FirstSong,
		SecondSong: b.SecondSong,
		Scoring:    nw.Scoring{Match: b.Match, Mismatch: b.Mismatch, Gap: b.Gap},
		Threshold:  b.Threshold,
	}
}

// LoadRunConfig parses and decodes an HCL run configuration.
// Expressions may reference config_dir, the directory holding the file.
func LoadRunConfig(path string) (*RunConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diagErr(path, "failed to parse HCL", diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(filepath.Dir(path)),
		},
	}
	var cfg RunConfig
	diags = gohcl.DecodeBody(file.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, diagErr(path, "failed to decode HCL", diags)
	}

	if cfg.Align != nil {
		if err := cfg.Align.AlignConfig().Validate(path); err != nil {
			return nil, err
		}
	}
	if cfg.Burn != nil && (cfg.Burn.Forest == "" || cfg.Burn.Forecast == "") {
		return nil, formatErr(path, 0, nil, "burn block needs both forest and forecast")
	}
	return &cfg, nil
}

// diagErr turns HCL diagnostics into a FormatError at the first error's line.
func diagErr(path, msg string, diags hcl.Diagnostics) error {
	line := 0
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			line = d.Subject.Start.Line
			break
		}
	}
	return formatErr(path, line, diags, "%s", msg)
}
