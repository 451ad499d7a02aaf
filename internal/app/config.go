package app

import (
	"path/filepath"
	"strings"

	"github.com/katalvlaran/simlab/input"
)

// hclExt selects the HCL loader over the key=value one.
const hclExt = ".hcl"

// IsHCL reports whether path names an HCL run configuration.
func IsHCL(path string) bool {
	return strings.EqualFold(filepath.Ext(path), hclExt)
}

// LoadAlignConfig reads the alignment configuration from either format.
// An HCL file must contain an alignment block.
func LoadAlignConfig(path string) (input.AlignConfig, error) {
	if !IsHCL(path) {
		return input.LoadAlignConfig(path)
	}
	rc, err := input.LoadRunConfig(path)
	if err != nil {
		return input.AlignConfig{}, err
	}
	if rc.Align == nil {
		return input.AlignConfig{}, &input.FormatError{Path: path, Msg: "missing alignment block"}
	}
	return rc.Align.AlignConfig(), nil
}

// LoadBurnPaths reads the forest and forecast paths from an HCL file's
// burn block.
func LoadBurnPaths(path string) (forestPath, forecastPath string, err error) {
	rc, err := input.LoadRunConfig(path)
	if err != nil {
		return "", "", err
	}
	if rc.Burn == nil {
		return "", "", &input.FormatError{Path: path, Msg: "missing burn block"}
	}
	return rc.Burn.Forest, rc.Burn.Forecast, nil
}
