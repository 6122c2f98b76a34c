// Package workspace implements the file layout conventions of an
// ntc-templates style repository: raw sample and template path construction,
// scaffolding of new file pairs, in-place whitespace substitution in
// template rules, and index-line formatting.
package workspace

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
)

// Directory layout of the template repository, relative to its root.
const (
	TestsDir    = "tests"
	TemplateDir = "ntc_templates/templates"
)

// Sentinel errors returned by this package.
var (
	ErrScaffold = errors.New("scaffold files")
	ErrRewrite  = errors.New("rewrite template")
)

// Files returns the raw sample path and the template path for a
// vendor+command pair. Spaces in the command become underscores. The index
// selects among multiple raw samples for the same command; indexes greater
// than 1 are appended to the raw basename, while the template path is shared
// by all samples.
func Files(vendor, command string, index int) (rawPath, templatePath string) {
	cmd := strings.ReplaceAll(command, " ", "_")
	base := vendor + "_" + cmd

	rawBase := base
	if index > 1 {
		rawBase += strconv.Itoa(index)
	}

	rawPath = filepath.Join(TestsDir, vendor, cmd, rawBase+".raw")
	templatePath = filepath.Join(filepath.FromSlash(TemplateDir), base+".textfsm")

	return rawPath, templatePath
}

// ResultFile returns the canonical results path for a raw sample path,
// swapping the ".raw" suffix for ".yml".
func ResultFile(rawPath string) string {
	return strings.TrimSuffix(rawPath, ".raw") + ".yml"
}
