package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/longregen/doccheck/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".doccheck.yaml"

// YAMLLoader implements domain.RuleLoader by reading .doccheck.yaml from the
// invocation directory and overlaying it on the default rule set.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// ruleOverride mirrors domain.RuleSet with optional fields: only keys
// present in the file replace their default table.
type ruleOverride struct {
	MarkerFile     *string `yaml:"marker_file"`
	FallbackSubdir *string `yaml:"fallback_subdir"`

	RouteSourceFile        *string  `yaml:"route_source_file"`
	RouteDocFiles          []string `yaml:"route_doc_files"`
	IgnoredRouteSubstrings []string `yaml:"ignored_route_substrings"`

	ConfigSourceFile  *string            `yaml:"config_source_file"`
	ConfigExampleFile *string            `yaml:"config_example_file"`
	SectionStructs    map[string]*string `yaml:"section_structs"`

	CLISourceFile *string  `yaml:"cli_source_file"`
	CLIDocFiles   []string `yaml:"cli_doc_files"`
	CLIBinaryName *string  `yaml:"cli_binary_name"`

	ProbeSourceDir   *string  `yaml:"probe_source_dir"`
	ProbeProgramFile *string  `yaml:"probe_program_file"`
	MandatoryProbes  []string `yaml:"mandatory_probes"`

	EnvVars []domain.EnvVarDoc `yaml:"env_vars"`

	SourceExt *string  `yaml:"source_ext"`
	BuildDirs []string `yaml:"build_dirs"`
}

// Load reads .doccheck.yaml from path. Returns the default linnix rules if
// the file does not exist.
func (l *YAMLLoader) Load(path string) (domain.RuleSet, error) {
	rules := domain.DefaultRuleSet()

	data, err := os.ReadFile(filepath.Join(path, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rules, nil
		}
		return domain.RuleSet{}, err
	}

	var override ruleOverride
	if err := yaml.Unmarshal(data, &override); err != nil {
		return domain.RuleSet{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	rules = merge(rules, override)

	if err := rules.Validate(); err != nil {
		return domain.RuleSet{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return rules, nil
}

// merge overlays explicit overrides on top of the defaults. Maps and slices
// replace their default table entirely.
func merge(base domain.RuleSet, o ruleOverride) domain.RuleSet {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&base.MarkerFile, o.MarkerFile)
	setString(&base.FallbackSubdir, o.FallbackSubdir)
	setString(&base.RouteSourceFile, o.RouteSourceFile)
	setString(&base.ConfigSourceFile, o.ConfigSourceFile)
	setString(&base.ConfigExampleFile, o.ConfigExampleFile)
	setString(&base.CLISourceFile, o.CLISourceFile)
	setString(&base.CLIBinaryName, o.CLIBinaryName)
	setString(&base.ProbeSourceDir, o.ProbeSourceDir)
	setString(&base.ProbeProgramFile, o.ProbeProgramFile)
	setString(&base.SourceExt, o.SourceExt)

	if o.RouteDocFiles != nil {
		base.RouteDocFiles = o.RouteDocFiles
	}
	if o.IgnoredRouteSubstrings != nil {
		base.IgnoredRouteSubstrings = o.IgnoredRouteSubstrings
	}
	if o.SectionStructs != nil {
		base.SectionStructs = o.SectionStructs
	}
	if o.CLIDocFiles != nil {
		base.CLIDocFiles = o.CLIDocFiles
	}
	if o.MandatoryProbes != nil {
		base.MandatoryProbes = o.MandatoryProbes
	}
	if o.EnvVars != nil {
		base.EnvVars = o.EnvVars
	}
	if o.BuildDirs != nil {
		base.BuildDirs = o.BuildDirs
	}

	return base
}
