package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// EnvVarDoc is a documented environment variable: the literal name that must
// appear quoted somewhere in source, plus its documented purpose.
type EnvVarDoc struct {
	Name        string `yaml:"name"        json:"name"`
	Description string `yaml:"description" json:"description"`
}

// RuleSet carries every table the validator consults: which artifacts to
// read, which documented facts are expected, and the category-specific
// matching data. All paths are relative to the workspace root. Defaults
// target the linnix workspace; any table can be overridden via .doccheck.yaml.
type RuleSet struct {
	// Workspace resolution.
	MarkerFile     string `yaml:"marker_file"     json:"marker_file"`
	FallbackSubdir string `yaml:"fallback_subdir" json:"fallback_subdir"`

	// API routes.
	RouteSourceFile        string   `yaml:"route_source_file"        json:"route_source_file"`
	RouteDocFiles          []string `yaml:"route_doc_files"          json:"route_doc_files"`
	IgnoredRouteSubstrings []string `yaml:"ignored_route_substrings" json:"ignored_route_substrings"`

	// Configuration fields.
	ConfigSourceFile  string `yaml:"config_source_file"  json:"config_source_file"`
	ConfigExampleFile string `yaml:"config_example_file" json:"config_example_file"`
	// SectionStructs maps a documented TOML section name to the struct
	// expected to back it. A nil value marks a section that is parsed but
	// intentionally handled outside the config structs; it always passes.
	SectionStructs map[string]*string `yaml:"section_structs" json:"section_structs"`

	// CLI commands.
	CLISourceFile string   `yaml:"cli_source_file" json:"cli_source_file"`
	CLIDocFiles   []string `yaml:"cli_doc_files"   json:"cli_doc_files"`
	CLIBinaryName string   `yaml:"cli_binary_name" json:"cli_binary_name"`

	// eBPF probes.
	ProbeSourceDir   string   `yaml:"probe_source_dir"   json:"probe_source_dir"`
	ProbeProgramFile string   `yaml:"probe_program_file" json:"probe_program_file"`
	MandatoryProbes  []string `yaml:"mandatory_probes"   json:"mandatory_probes"`

	// Environment variables.
	EnvVars []EnvVarDoc `yaml:"env_vars" json:"env_vars"`

	// Source scan parameters for the env-var pass.
	SourceExt string   `yaml:"source_ext" json:"source_ext"`
	BuildDirs []string `yaml:"build_dirs" json:"build_dirs"`
}

// ProbeProgramPath returns the probe program file path relative to the
// workspace root.
func (r RuleSet) ProbeProgramPath() string {
	return filepath.ToSlash(filepath.Join(r.ProbeSourceDir, r.ProbeProgramFile))
}

// DefaultRuleSet returns the rules for validating the linnix workspace.
// The tables mirror what the project documentation actually claims.
func DefaultRuleSet() RuleSet {
	s := func(v string) *string { return &v }
	return RuleSet{
		MarkerFile:     "Cargo.toml",
		FallbackSubdir: "linnix-opensource",

		RouteSourceFile: "cognitod/src/api/mod.rs",
		RouteDocFiles: []string{
			"docker/README.md",
			"docs/prometheus-integration.md",
			"docs/AWS_EC2_DEPLOYMENT.md",
		},
		IgnoredRouteSubstrings: []string{"/api/", "/v1/", "health"},

		ConfigSourceFile:  "cognitod/src/config.rs",
		ConfigExampleFile: "configs/linnix.toml",
		SectionStructs: map[string]*string{
			"api":             s("ApiConfig"),
			"runtime":         s("RuntimeConfig"),
			"telemetry":       nil, // parsed but fields handled in main.rs
			"reasoner":        s("ReasonerConfig"),
			"prometheus":      nil, // handled via outputs.prometheus
			"notifications":   s("NotificationConfig"),
			"outputs":         s("OutputConfig"),
			"probes":          s("ProbesConfig"),
			"circuit_breaker": s("CircuitBreakerConfig"),
			"logging":         s("LoggingConfig"),
			"rules":           s("RulesFileConfig"),
		},

		CLISourceFile: "linnix-cli/src/main.rs",
		CLIDocFiles: []string{
			"docs/AWS_EC2_DEPLOYMENT.md",
			"README.md",
			"linnix-cli/README.md",
		},
		CLIBinaryName: "linnix-cli",

		ProbeSourceDir:   "linnix-ai-ebpf/linnix-ai-ebpf-ebpf/src",
		ProbeProgramFile: "program.rs",
		MandatoryProbes: []string{
			"sched_process_exec",
			"sched_process_fork",
			"sched_process_exit",
		},

		EnvVars: []EnvVarDoc{
			{Name: "LINNIX_CONFIG", Description: "Config file path"},
			{Name: "LINNIX_BPF_PATH", Description: "eBPF object path"},
			{Name: "LINNIX_LISTEN_ADDR", Description: "Listen address override"},
			{Name: "LINNIX_API_TOKEN", Description: "API auth token"},
			{Name: "LLM_ENDPOINT", Description: "LLM server URL"},
			{Name: "LLM_MODEL", Description: "LLM model name"},
			{Name: "OPENAI_API_KEY", Description: "OpenAI API key"},
		},

		SourceExt: ".rs",
		BuildDirs: []string{"target"},
	}
}

// Validate checks the rule set for values that would make a run meaningless
// and returns a descriptive error.
func (r RuleSet) Validate() error {
	if r.MarkerFile == "" {
		return fmt.Errorf("marker_file must not be empty")
	}
	if r.RouteSourceFile == "" {
		return fmt.Errorf("route_source_file must not be empty")
	}
	if r.ConfigSourceFile == "" {
		return fmt.Errorf("config_source_file must not be empty")
	}
	if r.ProbeSourceDir == "" || r.ProbeProgramFile == "" {
		return fmt.Errorf("probe_source_dir and probe_program_file must not be empty")
	}
	if !strings.HasPrefix(r.SourceExt, ".") {
		return fmt.Errorf("source_ext %q must start with a dot", r.SourceExt)
	}

	for _, p := range r.allPaths() {
		if filepath.IsAbs(p) {
			return fmt.Errorf("artifact path %q must be relative to the workspace root", p)
		}
	}

	for i, v := range r.EnvVars {
		if v.Name == "" {
			return fmt.Errorf("env_vars[%d].name must not be empty", i)
		}
	}

	for section, structName := range r.SectionStructs {
		if section == "" {
			return fmt.Errorf("section_structs contains an empty section name")
		}
		if structName != nil && *structName == "" {
			return fmt.Errorf("section_structs[%q] maps to an empty struct name (use null for special sections)", section)
		}
	}

	return nil
}

func (r RuleSet) allPaths() []string {
	paths := []string{r.RouteSourceFile, r.ConfigSourceFile, r.ConfigExampleFile,
		r.CLISourceFile, r.ProbeSourceDir}
	paths = append(paths, r.RouteDocFiles...)
	paths = append(paths, r.CLIDocFiles...)
	return paths
}
