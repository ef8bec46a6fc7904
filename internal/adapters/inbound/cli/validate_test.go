package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/longregen/doccheck/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureWorkspace builds a workspace where every default check passes.
func fixtureWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"Cargo.toml": "[workspace]\n",
		"cognitod/src/api/mod.rs": `
        .route("/metrics", get(metrics))
        .route("/insights", get(insights))
`,
		"docker/README.md": "Scrape http://localhost:3000/metrics and `/insights`.\n",
		"cognitod/src/config.rs": `
pub struct ApiConfig { pub listen_addr: String, }
pub struct RuntimeConfig { pub max_events: usize, }
pub struct ReasonerConfig { pub endpoint: String, }
pub struct NotificationConfig { pub webhook: String, }
pub struct OutputConfig { pub prometheus: bool, }
pub struct ProbesConfig { pub enabled: bool, }
pub struct CircuitBreakerConfig { pub max_kills: u32, }
pub struct LoggingConfig { pub level: String, }
pub struct RulesFileConfig { pub path: String, }
`,
		"configs/linnix.toml": "[api]\nlisten_addr = \"0.0.0.0:3000\"\n",
		"linnix-cli/src/main.rs": `
enum Command {
    Doctor,
}
`,
		"README.md": "Run `linnix-cli doctor` after install.\n",
		"linnix-ai-ebpf/linnix-ai-ebpf-ebpf/src/program.rs": `
#[tracepoint(name = "sched_process_exec")]
#[tracepoint(name = "sched_process_fork")]
#[tracepoint(name = "sched_process_exit")]
`,
		"cognitod/src/main.rs": `
std::env::var("LINNIX_CONFIG");
std::env::var("LINNIX_BPF_PATH");
std::env::var("LINNIX_LISTEN_ADDR");
std::env::var("LINNIX_API_TOKEN");
std::env::var("LLM_ENDPOINT");
std::env::var("LLM_MODEL");
std::env::var("OPENAI_API_KEY");
`,
	}
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func TestValidateCommand_CleanWorkspace(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", "--workspace", fixtureWorkspace(t)})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "checks passed")
	assert.Contains(t, buf.String(), "Validation Summary")
}

func TestValidateCommand_FailureExitsNonzero(t *testing.T) {
	dir := fixtureWorkspace(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "linnix-cli/src/main.rs")))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", "--workspace", dir})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failure(s)")
	assert.Contains(t, buf.String(), "Documented CLI command not in code: doctor")
}

func TestValidateCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"validate", "--workspace", fixtureWorkspace(t), "--json"})
	require.NoError(t, cmd.Execute())

	var report map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &report)
	require.NoError(t, err, "JSON mode output should be pure JSON")
	assert.Contains(t, report, "workspace")
	assert.Contains(t, report, "results")
}

func TestValidateCommand_FixIsReserved(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", "--fix", "--workspace", fixtureWorkspace(t)})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not implemented")
}

func TestValidateCommand_RejectsPositionalArgs(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"validate", "extra"})
	assert.Error(t, cmd.Execute())
}
