package extract_test

import (
	"strings"
	"testing"

	"github.com/longregen/doccheck/internal/domain/extract"
	"github.com/stretchr/testify/assert"
)

const routeSource = `
pub fn router() -> Router {
    Router::new()
        .route("/health", get(health))
        .route("/metrics", get(metrics))
        .route("/api/jobs/{id}", get(job_status))
        .route("/health", get(health_alias))
}
`

func TestRoutesFromSource(t *testing.T) {
	routes := extract.RoutesFromSource(routeSource)
	assert.Equal(t, []string{"/api/jobs/{id}", "/health", "/metrics"}, routes)
}

func TestRoutesFromSource_Empty(t *testing.T) {
	assert.Empty(t, extract.RoutesFromSource("fn main() {}"))
}

func TestRoutesFromDocs(t *testing.T) {
	doc := "Check health:\n" +
		"    curl http://localhost:3000/health\n" +
		"Metrics live at `/metrics?format=prometheus` and the root is http://myhost/ nothing.\n" +
		"Also see http://example.com/insights#recent for details.\n"

	routes := extract.RoutesFromDocs(doc)
	assert.Contains(t, routes, "/health")
	assert.Contains(t, routes, "/metrics")
	assert.Contains(t, routes, "/insights")
	assert.NotContains(t, routes, "/")
}

func TestRoutesFromDocs_EmptyDoc(t *testing.T) {
	assert.Empty(t, extract.RoutesFromDocs("no routes here"))
}

func TestNormalizeRoute(t *testing.T) {
	assert.Equal(t, "/api/jobs/{id}", extract.NormalizeRoute("/api/jobs/{job_id}"))
	assert.Equal(t, "/metrics", extract.NormalizeRoute("/metrics?format=prometheus"))
	assert.Equal(t, "/insights", extract.NormalizeRoute("/insights#recent"))
	assert.Equal(t, "/proc/{id}/cmdline", extract.NormalizeRoute("/proc/{pid}/cmdline"))
}

func TestNormalizeRoute_Idempotent(t *testing.T) {
	routes := []string{"/api/jobs/{job_id}", "/metrics?x=1", "/health", "/proc/{pid}/cmdline#frag"}
	for _, r := range routes {
		once := extract.NormalizeRoute(r)
		assert.Equal(t, once, extract.NormalizeRoute(once), "normalizing %q twice", r)
	}
}

func TestRoutePrefix_SubPathMatching(t *testing.T) {
	// A documented route extending a parameterized code route must match by
	// string prefix once the code route is cut at its parameter.
	prefix := extract.RoutePrefix("/api/jobs/{id}")
	assert.Equal(t, "/api/jobs/", prefix)
	assert.True(t, strings.HasPrefix("/api/jobs/{id}/status", prefix))
	assert.True(t, strings.HasPrefix("/api/jobs/42/status", prefix))

	// Known precision limit: unrelated routes sharing a literal prefix match.
	assert.True(t, strings.HasPrefix("/api/jobscheduler", extract.RoutePrefix("/api/jobs")))
}
