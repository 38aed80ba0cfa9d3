package constants

// Page route constants
const (
	OneRoute = "/one"
	TwoRoute = "/two"

	OneView = "one"
	TwoView = "two"

	// Layout every page view is rendered into
	PageLayout = "layouts/main"
)

// Infrastructure route constants
const (
	ApiRoute     = "/api"
	HealthRoute  = "/healthz"
	MetricsRoute = "/metrics"
	DocsBasePath = "/docs/api/"
	DocsPath     = "v1"
)

// ViewNameHeader carries the view name a page handler resolved to
const ViewNameHeader = "X-View-Name"
