package victoriaos

import "time"

// ServiceName is how the service is named in user-facing messages.
const ServiceName = "VictoriaOS"

const (
	ProductionBaseURL  = "https://app.victoriaos.com/api/v1"
	DevelopmentBaseURL = "http://localhost:3000/api/v1"

	// DocumentationURL points at the public API reference.
	DocumentationURL = "https://app.victoriaos.com/api/v1/docs"

	// CredentialTestPath is requested to check that an API key works.
	CredentialTestPath = "/users/me"

	DefaultTimeout = 30 * time.Second
)

const (
	headerRateLimitLimit     = "X-Ratelimit-Limit"
	headerRateLimitRemaining = "X-Ratelimit-Remaining"
	headerRateLimitReset     = "X-Ratelimit-Reset"
)
