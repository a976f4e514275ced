package model

// Plan is a subscription tier.
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// SubscriptionStatus is the state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

// Subscription describes the user's plan.
type Subscription struct {
	Plan      Plan               `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	StartedAt string             `json:"started_at"`
	ExpiresAt string             `json:"expires_at,omitempty"`
}

// UsageLimits holds current and maximum request counters.
type UsageLimits struct {
	RequestsPerMinute    int `json:"requests_per_minute"`
	RequestsPerDay       int `json:"requests_per_day"`
	MaxRequestsPerMinute int `json:"max_requests_per_minute"`
	MaxRequestsPerDay    int `json:"max_requests_per_day"`
}

// User is the body of GET /users/me.
type User struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	CreatedAt    string       `json:"created_at"`
	Subscription Subscription `json:"subscription"`
	RateLimits   UsageLimits  `json:"rate_limits"`
}
