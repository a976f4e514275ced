package repository

// Drivers accepted by the state.driver setting.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	DriverSQLite = "sqlite"
)

// RedisOptions configures the redis store.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// Prefix is prepended to every key. Defaults to "victoriaos:trigger:".
	Prefix string
}

// SQLiteOptions configures the sqlite store.
type SQLiteOptions struct {
	// Path of the database file, or ":memory:".
	Path string
}

// CheckArgs validates the common Set arguments.
func CheckArgs(scopeID, webhookID string) error {
	if scopeID == "" {
		return ErrEmptyScope
	}
	if webhookID == "" {
		return ErrEmptyID
	}
	return nil
}
