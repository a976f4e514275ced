package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"victoriaos-connector/internal/trigger/repository"
	"victoriaos-connector/pkg/victoriaos"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// VictoriaOS API
	VictoriaOS VictoriaOSConfig

	// Trigger lifecycle and its persisted state
	Trigger TriggerConfig
	State   StateConfig

	// Callback endpoint protection
	Webhook WebhookConfig

	Metrics MetricsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type VictoriaOSConfig struct {
	APIKey  string
	Entorno string
	// BaseURL overrides the entorno-selected URL.
	BaseURL string
	Timeout time.Duration
}

// Credentials returns the API credential record.
func (c VictoriaOSConfig) Credentials() victoriaos.Credentials {
	return victoriaos.Credentials{
		APIKey:      c.APIKey,
		Environment: victoriaos.Environment(c.Entorno),
	}
}

type TriggerConfig struct {
	ScopeID      string
	WorkflowName string
	// PublicURL is the externally reachable base of this server.
	PublicURL string
	// NgrokAPI is queried for a tunnel URL when PublicURL is empty.
	NgrokAPI    string
	Path        string
	Events      []string
	Description string
	// DeregisterOnShutdown deletes the remote webhook when the server stops.
	DeregisterOnShutdown bool
}

// CallbackURL is PublicURL joined with Path.
func (c TriggerConfig) CallbackURL() string {
	if c.PublicURL == "" {
		return ""
	}
	return strings.TrimRight(c.PublicURL, "/") + "/" + strings.TrimLeft(c.Path, "/")
}

type StateConfig struct {
	Driver        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	SQLitePath    string
}

type WebhookConfig struct {
	AllowedIPs      []string
	RateLimitPerMin int
}

type MetricsConfig struct {
	Enabled bool
}

// Load loads configuration using Viper.
// The config file is config.yaml, searched in ./config, . and /etc/victoriaos/
func Load() (*Config, error) {
	return LoadFrom("", nil)
}

// LoadFrom loads configuration from file (or the search paths when empty),
// with flags taking precedence over file and environment.
func LoadFrom(file string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.Reset()
	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/victoriaos/")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if flags != nil {
		if err := viper.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("error binding flags: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// VictoriaOS API
	cfg.VictoriaOS.APIKey = viper.GetString("victoriaos.api_key")
	cfg.VictoriaOS.Entorno = viper.GetString("victoriaos.entorno")
	cfg.VictoriaOS.BaseURL = viper.GetString("victoriaos.base_url")
	cfg.VictoriaOS.Timeout = viper.GetDuration("victoriaos.timeout")
	if apiKey := os.Getenv("VICTORIAOS_API_KEY"); apiKey != "" {
		cfg.VictoriaOS.APIKey = apiKey
	}
	if entorno := os.Getenv("VICTORIAOS_ENTORNO"); entorno != "" {
		cfg.VictoriaOS.Entorno = entorno
	}

	// Trigger
	cfg.Trigger.ScopeID = viper.GetString("trigger.scope_id")
	cfg.Trigger.WorkflowName = viper.GetString("trigger.workflow_name")
	cfg.Trigger.PublicURL = viper.GetString("trigger.public_url")
	cfg.Trigger.NgrokAPI = viper.GetString("trigger.ngrok_api")
	cfg.Trigger.Path = viper.GetString("trigger.path")
	cfg.Trigger.Events = splitList(viper.GetString("trigger.events"))
	if len(cfg.Trigger.Events) == 0 {
		cfg.Trigger.Events = viper.GetStringSlice("trigger.events")
	}
	cfg.Trigger.Description = viper.GetString("trigger.description")
	cfg.Trigger.DeregisterOnShutdown = viper.GetBool("trigger.deregister_on_shutdown")

	// State
	cfg.State.Driver = viper.GetString("state.driver")
	cfg.State.RedisAddr = viper.GetString("state.redis_addr")
	cfg.State.RedisPassword = viper.GetString("state.redis_password")
	cfg.State.RedisDB = viper.GetInt("state.redis_db")
	cfg.State.RedisPrefix = viper.GetString("state.redis_prefix")
	cfg.State.SQLitePath = viper.GetString("state.sqlite_path")

	// Webhooks
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.AllowedIPs = splitList(viper.GetString("webhook.allowed_ips"))
	if len(cfg.Webhook.AllowedIPs) == 0 {
		cfg.Webhook.AllowedIPs = viper.GetStringSlice("webhook.allowed_ips")
	}

	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := c.VictoriaOS.Credentials().Validate(); err != nil {
		return fmt.Errorf("invalid victoriaos config: %w", err)
	}
	if err := repository.ValidDriver(c.State.Driver); err != nil {
		return fmt.Errorf("invalid state config: %w", err)
	}
	if c.State.Driver == repository.DriverRedis && c.State.RedisAddr == "" {
		return errors.New("invalid state config: state.redis_addr is required for the redis driver")
	}
	if c.State.Driver == repository.DriverSQLite && c.State.SQLitePath == "" {
		return errors.New("invalid state config: state.sqlite_path is required for the sqlite driver")
	}
	return nil
}

// splitList splits a comma-separated value as given through the environment.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("victoriaos.entorno", string(victoriaos.EnvironmentProduction))
	viper.SetDefault("victoriaos.timeout", victoriaos.DefaultTimeout)

	viper.SetDefault("trigger.scope_id", "default/victoriaOsTrigger")
	viper.SetDefault("trigger.workflow_name", "default")
	viper.SetDefault("trigger.path", "/webhook/victoriaos")
	viper.SetDefault("trigger.deregister_on_shutdown", true)

	viper.SetDefault("state.driver", repository.DriverMemory)
	viper.SetDefault("state.redis_prefix", "victoriaos:trigger:")
	viper.SetDefault("state.sqlite_path", "victoriaos-state.db")

	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("metrics.enabled", true)
}
