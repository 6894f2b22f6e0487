package config

import (
	"testing"
	"time"

	"github.com/corbym/gocrest/is"
	"github.com/corbym/gocrest/then"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	then.AssertThat(t, err, is.Nil())

	then.AssertThat(t, cfg.Server.Port, is.EqualTo("3000"))
	then.AssertThat(t, cfg.Database.Driver, is.EqualTo(DriverPostgres))
	then.AssertThat(t, cfg.Database.MaxOpenConns, is.EqualTo(10))
	then.AssertThat(t, cfg.Database.ConnMaxIdleTime, is.EqualTo(30))
	then.AssertThat(t, cfg.Database.ConnectTimeout, is.EqualTo(30))
	then.AssertThat(t, cfg.Observability.ServiceName, is.EqualTo(ServiceName))
	then.AssertThat(t, cfg.Observability.Environment, is.EqualTo(cfg.Primary.Env))
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SAMPLE_API_PRIMARY__ENV", "production")
	t.Setenv("SAMPLE_API_SERVER__PORT", "8080")
	t.Setenv("SAMPLE_API_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SAMPLE_API_DATABASE__HOST", "db.internal")
	t.Setenv("SAMPLE_API_DATABASE__MAX_OPEN_CONNS", "4")
	t.Setenv("SAMPLE_API_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	then.AssertThat(t, err, is.Nil())

	then.AssertThat(t, cfg.Primary.Env, is.EqualTo("production"))
	then.AssertThat(t, cfg.Observability.IsProduction(), is.EqualTo(true))
	then.AssertThat(t, cfg.Server.Port, is.EqualTo("8080"))
	then.AssertThat(t, cfg.Server.CORSAllowedOrigins, is.EqualTo([]string{"https://a.example", "https://b.example"}))
	then.AssertThat(t, cfg.Database.Host, is.EqualTo("db.internal"))
	then.AssertThat(t, cfg.Database.MaxOpenConns, is.EqualTo(4))
	then.AssertThat(t, cfg.Observability.Logging.SlowQueryThreshold, is.EqualTo(250*time.Millisecond))
}

func TestLoadConfigMariaDBDefaultPort(t *testing.T) {
	t.Setenv("SAMPLE_API_DATABASE__DRIVER", "mariadb")

	cfg, err := LoadConfig()
	then.AssertThat(t, err, is.Nil())
	then.AssertThat(t, cfg.Database.Port, is.EqualTo(3306))
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("SAMPLE_API_DATABASE__DRIVER", "sqlite")

	_, err := LoadConfig()
	then.AssertThat(t, err, is.Not(is.Nil()))
}

func TestObservabilityValidate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	then.AssertThat(t, cfg.Validate(), is.Nil())

	cfg.Logging.Level = "verbose"
	then.AssertThat(t, cfg.Validate(), is.Not(is.Nil()))

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	then.AssertThat(t, cfg.Validate(), is.Not(is.Nil()))
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	then.AssertThat(t, cfg.GetLogLevel(), is.EqualTo("info"))

	cfg.Environment = "development"
	then.AssertThat(t, cfg.GetLogLevel(), is.EqualTo("debug"))

	cfg.Logging.Level = "warn"
	then.AssertThat(t, cfg.GetLogLevel(), is.EqualTo("warn"))
}
