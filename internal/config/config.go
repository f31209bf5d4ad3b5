package config

import (
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "VOICEDESK_CONFIG"

	httpAddrEnv = "HTTP_ADDR"
	amqpURLEnv  = "AMQP_URL"

	dbHostEnv     = "DB_HOST"
	dbPortEnv     = "DB_PORT"
	dbUserEnv     = "DB_USER"
	dbPasswordEnv = "DB_PASSWORD"
	dbNameEnv     = "DB_NAME"

	slackTokenEnv = "SLACK_BOT_TOKEN"

	zohoRefreshTokenEnv = "ZOHO_REFRESH_TOKEN"
	zohoClientIDEnv     = "ZOHO_CLIENT_ID"
	zohoClientSecretEnv = "ZOHO_CLIENT_SECRET"
	zohoOrgIDEnv        = "ZOHO_ORG_ID"
	zohoDepartmentIDEnv = "ZOHO_DEPARTMENT_ID"

	transcriptionProviderEnv = "TRANSCRIPTION_PROVIDER"
	transcriptionAPIKeyEnv   = "TRANSCRIPTION_API_KEY"

	pipelineWorkersEnv = "PIPELINE_WORKERS"
)

// Config holds high-level settings required across the application.
type Config struct {
	HTTPAddr      string              `yaml:"httpAddr"`
	AMQPURL       string              `yaml:"amqpUrl"`
	Database      DatabaseConfig      `yaml:"database"`
	Slack         SlackConfig         `yaml:"slack"`
	Zoho          ZohoConfig          `yaml:"zoho"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Pipeline      PipelineConfig      `yaml:"pipeline"`
}

// DatabaseConfig describes Postgres connection details. An empty host means
// the in-memory deduplication store is used instead.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

// SlackConfig wires the workspace bot credentials.
type SlackConfig struct {
	Token   string `yaml:"token"`
	BaseURL string `yaml:"baseUrl"`
}

// ZohoConfig defines how to reach the Zoho Desk API and its accounts server.
type ZohoConfig struct {
	BaseURL      string `yaml:"baseUrl"`
	TokenURL     string `yaml:"tokenUrl"`
	RefreshToken string `yaml:"refreshToken"`
	ClientID     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	OrgID        string `yaml:"orgId"`
	DepartmentID string `yaml:"departmentId"`
}

// TranscriptionConfig selects the speech-to-text provider.
type TranscriptionConfig struct {
	Provider        string        `yaml:"provider"`
	APIKey          string        `yaml:"apiKey"`
	BaseURL         string        `yaml:"baseUrl"`
	PollInterval    time.Duration `yaml:"pollInterval"`
	MaxPollAttempts int           `yaml:"maxPollAttempts"`
}

// PipelineConfig bounds the background worker pool.
type PipelineConfig struct {
	Workers         int           `yaml:"workers"`
	QueueSize       int           `yaml:"queueSize"`
	EventTimeout    time.Duration `yaml:"eventTimeout"`
	ReprocessFailed bool          `yaml:"reprocessFailed"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.WithError(err).Warnf("config: cannot read %s, falling back to defaults", path)
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			log.WithError(err).Warnf("config: cannot parse %s, falling back to defaults", path)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(httpAddrEnv); v != "" {
		c.HTTPAddr = v
	}
	if v := os.Getenv(amqpURLEnv); v != "" {
		c.AMQPURL = v
	}

	if v := os.Getenv(dbHostEnv); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv(dbPortEnv); v != "" {
		c.Database.Port = v
	}
	if v := os.Getenv(dbUserEnv); v != "" {
		c.Database.User = v
	}
	if v := os.Getenv(dbPasswordEnv); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(dbNameEnv); v != "" {
		c.Database.Name = v
	}

	if v := os.Getenv(slackTokenEnv); v != "" {
		c.Slack.Token = v
	}

	if v := os.Getenv(zohoRefreshTokenEnv); v != "" {
		c.Zoho.RefreshToken = v
	}
	if v := os.Getenv(zohoClientIDEnv); v != "" {
		c.Zoho.ClientID = v
	}
	if v := os.Getenv(zohoClientSecretEnv); v != "" {
		c.Zoho.ClientSecret = v
	}
	if v := os.Getenv(zohoOrgIDEnv); v != "" {
		c.Zoho.OrgID = v
	}
	if v := os.Getenv(zohoDepartmentIDEnv); v != "" {
		c.Zoho.DepartmentID = v
	}

	if v := os.Getenv(transcriptionProviderEnv); v != "" {
		c.Transcription.Provider = v
	}
	if v := os.Getenv(transcriptionAPIKeyEnv); v != "" {
		c.Transcription.APIKey = v
	}

	if v := os.Getenv(pipelineWorkersEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Pipeline.Workers = n
		} else {
			log.Warnf("config: ignoring invalid %s value %q", pipelineWorkersEnv, v)
		}
	}
}

func defaultConfig() Config {
	return Config{
		HTTPAddr: ":8080",
		Zoho: ZohoConfig{
			BaseURL:  "https://desk.zoho.com",
			TokenURL: "https://accounts.zoho.com/oauth/v2/token",
		},
		Transcription: TranscriptionConfig{
			Provider: "deepgram",
		},
		Pipeline: PipelineConfig{
			Workers:      4,
			QueueSize:    64,
			EventTimeout: 5 * time.Minute,
		},
	}
}
