package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Postgres backs the local plan store and user table. Ignored when
	// Supabase is configured.
	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	// Supabase selects the remote managed backend for both plan storage and
	// identity verification. Its URL being set is the single switch between
	// the local and remote deployment variants.
	Supabase *SupabaseConfig `json:"supabase" yaml:"supabase"`

	// SecretKey signs locally issued access tokens.
	SecretKey struct {
		Access    string `json:"access" yaml:"access"`
		Algorithm string `json:"algorithm" yaml:"algorithm"`
	} `json:"secretKey" yaml:"secretKey"`

	// Planner is the LLM itinerary-generation agent.
	Planner *PlannerConfig `json:"planner" yaml:"planner"`

	// Amap is the mapping/routing provider.
	Amap *AmapConfig `json:"amap" yaml:"amap"`

	// Speech is the speech-recognition provider plus the optional
	// LLM extraction endpoint used by the voice-input pipeline.
	Speech *SpeechConfig `json:"speech" yaml:"speech"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PostgresConfig defines the local relational backend connection.
type PostgresConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"dbname" yaml:"dbname"`
	SSLMode  string `json:"sslmode" yaml:"sslmode"`
}

// DSN renders the connection string for the postgres driver.
func (c *PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslMode)
}

// SupabaseConfig defines the remote managed backend. The service role key is
// a service-level credential distinct from end-user tokens; every storage
// call carries it.
type SupabaseConfig struct {
	URL            string `json:"url" yaml:"url"`
	ServiceRoleKey string `json:"serviceRoleKey" yaml:"serviceRoleKey"`
}

// PlannerConfig defines the LLM plan-generation agent endpoint.
type PlannerConfig struct {
	URL    string `json:"url" yaml:"url"`
	APIKey string `json:"apiKey" yaml:"apiKey"`
}

// AmapConfig defines the Amap routing provider. BaseURL is overridable for
// development proxies and defaults to the public REST API.
type AmapConfig struct {
	Key     string `json:"key" yaml:"key"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// SpeechConfig defines the speech-recognition endpoint and the optional
// extraction endpoint. When ExtractionURL is empty the pipeline uses the
// heuristic fallback only.
type SpeechConfig struct {
	RecognitionURL string `json:"recognitionUrl" yaml:"recognitionUrl"`
	APIKey         string `json:"apiKey" yaml:"apiKey"`
	ExtractionURL  string `json:"extractionUrl" yaml:"extractionUrl"`
}

// CloudBackendEnabled reports whether the remote managed backend is
// configured. Evaluated once at startup; it selects both the plan store and
// the credential verifier variant.
func (c *Config) CloudBackendEnabled() bool {
	return c.Supabase != nil && c.Supabase.URL != ""
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SUPABASE_SERVICEROLEKEY -> supabase.serviceRoleKey
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	return LoadWithEnv[Config]("config", "config", "../config", "../../config")
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
