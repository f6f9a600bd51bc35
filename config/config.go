package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Sweeper  SweeperConfig  `yaml:"sweeper"`
	MoMo     MoMoConfig     `yaml:"momo"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Duration lets yaml carry values like "1m" or "15m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type SweeperConfig struct {
	Interval      Duration `yaml:"interval"`       // how often the sweep runs
	PendingCutoff Duration `yaml:"pending_cutoff"` // max age of an unconfirmed hold
	PaymentCutoff Duration `yaml:"payment_cutoff"` // max age of an unpaid QR intent
}

type MoMoConfig struct {
	Endpoint    string `yaml:"endpoint"`
	PartnerCode string `yaml:"partner_code"`
	AccessKey   string `yaml:"access_key"`
	SecretKey   string `yaml:"secret_key"`
	RedirectURL string `yaml:"redirect_url"`
	IPNURL      string `yaml:"ipn_url"`
}

// Load reads the yaml config, expanding ${ENV} references after merging .env.
func Load(configPath string) (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load(".env")

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expanded := []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return nil, err
	}

	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}
	if cfg.Sweeper.Interval == 0 {
		cfg.Sweeper.Interval = Duration(time.Minute)
	}
	if cfg.Sweeper.PendingCutoff == 0 {
		cfg.Sweeper.PendingCutoff = Duration(time.Minute)
	}
	if cfg.Sweeper.PaymentCutoff == 0 {
		cfg.Sweeper.PaymentCutoff = Duration(15 * time.Minute)
	}
	return &cfg, nil
}
