package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Bounds of short_code_length. The upper bound is the width of urls.short_code.
const (
	minShortCodeLength = 7
	maxShortCodeLength = 16
)

// Counter backends.
const (
	CounterPostgres = "postgres"
	CounterRedis    = "redis"
)

type Config struct {
	Env             string `yaml:"env"`
	BaseURL         string `yaml:"base_url"`
	ShortCodeLength int    `yaml:"short_code_length"`
	DocsPath        string `yaml:"docs_path"`
	Log             `yaml:"log"`
	HTTPServer      `yaml:"http_server"`
	Postgres        `yaml:"postgres"`
	Redis           `yaml:"redis"`
	Counter         `yaml:"counter"`
	Probe           `yaml:"probe"`
	Geo             `yaml:"geo"`
}

type Log struct {
	Level   string `yaml:"level"`
	Concise bool   `yaml:"concise"`
	JSON    bool   `yaml:"json"`
}

var defaultLog = Log{
	Level:   "info",
	Concise: true,
}

type HTTPServer struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MaxHeaderBytes int           `yaml:"max_header_bytes"`
	CertFile       string        `yaml:"cert_file"`
	KeyFile        string        `yaml:"key_file"`
}

var defaultHTTPServer = HTTPServer{
	Port:           8080,
	ReadTimeout:    5 * time.Second,
	WriteTimeout:   15 * time.Second,
	IdleTimeout:    time.Minute,
	MaxHeaderBytes: 1 << 20,
}

func (s *HTTPServer) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type Postgres struct {
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	DB              string        `yaml:"db"`
	SSLMode         string        `yaml:"sslmode"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
}

var defaultPostgres = Postgres{
	Host:            "localhost",
	Port:            5432,
	SSLMode:         "disable",
	ConnMaxIdleTime: 5 * time.Minute,
	ConnMaxLifetime: 30 * time.Minute,
	MaxIdleConns:    5,
	MaxOpenConns:    25,
}

func (p *Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DB, p.SSLMode)
}

type Redis struct {
	Addr        string        `yaml:"addr"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	PoolSize    int           `yaml:"pool_size"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
}

var defaultRedis = Redis{
	Addr:        "localhost:6379",
	PoolSize:    10,
	DialTimeout: 5 * time.Second,
}

// Counter selects where the shared sequence behind generated short codes lives.
type Counter struct {
	Backend  string `yaml:"backend"`
	Key      string `yaml:"key"`
	MaxSkips int    `yaml:"max_skips"`
}

var defaultCounter = Counter{
	Backend:  CounterPostgres,
	Key:      "shorty:counter",
	MaxSkips: 16,
}

type Probe struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

var defaultProbe = Probe{
	Timeout:   5 * time.Second,
	UserAgent: "shorty-probe/1.0",
}

type Geo struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

var defaultGeo = Geo{
	BaseURL: "https://ipinfo.io",
	Timeout: 2 * time.Second,
}

func Load(path string) (*Config, error) {
	const op = "config.Load"

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open config file: %w", op, err)
	}
	defer f.Close()

	var cfg Config
	setDefaults(&cfg)

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to decode config file: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Counter.Backend {
	case CounterPostgres, CounterRedis:
	default:
		return fmt.Errorf("unknown counter backend %q", c.Counter.Backend)
	}

	if c.ShortCodeLength < minShortCodeLength || c.ShortCodeLength > maxShortCodeLength {
		return fmt.Errorf("short code length must be between %d and %d, got %d",
			minShortCodeLength, maxShortCodeLength, c.ShortCodeLength)
	}

	return nil
}

func setDefaults(cfg *Config) {
	cfg.Env = EnvDev
	cfg.BaseURL = "http://localhost:8080"
	cfg.ShortCodeLength = 7
	cfg.DocsPath = "./docs/swagger.yml"
	cfg.Log = defaultLog
	cfg.HTTPServer = defaultHTTPServer
	cfg.Postgres = defaultPostgres
	cfg.Redis = defaultRedis
	cfg.Counter = defaultCounter
	cfg.Probe = defaultProbe
	cfg.Geo = defaultGeo
}
