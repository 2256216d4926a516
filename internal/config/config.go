package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL     = "localhost:8081"
	DefaultDatabaseDSN = "catalogue.db"
	DefaultClientDB    = "ui.sqlite"
)

type Config struct {
	// Server-side settings
	DatabaseDSN string   `env:"DATABASE_URI"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
	Seed        bool     `env:"SEED"`
	TLSCertFile string   `env:"TLS_CERT_FILE"`
	TLSKeyFile  string   `env:"TLS_KEY_FILE"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL      string `env:"-"`
	ClientDBPath   string `env:"CLIENT_DB_PATH"`
	LocalFavorites bool   `env:"LOCAL_FAVORITES"`
	Version        bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags перекрывают значения из env
	// Server flags
	corsOrigins := strings.Join(cfg.CORSOrigins, ",")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД: postgres DSN, путь к файлу SQLite или memory")
	flag.StringVar(&corsOrigins, "cors-origins", corsOrigins, "разрешённые CORS origin через запятую")
	flag.BoolVar(&cfg.Seed, "seed", cfg.Seed, "заполнить каталог демонстрационными данными при старте")
	flag.StringVar(&cfg.TLSCertFile, "tls-cert", cfg.TLSCertFile, "TLS certificate file (server, with -https)")
	flag.StringVar(&cfg.TLSKeyFile, "tls-key", cfg.TLSKeyFile, "TLS key file (server, with -https)")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the catalogue server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to client SQLite DB")
	flag.BoolVar(&cfg.LocalFavorites, "local-favorites", cfg.LocalFavorites, "keep favorites locally instead of on the server (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.CORSOrigins = splitList(corsOrigins)

	// Defaults
	if strings.TrimSpace(cfg.DatabaseDSN) == "" {
		cfg.DatabaseDSN = DefaultDatabaseDSN
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	if cfg.ClientDBPath == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.ClientDBPath = filepath.Join(dir, "Catalogue", DefaultClientDB)
		}
	}

	return cfg
}

// splitList разбирает список через запятую, отбрасывая пустые элементы.
func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
