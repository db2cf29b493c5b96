package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 int
	DatabaseURL          string
	DatabaseType         string
	Partners             []string
	PartnerKeySalt       string
	PersonalizeThreshold int
	CatalogPath          string
	PrintKeys            bool
}

// Defaults
const (
	DefaultPort                 = 3318
	DefaultDatabaseURL          = "file:baby-pick.db"
	DefaultPartners             = "nick,nicki"
	DefaultPersonalizeThreshold = 20
)

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var partners string

	// Missing .env is fine; real env vars always win
	_ = godotenv.Load()

	fs := flag.NewFlagSet("baby-pick", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// App config
	fs.StringVar(&partners, "partners", "", "Comma-separated partner names (exactly two)")
	fs.IntVar(&cfg.PersonalizeThreshold, "threshold", 0, "Ratings needed before personalizing")
	fs.StringVar(&cfg.CatalogPath, "catalog", "", "Path to a YAML name catalog (default: embedded)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.PartnerKeySalt, "key-salt", "", "Partner key salt (prefer env)")
	fs.BoolVar(&cfg.PrintKeys, "print-keys", false, "Print each partner's key and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultDatabaseURL
	}

	if partners == "" {
		partners = os.Getenv("PARTNERS")
	}
	if partners == "" {
		partners = DefaultPartners
	}
	parsed, err := parsePartners(partners)
	if err != nil {
		return Config{}, err
	}
	cfg.Partners = parsed

	if cfg.PersonalizeThreshold == 0 {
		if s := os.Getenv("PERSONALIZE_THRESHOLD"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return Config{}, errors.New("invalid PERSONALIZE_THRESHOLD env variable")
			}
			cfg.PersonalizeThreshold = n
		} else {
			cfg.PersonalizeThreshold = DefaultPersonalizeThreshold
		}
	}
	if cfg.PersonalizeThreshold < 1 {
		return Config{}, errors.New("personalize threshold must be positive")
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	}

	// Optional: empty salt disables partner keys
	if cfg.PartnerKeySalt == "" {
		cfg.PartnerKeySalt = os.Getenv("PARTNER_KEY_SALT")
	}
	if cfg.PrintKeys && cfg.PartnerKeySalt == "" {
		return Config{}, errors.New("PARTNER_KEY_SALT required to print keys")
	}

	return cfg, nil
}

// parsePartners lowercases and validates the partner list
func parsePartners(s string) ([]string, error) {
	var partners []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		partners = append(partners, p)
	}

	if len(partners) != 2 {
		return nil, fmt.Errorf("exactly two partners required, got %d", len(partners))
	}
	if partners[0] == partners[1] {
		return nil, errors.New("partner names must differ")
	}

	return partners, nil
}
