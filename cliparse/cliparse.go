package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/bfhl/identity"
)

// Defaults applied when neither a flag nor an env variable is set
const (
	DefaultPort           = 3318
	DefaultFullName       = "john doe"
	DefaultDOB            = "17091999" // ddmmyyyy
	DefaultEmail          = "john@xyz.com"
	DefaultRollNumber     = "ABCD123"
	DefaultMaxBodyBytes   = 1 << 20
	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvFile        = ".env"
)

var (
	ErrInvalidPort     = errors.New("invalid PORT env variable")
	ErrInvalidBodySize = errors.New("invalid MAX_BODY_BYTES")
	ErrInvalidRate     = errors.New("invalid rate limit")
	ErrInvalidLogLevel = errors.New("invalid LOG_LEVEL")
	ErrInvalidFormat   = errors.New("invalid LOG_FORMAT")
)

// Config is resolved once at startup and never mutated afterwards
type Config struct {
	Port int

	// Identity fields echoed in every /bfhl response
	FullName   string
	DOB        string
	Email      string
	RollNumber string

	MaxBodyBytes   int64
	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel  slog.Level
	LogFormat string
}

// UserID derives the response user_id from FullName and DOB
func (c Config) UserID() string {
	return identity.UserID(c.FullName, c.DOB)
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var (
		envFile   string
		maxBody   string
		rps       string
		burst     string
		logLevel  string
		logFormat string
	)

	flags := flag.NewFlagSet("bfhl", flag.ContinueOnError)

	flags.StringVar(&envFile, "env-file", "", "Path to a .env file (default .env)")
	flags.IntVar(&cfg.Port, "p", 0, "Server port")

	flags.StringVar(&cfg.FullName, "name", "", "Full name used for user_id")
	flags.StringVar(&cfg.DOB, "dob", "", "Date of birth (ddmmyyyy) used for user_id")
	flags.StringVar(&cfg.Email, "email", "", "Email address")
	flags.StringVar(&cfg.RollNumber, "roll", "", "Roll number")

	flags.StringVar(&maxBody, "max-body", "", "Maximum request body size, e.g. 1MiB")
	flags.StringVar(&rps, "rps", "", "Requests per second per client (0 disables)")
	flags.StringVar(&burst, "burst", "", "Rate limiter burst size")

	flags.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "Log format (text or json)")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	// .env never overrides variables that are already set
	if envFile == "" {
		envFile = os.Getenv("ENV_FILE")
	}
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil || port <= 0 || port > 65535 {
				return Config{}, ErrInvalidPort
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	// Identity fields keep an explicitly empty value; only unset falls back
	passed := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { passed[f.Name] = true })

	cfg.FullName = identityValue(passed["name"], cfg.FullName, "FULL_NAME", DefaultFullName)
	cfg.DOB = identityValue(passed["dob"], cfg.DOB, "DOB", DefaultDOB)
	cfg.Email = identityValue(passed["email"], cfg.Email, "EMAIL", DefaultEmail)
	cfg.RollNumber = identityValue(passed["roll"], cfg.RollNumber, "ROLL_NUMBER", DefaultRollNumber)

	maxBody = firstNonEmpty(maxBody, os.Getenv("MAX_BODY_BYTES"))
	if maxBody == "" {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	} else {
		n, err := humanize.ParseBytes(maxBody)
		if err != nil || n == 0 || n > 1<<40 {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidBodySize, maxBody)
		}
		cfg.MaxBodyBytes = int64(n)
	}

	rps = firstNonEmpty(rps, os.Getenv("RATE_LIMIT_RPS"))
	if rps == "" {
		cfg.RateLimitRPS = DefaultRateLimitRPS
	} else {
		v, err := strconv.ParseFloat(rps, 64)
		if err != nil || v < 0 {
			return Config{}, fmt.Errorf("%w: rps %q", ErrInvalidRate, rps)
		}
		cfg.RateLimitRPS = v
	}

	burst = firstNonEmpty(burst, os.Getenv("RATE_LIMIT_BURST"))
	if burst == "" {
		cfg.RateLimitBurst = DefaultRateLimitBurst
	} else {
		v, err := strconv.Atoi(burst)
		if err != nil || v < 1 {
			return Config{}, fmt.Errorf("%w: burst %q", ErrInvalidRate, burst)
		}
		cfg.RateLimitBurst = v
	}

	logLevel = firstNonEmpty(logLevel, os.Getenv("LOG_LEVEL"), DefaultLogLevel)
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidLogLevel, logLevel)
	}

	cfg.LogFormat = strings.ToLower(firstNonEmpty(logFormat, os.Getenv("LOG_FORMAT"), DefaultLogFormat))
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.LogFormat)
	}

	return cfg, nil
}

// loadEnvFile loads path into the process environment. A missing default
// file is fine, a missing explicit one is not.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}

// identityValue picks the flag value when the flag was passed, then the
// environment variable when it is set (even to ""), then def
func identityValue(passed bool, flagValue, key, def string) string {
	if passed {
		return flagValue
	}
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
