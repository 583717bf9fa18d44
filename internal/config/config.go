package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// SMTP settings (the only fatal configuration surface)
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	FromEmail string
	Recipient string

	// Fetch settings
	UserAgent      string
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
	ProviderDelay  time.Duration // politeness gap between calls to one provider

	// Scoring settings
	MinBiographyChars int     // biographies shorter than this score zero
	MinObituaryChars  int     // obituary texts shorter than this score zero
	JitterMax         float64 // biography ranking jitter upper bound
	ObitJitterMax     float64 // obituary scoring jitter upper bound
	RandSeed          int64   // 0 = time-based seed

	// Snippet settings
	SnippetTotalBudget int // words across all snippets of one biography
	SnippetWordBudget  int // words per snippet
	SnippetMinWords    int // snippets thinner than this are discarded
	SnippetMaxCount    int
	FallbackWordBudget int // whole-document fallback cap

	// Archive settings
	ArchiveAcceptChars int // article text length that stops the fallback chain

	// Selection settings
	DigestSize    int // people per digest
	EraCap        int // max picks sharing one era bucket
	RelaxPoolSize int // caps are enforced only while the pool exceeds this

	// Obituary settings
	FeedsConfigPath string
	ObitRecencyDays int
	ObitDeepPerFeed int // items per feed that get full archive resolution
	ObitPerSource   int // obituaries selected per publication

	// Seen-items ledger
	SeenFilePath      string
	SeenRetentionDays int
	SeenMinFresh      int // below this the seen filter is dropped for the run

	// App settings
	Debug bool
}

func Load() (*Config, error) {
	cfg := &Config{
		// Default values
		SMTPHost:           "smtp.gmail.com",
		SMTPPort:           587,
		UserAgent:          "BiographicalDigest/1.0 (personal digest; private user)",
		RequestTimeout:     20 * time.Second,
		RetryAttempts:      3,
		RetryDelay:         2 * time.Second,
		ProviderDelay:      500 * time.Millisecond,
		MinBiographyChars:  400,
		MinObituaryChars:   200,
		JitterMax:          8,
		ObitJitterMax:      2,
		SnippetTotalBudget: 500,
		SnippetWordBudget:  200,
		SnippetMinWords:    20,
		SnippetMaxCount:    3,
		FallbackWordBudget: 400,
		ArchiveAcceptChars: 500,
		DigestSize:         4,
		EraCap:             2,
		RelaxPoolSize:      6,
		FeedsConfigPath:    "configs/feeds.yaml",
		ObitRecencyDays:    7,
		ObitDeepPerFeed:    8,
		ObitPerSource:      2,
		SeenFilePath:       "seen_items.json",
		SeenRetentionDays:  90,
		SeenMinFresh:       4,
	}

	cfg.SMTPUser = os.Getenv("SMTP_USER")
	cfg.SMTPPass = os.Getenv("SMTP_APP_PASSWORD")
	cfg.Recipient = os.Getenv("DIGEST_RECIPIENT")
	cfg.FromEmail = getEnvOrDefault("DIGEST_FROM", cfg.SMTPUser)

	cfg.SMTPHost = getEnvOrDefault("SMTP_HOST", cfg.SMTPHost)
	cfg.SMTPPort = getEnvIntOrDefault("SMTP_PORT", cfg.SMTPPort)

	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)
	cfg.SeenFilePath = getEnvOrDefault("SEEN_FILE_PATH", cfg.SeenFilePath)
	cfg.SeenRetentionDays = getEnvIntOrDefault("SEEN_RETENTION_DAYS", cfg.SeenRetentionDays)

	if v := os.Getenv("RANK_JITTER_MAX"); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val >= 0 {
			cfg.JitterMax = val
		}
	}
	if v := os.Getenv("RAND_SEED"); v != "" {
		if val, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.RandSeed = val
		}
	}
	if v := os.Getenv("DIGEST_SIZE"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.DigestSize = val
		}
	}

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate rejects only the settings nothing useful can be produced
// without. Everything else degrades at runtime instead.
func (c *Config) Validate() error {
	if c.SMTPUser == "" {
		return fmt.Errorf("SMTP_USER is required")
	}
	if c.SMTPPass == "" {
		return fmt.Errorf("SMTP_APP_PASSWORD is required")
	}
	if c.Recipient == "" {
		return fmt.Errorf("DIGEST_RECIPIENT is required")
	}
	return nil
}
