package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Comma default lives here because envconfig tag options are themselves
// comma-separated.
const defaultTopTierInvestors = "binance labs,a16z,jump,coinbase,okx,okx ventures,paradigm,polychain,dragonfly,framework,hashkey,multicoin"

type Config struct {
	TelegramBotToken    string `env:"TELEGRAM_BOT_TOKEN,required"`
	TelegramChatID      int64  `env:"TELEGRAM_CHAT_ID,required"`
	TelegramPollTimeout int    `env:"TELEGRAM_POLL_TIMEOUT,default=60"`

	DBHost            string        `env:"DB_HOST,required"`
	DBPort            int           `env:"DB_PORT,default=5432"`
	DBUser            string        `env:"DB_USER,required"`
	DBPassword        string        `env:"DB_PASSWORD,required"`
	DBName            string        `env:"DB_NAME,required"`
	DBSSLMode         string        `env:"DB_SSLMODE,default=disable"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,default=10"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,default=25"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,default=30m"`

	LlamaBaseURL string        `env:"LLAMA_BASE_URL,default=https://api.llama.fi"`
	LlamaTimeout time.Duration `env:"LLAMA_TIMEOUT,default=15s"`

	RadarCron        string        `env:"RADAR_CRON,default=@every 30m"`
	NewProjectDays   int           `env:"NEW_PROJECT_DAYS,default=14"`
	UsageRecencyDays int           `env:"USAGE_RECENCY_DAYS,default=30"`
	MinQualityScore  int           `env:"MIN_QUALITY_SCORE,default=80"`
	MinUsageScore    int           `env:"MIN_USAGE_SCORE,default=80"`
	MaxSignalsPerRun int           `env:"MAX_SIGNALS_PER_RUN,default=3"`
	RaiseSubCap      int           `env:"RAISE_SUB_CAP,default=3"`
	TopTierInvestors string        `env:"TOP_TIER_INVESTORS"`
	NotifyDelay      time.Duration `env:"NOTIFY_DELAY,default=1s"`

	LogLevel string `env:"LOG_LEVEL,default=info"`
}

func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.TopTierInvestors) == "" {
		cfg.TopTierInvestors = defaultTopTierInvestors
	}
	return cfg, nil
}

// Validate rejects malformed thresholds before any run begins. A config
// error here is fatal at startup; it is never encountered mid-run.
func (c Config) Validate() error {
	if c.MaxSignalsPerRun <= 0 {
		return fmt.Errorf("MAX_SIGNALS_PER_RUN must be positive, got %d", c.MaxSignalsPerRun)
	}
	if c.RaiseSubCap < 0 {
		return fmt.Errorf("RAISE_SUB_CAP must not be negative, got %d", c.RaiseSubCap)
	}
	if c.RaiseSubCap > c.MaxSignalsPerRun {
		return fmt.Errorf("RAISE_SUB_CAP %d exceeds MAX_SIGNALS_PER_RUN %d", c.RaiseSubCap, c.MaxSignalsPerRun)
	}
	if c.NewProjectDays <= 0 {
		return fmt.Errorf("NEW_PROJECT_DAYS must be positive, got %d", c.NewProjectDays)
	}
	if c.UsageRecencyDays <= 0 {
		return fmt.Errorf("USAGE_RECENCY_DAYS must be positive, got %d", c.UsageRecencyDays)
	}
	if c.MinQualityScore < 0 {
		return fmt.Errorf("MIN_QUALITY_SCORE must not be negative, got %d", c.MinQualityScore)
	}
	if c.MinUsageScore < 0 {
		return fmt.Errorf("MIN_USAGE_SCORE must not be negative, got %d", c.MinUsageScore)
	}
	if len(c.TopTierList()) == 0 {
		return fmt.Errorf("TOP_TIER_INVESTORS must name at least one investor")
	}
	if c.LlamaTimeout <= 0 {
		return fmt.Errorf("LLAMA_TIMEOUT must be positive, got %s", c.LlamaTimeout)
	}
	if c.NotifyDelay < 0 {
		return fmt.Errorf("NOTIFY_DELAY must not be negative, got %s", c.NotifyDelay)
	}
	return nil
}

// TopTierList splits the comma-separated investor allow-list, trimming
// blanks.
func (c Config) TopTierList() []string {
	parts := strings.Split(c.TopTierInvestors, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
