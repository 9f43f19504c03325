package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryDSN string `env:"SENTRY_DSN"`
	}
	Bluesky struct {
		APIHost string `env:"BLUESKY_API_HOST" env-default:"https://api.bsky.app"`
		// DefaultDomain completes bare handles ("alice" -> "alice.bsky.social")
		// and doubles as the noise-domain filter of the tokenizer.
		DefaultDomain string `env:"BLUESKY_DEFAULT_DOMAIN" env-default:"bsky.social"`
		// PagesPerSecond paces author-feed page requests against the public API.
		PagesPerSecond float64 `env:"BLUESKY_PAGES_PER_SECOND" env-default:"5"`
	}
	Summarizer struct {
		URL      string `env:"SUMMARIZER_URL"`
		Language string `env:"SUMMARIZER_LANGUAGE" env-default:"en"`
		Tone     string `env:"SUMMARIZER_TONE" env-default:"neutral"`
	}
	Telegram struct {
		Token string `env:"TELEGRAM_TOKEN"`
		// Chat receives scheduled digests and operational notices.
		Chat int64 `env:"TELEGRAM_CHAT"`
	}
	Digest struct {
		// Handles is a comma-separated list of accounts that get a daily digest.
		Handles    string `env:"DIGEST_HANDLES"`
		WindowDays int    `env:"DIGEST_WINDOW_DAYS" env-default:"7"`
		Hour       int    `env:"DIGEST_HOUR" env-default:"8"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
