package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"groupschedule/config"
)

var configEnvVars = []string{
	"GO_ENV", "DATABASE_URL", "PORT", "APP_URL", "CORS_ALLOWED_ORIGINS", "REQUEST_TIMEOUT",
	"PASSPHRASE_HASHING", "BCRYPT_COST", "MIGRATE_ON_START", "LOG_LEVEL", "MAIL_PROVIDER",
	"MAIL_FROM_ADDRESS", "MAIL_FROM_NAME", "AWS_REGION", "AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY", "APP_CONFIG",
}

// clearConfigEnv unsets every key Load reads and restores them when the test ends.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// Skip the .env lookup.
	t.Setenv("GO_ENV", "production")
}

func TestLoad(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnv(t)

		convey.Convey("When nothing is set", func() {
			cfg, err := config.Load()

			convey.Convey("Then defaults apply", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, "8080")
				convey.So(cfg.AppURL, convey.ShouldEqual, "http://localhost:3000")
				convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"http://localhost:3000"})
				convey.So(cfg.RequestTimeout, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.PassphraseHashing, convey.ShouldEqual, "plain")
				convey.So(cfg.BcryptCost, convey.ShouldEqual, 10)
				convey.So(cfg.MigrateOnStart, convey.ShouldBeTrue)
				convey.So(cfg.MailProvider, convey.ShouldEqual, "noop")
				convey.So(cfg.IsProduction(), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When environment variables are set", func() {
			t.Setenv("PORT", "9090")
			t.Setenv("APP_URL", "https://plan.example.com/")
			t.Setenv("CORS_ALLOWED_ORIGINS", "https://plan.example.com, http://localhost:3000")
			t.Setenv("REQUEST_TIMEOUT", "2s")
			t.Setenv("PASSPHRASE_HASHING", "bcrypt")
			t.Setenv("BCRYPT_COST", "12")
			t.Setenv("MIGRATE_ON_START", "false")
			t.Setenv("UNRELATED_SETTING", "ignored")

			cfg, err := config.Load()

			convey.Convey("Then they override the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, "9090")
				convey.So(cfg.AppURL, convey.ShouldEqual, "https://plan.example.com")
				convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"https://plan.example.com", "http://localhost:3000"})
				convey.So(cfg.RequestTimeout, convey.ShouldEqual, 2*time.Second)
				convey.So(cfg.PassphraseHashing, convey.ShouldEqual, "bcrypt")
				convey.So(cfg.BcryptCost, convey.ShouldEqual, 12)
				convey.So(cfg.MigrateOnStart, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When a YAML file is given", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			err := os.WriteFile(path, []byte("port: \"7070\"\nlog_level: debug\nmail_provider: ses\nmail_from_address: noreply@example.com\n"), 0o600)
			convey.So(err, convey.ShouldBeNil)
			t.Setenv("APP_CONFIG", path)
			t.Setenv("LOG_LEVEL", "warn")

			cfg, err := config.Load()

			convey.Convey("Then file values apply and env still wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, "7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.MailProvider, convey.ShouldEqual, "ses")
				convey.So(cfg.MailFromAddress, convey.ShouldEqual, "noreply@example.com")
			})
		})

		convey.Convey("When the config file is missing", func() {
			t.Setenv("APP_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
			_, err := config.Load()

			convey.Convey("Then Load fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When values are invalid", func() {
			cases := map[string]string{
				"PASSPHRASE_HASHING": "rot13",
				"REQUEST_TIMEOUT":    "0s",
				"MAIL_PROVIDER":      "ses",
			}
			for key, value := range cases {
				clearConfigEnv(t)
				t.Setenv(key, value)
				_, err := config.Load()
				convey.So(err, convey.ShouldNotBeNil)
			}
		})
	})
}

func TestNewLogger(t *testing.T) {
	convey.Convey("Given a config", t, func() {
		cfg := config.Defaults()
		cfg.LogLevel = "error"

		convey.Convey("Then the logger honours the level", func() {
			logger := config.NewLogger(cfg)
			convey.So(logger, convey.ShouldNotBeNil)
			convey.So(logger.Handler().Enabled(t.Context(), slog.LevelWarn), convey.ShouldBeFalse)
		})
	})
}
