package config

import (
	"flag"
	"fmt"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/currency"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

type Config struct {
	Currency currency.Unit
	Balance  decimal.Decimal
	// Today pins the clock; zero means the system clock.
	Today    time.Time
	LogLevel zapcore.Level
	// Trace exports checkout spans to stderr.
	Trace    bool
}

// Load reads flags, falling back to CHECKOUT_* environment variables and then defaults.
func Load(args []string, getenv func(string) string) (Config, error) {
	fs := flag.NewFlagSet("checkout-demo", flag.ContinueOnError)

	cur := fs.String("currency", envOr(getenv, "CHECKOUT_CURRENCY", "EGP"), "ISO 4217 currency of catalog and account")
	balance := fs.String("balance", envOr(getenv, "CHECKOUT_BALANCE", "1000"), "starting customer balance")
	today := fs.String("today", envOr(getenv, "CHECKOUT_TODAY", ""), "date used for expiry checks, YYYY-MM-DD")
	level := fs.String("log-level", envOr(getenv, "LOG_LEVEL", "info"), "zap log level")
	traceEnv := envOr(getenv, "CHECKOUT_TRACE", "false")
	traceDefault, err := strconv.ParseBool(traceEnv)
	if err != nil {
		return Config{}, fmt.Errorf("CHECKOUT_TRACE[%s] is not valid: %w", traceEnv, err)
	}
	trace := fs.Bool("trace", traceDefault, "export checkout spans to stderr")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("fs.Parse: %w", err)
	}

	cfg := Config{Trace: *trace}

	cfg.Currency, err = currency.ParseISO(*cur)
	if err != nil {
		return Config{}, fmt.Errorf("currency[%s] is not valid: %w", *cur, err)
	}

	cfg.Balance, err = decimal.NewFromString(*balance)
	if err != nil {
		return Config{}, fmt.Errorf("balance[%s] is not valid: %w", *balance, err)
	}
	if cfg.Balance.IsNegative() {
		return Config{}, fmt.Errorf("balance[%s] is negative", *balance)
	}

	if *today != "" {
		cfg.Today, err = time.Parse(dateLayout, *today)
		if err != nil {
			return Config{}, fmt.Errorf("today[%s] is not valid: %w", *today, err)
		}
	}

	cfg.LogLevel, err = zapcore.ParseLevel(*level)
	if err != nil {
		return Config{}, fmt.Errorf("log-level[%s] is not valid: %w", *level, err)
	}

	return cfg, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if getenv == nil {
		return fallback
	}
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
