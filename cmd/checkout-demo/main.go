package main

import (
	"context"
	"fmt"
	"github.com/nikolayk812/checkout-demo/internal/checkout"
	"github.com/nikolayk812/checkout-demo/internal/clock"
	"github.com/nikolayk812/checkout-demo/internal/config"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/metrics"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/nikolayk812/checkout-demo/internal/receipt"
	"github.com/nikolayk812/checkout-demo/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"os"
	"time"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "checkout-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(args, os.Getenv)
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("newLogger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	tp, err := newTracerProvider(cfg)
	if err != nil {
		return fmt.Errorf("newTracerProvider: %w", err)
	}
	otel.SetTracerProvider(tp)
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Warn("tracer provider shutdown", zap.Error(err))
		}
	}()

	clk := clock.System()
	if !cfg.Today.IsZero() {
		clk = clock.Fixed(cfg.Today)
	}

	catalog := repository.NewCatalog()
	if err := seedCatalog(ctx, catalog, cfg.Currency, clk.Today()); err != nil {
		return fmt.Errorf("seedCatalog: %w", err)
	}

	svc := checkout.NewService(clk,
		checkout.WithLogger(logger),
		checkout.WithMetrics(metrics.NewCheckout(prometheus.NewRegistry())),
		checkout.WithTracer(tp.Tracer("checkout-demo")),
	)

	customer := domain.NewCustomer("Ahmed", domain.NewMoney(cfg.Balance, cfg.Currency))
	cart := domain.NewCart(customer.Name, cfg.Currency)

	for _, line := range []struct {
		name string
		qty  int
	}{
		{name: "Cheese 200g", qty: 2},
		{name: "Biscuits 700g", qty: 1},
		{name: "Mobile scratch card", qty: 1},
	} {
		product, err := catalog.GetProduct(ctx, line.name)
		if err != nil {
			return fmt.Errorf("catalog.GetProduct: %w", err)
		}
		if err := svc.AddToCart(ctx, cart, product, line.qty); err != nil {
			return fmt.Errorf("svc.AddToCart: %w", err)
		}
	}

	rcpt, err := svc.Checkout(ctx, customer, cart)
	if err != nil {
		return fmt.Errorf("svc.Checkout: %w", err)
	}

	if err := receipt.Render(os.Stdout, rcpt); err != nil {
		return fmt.Errorf("receipt.Render: %w", err)
	}

	return nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	// stdout carries the transcript
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	zcfg.InitialFields = map[string]any{"service": "checkout-demo"}

	return zcfg.Build()
}

// newTracerProvider always returns an SDK provider; spans are exported only when tracing is on.
func newTracerProvider(cfg config.Config) (*sdktrace.TracerProvider, error) {
	var opts []sdktrace.TracerProviderOption

	if cfg.Trace {
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(os.Stderr),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("stdouttrace.New: %w", err)
		}
		opts = append(opts, sdktrace.WithSyncer(exporter))
	}

	return sdktrace.NewTracerProvider(opts...), nil
}

func seedCatalog(ctx context.Context, catalog port.CatalogRepository, cur currency.Unit, today time.Time) error {
	price := func(amount int64) domain.Money {
		return domain.NewMoney(decimal.NewFromInt(amount), cur)
	}
	weight := func(kg string) *domain.Shipping {
		return &domain.Shipping{WeightKg: decimal.RequireFromString(kg)}
	}

	seeds := []struct {
		name     string
		price    domain.Money
		qty      int
		expiry   domain.ExpiryPolicy
		shipping *domain.Shipping
	}{
		{"Cheese 200g", price(100), 5, domain.ExpiresOn(today.AddDate(0, 2, 0)), weight("0.2")},
		{"Biscuits 700g", price(150), 2, domain.ExpiresOn(today.AddDate(0, 1, 0)), weight("0.7")},
		{"TV", price(300), 4, domain.NeverExpires(), weight("5.0")},
		{"Mobile scratch card", price(50), 10, domain.NeverExpires(), nil},
	}

	for _, s := range seeds {
		product, err := domain.NewProduct(s.name, s.price, s.qty, s.expiry, s.shipping)
		if err != nil {
			return fmt.Errorf("domain.NewProduct[%s]: %w", s.name, err)
		}
		if err := catalog.AddProduct(ctx, product); err != nil {
			return fmt.Errorf("catalog.AddProduct: %w", err)
		}
	}

	return nil
}
