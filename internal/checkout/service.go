package checkout

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nikolayk812/checkout-demo/internal/domain"
	"github.com/nikolayk812/checkout-demo/internal/metrics"
	"github.com/nikolayk812/checkout-demo/internal/port"
	"github.com/nikolayk812/checkout-demo/internal/shipping"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/nikolayk812/checkout-demo/internal/checkout"

// Service runs the all-or-nothing checkout. It holds no cart or stock state of its own.
type Service struct {
	clock   port.Clock
	log     *zap.Logger
	metrics *metrics.Checkout
	tracer  trace.Tracer
}

type Option func(*Service)

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func WithMetrics(m *metrics.Checkout) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

func NewService(clock port.Clock, opts ...Option) *Service {
	s := &Service{
		clock:  clock,
		log:    zap.NewNop(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddToCart checks availability against today's date and appends the line.
func (s *Service) AddToCart(ctx context.Context, cart *domain.Cart, product *domain.Product, qty int) error {
	if err := cart.Add(product, qty, s.clock.Today()); err != nil {
		return fmt.Errorf("cart.Add: %w", err)
	}

	s.log.Debug("item added to cart",
		zap.String("cart_owner", cart.OwnerID),
		zap.String("product", product.Name()),
		zap.Int("quantity", qty),
	)

	return nil
}

// Checkout validates the whole cart first and mutates stock and balance only when every check passes.
func (s *Service) Checkout(ctx context.Context, customer *domain.Customer, cart *domain.Cart) (_ domain.Receipt, err error) {
	_, span := s.tracer.Start(ctx, "checkout.Checkout",
		trace.WithAttributes(
			attribute.String("cart.owner", cart.OwnerID),
			attribute.Int("cart.lines", len(cart.Items)),
		),
	)
	defer span.End()

	log := s.log.With(zap.String("cart_owner", cart.OwnerID))

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.metrics.Rejected(rejectReason(err))
			log.Info("checkout rejected", zap.Error(err))
		}
	}()

	if cart.IsEmpty() {
		return domain.Receipt{}, domain.ErrEmptyCart
	}

	subtotal := cart.Subtotal()
	shippingFee := cart.ShippingFee()
	total := subtotal.Add(shippingFee)

	if !customer.Balance.SameCurrency(total) {
		return domain.Receipt{}, fmt.Errorf("%w: balance in %s, cart in %s",
			domain.ErrCurrencyMismatch, customer.Balance.Currency, total.Currency)
	}

	if !customer.HasEnough(total) {
		return domain.Receipt{}, fmt.Errorf("%w: need %s, have %s",
			domain.ErrInsufficientFunds, total.Amount, customer.Balance.Amount)
	}

	// lines for the same product draw on one stock
	requested := make(map[*domain.Product]int, len(cart.Items))
	for _, item := range cart.Items {
		requested[item.Product] += item.Quantity
	}

	today := s.clock.Today()
	for _, item := range cart.Items {
		if !item.Product.IsAvailable(requested[item.Product], today) {
			return domain.Receipt{}, fmt.Errorf("%w: %s", domain.ErrItemUnavailableAtCheckout, item.Product.Name())
		}
	}

	// nothing below may fail
	units := 0
	for _, item := range cart.Items {
		item.Product.ReduceQuantity(item.Quantity)
		units += item.Quantity
	}
	manifest := shipping.BuildManifest(cart.ShippableUnits())
	customer.Deduct(total)

	receipt := domain.Receipt{
		ID:               uuid.New(),
		OwnerID:          cart.OwnerID,
		CheckedOutAt:     today,
		Lines:            receiptLines(cart),
		Manifest:         manifest,
		Subtotal:         subtotal,
		Shipping:         shippingFee,
		Total:            total,
		RemainingBalance: customer.Balance,
	}

	s.metrics.Committed(units)
	span.SetAttributes(
		attribute.String("receipt.id", receipt.ID.String()),
		attribute.String("receipt.total", total.Amount.String()),
	)
	log.Info("checkout committed",
		zap.Stringer("receipt_id", receipt.ID),
		zap.Stringer("total", total.Amount),
		zap.Stringer("remaining_balance", customer.Balance.Amount),
		zap.Int("units", units),
	)

	return receipt, nil
}

func receiptLines(cart *domain.Cart) []domain.ReceiptLine {
	lines := make([]domain.ReceiptLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, domain.ReceiptLine{
			Quantity: item.Quantity,
			Name:     item.Product.Name(),
			Total:    item.Total(),
		})
	}
	return lines
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domain.ErrCurrencyMismatch):
		return "currency_mismatch"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrItemUnavailableAtCheckout):
		return "item_unavailable"
	default:
		return "other"
	}
}
