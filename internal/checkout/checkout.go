package checkout

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"marketplace-service/config"
	"marketplace-service/internal/cart"
	"marketplace-service/internal/models"
	"marketplace-service/internal/notify"
	"marketplace-service/internal/store"
	"marketplace-service/internal/util"
	"marketplace-service/internal/worker"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session is one checkout attempt: its step, the shipping form and the
// chosen payment method. Discarded on dismissal, recreated fresh on the
// next checkout.
type Session struct {
	ID            string              `json:"id"`
	Step          Step                `json:"-"`
	StepName      string              `json:"step"`
	Shipping      models.ShippingInfo `json:"shipping"`
	PaymentMethod string              `json:"payment_method"`
	StartedAt     time.Time           `json:"started_at"`
	OrderID       string              `json:"order_id,omitempty"`

	processingSince time.Time
}

// Service drives the checkout step machine over the cart engine. Settlement
// is timer-driven via the settler; everything else reacts to user actions.
type Service struct {
	mu         sync.Mutex
	cfg        config.BusinessConfig
	cart       *cart.Engine
	orders     *store.OrderStore
	deliveries *store.DeliveryStore
	settler    *worker.Settler
	sink       notify.Sink
	logger     *zap.Logger
	session    *Session
}

func NewService(
	cfg config.BusinessConfig,
	cartEngine *cart.Engine,
	orders *store.OrderStore,
	deliveries *store.DeliveryStore,
	settler *worker.Settler,
	sink notify.Sink,
) *Service {
	return &Service{
		cfg:        cfg,
		cart:       cartEngine,
		orders:     orders,
		deliveries: deliveries,
		settler:    settler,
		sink:       sink,
		logger:     util.GetLogger(),
	}
}

// Begin starts a fresh session at ShippingInfo. A previous unfinished
// session is abandoned, cancelling any pending settlement.
func (s *Service) Begin(ctx context.Context) *Session {
	_, span := util.StartSpan(ctx, "checkout.Begin")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session != nil && s.session.Step != StepSuccess {
		s.settler.Cancel(s.session.ID)
		util.CheckoutsAbandonedTotal.Inc()
	}

	s.session = &Session{
		ID:            uuid.New().String(),
		Step:          StepShippingInfo,
		Shipping:      models.ShippingInfo{Province: s.cfg.CapitalProvince},
		PaymentMethod: models.PaymentMethodMulticaixa,
		StartedAt:     time.Now(),
	}

	util.CheckoutsStartedTotal.Inc()
	s.logger.Info("Checkout started", zap.String("session_id", s.session.ID))

	return s.snapshotLocked()
}

// Session returns a snapshot of the current session.
func (s *Service) Session() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoSession
	}
	return s.snapshotLocked(), nil
}

// SubmitShipping validates the shipping form and advances to Review.
// Full name, phone and address are required; the transition is blocked
// without advancing while any is empty.
func (s *Service) SubmitShipping(ctx context.Context, info models.ShippingInfo) (*Session, error) {
	_, span := util.StartSpan(ctx, "checkout.SubmitShipping")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoSession
	}
	if s.session.Step != StepShippingInfo {
		return nil, ErrInvalidTransition
	}

	if strings.TrimSpace(info.FullName) == "" ||
		strings.TrimSpace(info.Phone) == "" ||
		strings.TrimSpace(info.Address) == "" {
		util.CheckoutValidationFailedTotal.WithLabelValues(StepShippingInfo.String()).Inc()
		return nil, ErrMissingShippingField
	}

	if info.Province == "" {
		info.Province = s.cfg.CapitalProvince
	}

	s.session.Shipping = info
	s.session.Step = StepReview
	return s.snapshotLocked(), nil
}

// BackToShipping is the single backward transition, Review→ShippingInfo.
// Previously entered fields are preserved.
func (s *Service) BackToShipping(ctx context.Context) (*Session, error) {
	_, span := util.StartSpan(ctx, "checkout.BackToShipping")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoSession
	}
	if s.session.Step != StepReview {
		return nil, ErrInvalidTransition
	}

	s.session.Step = StepShippingInfo
	return s.snapshotLocked(), nil
}

// ConfirmReview advances Review→Payment.
func (s *Service) ConfirmReview(ctx context.Context) (*Session, error) {
	_, span := util.StartSpan(ctx, "checkout.ConfirmReview")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoSession
	}
	if s.session.Step != StepReview {
		return nil, ErrInvalidTransition
	}

	s.session.Step = StepPayment
	return s.snapshotLocked(), nil
}

// SelectPaymentMethod switches between the fixed payment methods. A default
// is always pre-selected at Begin.
func (s *Service) SelectPaymentMethod(method string) error {
	if method != models.PaymentMethodMulticaixa && method != models.PaymentMethodTransfer {
		return ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoSession
	}
	if s.session.Step != StepPayment {
		return ErrInvalidTransition
	}

	s.session.PaymentMethod = method
	return nil
}

// SubmitPayment advances Payment→Processing and schedules the settlement
// timer. There is no further user-triggered transition: Success follows
// automatically after the configured delay unless the session is abandoned.
func (s *Service) SubmitPayment(ctx context.Context) (*Session, error) {
	_, span := util.StartSpan(ctx, "checkout.SubmitPayment")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoSession
	}
	if s.session.Step != StepPayment {
		return nil, ErrInvalidTransition
	}

	s.session.Step = StepProcessing
	s.session.processingSince = time.Now()

	sessionID := s.session.ID
	s.settler.Schedule(sessionID, s.cfg.SettlementDelay, func() {
		s.settle(sessionID)
	})

	s.logger.Info("Payment submitted",
		zap.String("session_id", sessionID),
		zap.String("method", s.session.PaymentMethod),
		zap.Int64("total", s.finalTotalLocked()))

	return s.snapshotLocked(), nil
}

// settle fires once when the settlement timer elapses: record the order,
// register a trackable delivery, clear the cart, reach Success.
func (s *Service) settle(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.ID != sessionID || s.session.Step != StepProcessing {
		return
	}

	util.SettlementLatency.Observe(time.Since(s.session.processingSince).Seconds())

	subtotal := s.cart.Subtotal()
	shippingCost := s.shippingCostLocked()

	order := models.Order{
		ID:            uuid.New().String(),
		Lines:         s.cart.Lines(),
		Shipping:      s.session.Shipping,
		PaymentMethod: s.session.PaymentMethod,
		Subtotal:      subtotal,
		ShippingCost:  shippingCost,
		Total:         subtotal + shippingCost,
		TrackingCode:  newTrackingCode(),
		CreatedAt:     time.Now(),
	}

	s.orders.Add(order)
	s.deliveries.RegisterOrder(&order)
	s.cart.Clear()

	s.session.Step = StepSuccess
	s.session.OrderID = order.ID

	s.sink.Push("Sua encomenda foi confirmada com sucesso!", models.SeveritySuccess)
	util.CheckoutsCompletedTotal.Inc()
	s.logger.Info("Checkout settled",
		zap.String("session_id", sessionID),
		zap.String("order_id", order.ID),
		zap.String("tracking_code", order.TrackingCode))
}

// Abandon dismisses the checkout. A settlement still pending is cancelled,
// so closing the modal during Processing leaves the cart intact.
func (s *Service) Abandon(ctx context.Context) error {
	_, span := util.StartSpan(ctx, "checkout.Abandon")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoSession
	}

	if s.session.Step != StepSuccess {
		s.settler.Cancel(s.session.ID)
		util.CheckoutsAbandonedTotal.Inc()
		s.logger.Info("Checkout abandoned",
			zap.String("session_id", s.session.ID),
			zap.String("step", s.session.Step.String()))
	}

	s.session = nil
	return nil
}

// ShippingCost derives the fee from the selected province: the capital gets
// the low flat rate, every other province the interior rate.
func (s *Service) ShippingCost() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shippingCostLocked()
}

// FinalTotal is the cart subtotal plus shipping, computed fresh.
func (s *Service) FinalTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalTotalLocked()
}

func (s *Service) shippingCostLocked() int64 {
	province := s.cfg.CapitalProvince
	if s.session != nil && s.session.Shipping.Province != "" {
		province = s.session.Shipping.Province
	}
	if province == s.cfg.CapitalProvince {
		return s.cfg.ShippingRateCapital
	}
	return s.cfg.ShippingRateInterior
}

func (s *Service) finalTotalLocked() int64 {
	return s.cart.Subtotal() + s.shippingCostLocked()
}

func (s *Service) snapshotLocked() *Session {
	out := *s.session
	out.StepName = out.Step.String()
	return &out
}

func newTrackingCode() string {
	return "KZ-" + sixDigits()
}

func sixDigits() string {
	const digits = "0123456789"
	b := make([]byte, 6)
	for i := range b {
		b[i] = digits[rand.Intn(len(digits))]
	}
	return string(b)
}
