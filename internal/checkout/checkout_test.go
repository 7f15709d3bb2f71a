package checkout

import (
	"context"
	"testing"
	"time"

	"marketplace-service/config"
	"marketplace-service/internal/cart"
	"marketplace-service/internal/models"
	"marketplace-service/internal/notify"
	"marketplace-service/internal/store"
	"marketplace-service/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	service    *Service
	cart       *cart.Engine
	orders     *store.OrderStore
	deliveries *store.DeliveryStore
	settler    *worker.Settler
}

func newTestEnv(t *testing.T, settlementDelay time.Duration) *testEnv {
	t.Helper()

	sink := notify.NewMemorySink()
	engine := cart.NewEngine(sink)
	orders := store.NewOrderStore()
	deliveries := store.NewDeliveryStore()
	settler := worker.NewSettler()
	t.Cleanup(settler.Stop)

	cfg := config.BusinessConfig{
		CapitalProvince:      "Luanda",
		ShippingRateCapital:  2000,
		ShippingRateInterior: 5000,
		SettlementDelay:      settlementDelay,
	}

	return &testEnv{
		service:    NewService(cfg, engine, orders, deliveries, settler, sink),
		cart:       engine,
		orders:     orders,
		deliveries: deliveries,
		settler:    settler,
	}
}

func validShipping() models.ShippingInfo {
	return models.ShippingInfo{
		FullName: "Maria Santos",
		Phone:    "+244 934 111 222",
		Province: "Luanda",
		City:     "Luanda",
		Address:  "Rua Rainha Ginga, Edifício 23",
	}
}

func addItem(t *testing.T, env *testEnv) {
	t.Helper()
	product := &models.Product{ID: "p2", Name: "Computador HP Pavilion", Price: 650000, Stock: 12}
	_, err := env.cart.AddToCart(context.Background(), product, nil)
	require.NoError(t, err)
}

func TestBeginStartsAtShippingWithDefaults(t *testing.T) {
	env := newTestEnv(t, time.Second)

	session := env.service.Begin(context.Background())

	assert.Equal(t, StepShippingInfo, session.Step)
	assert.Equal(t, models.PaymentMethodMulticaixa, session.PaymentMethod)
	assert.Equal(t, "Luanda", session.Shipping.Province)
}

func TestShippingGuardBlocksEmptyFields(t *testing.T) {
	env := newTestEnv(t, time.Second)
	ctx := context.Background()
	env.service.Begin(ctx)

	cases := []models.ShippingInfo{
		{},
		{FullName: "Maria Santos", Phone: "+244 934 111 222"},
		{FullName: "Maria Santos", Address: "Rua Rainha Ginga"},
		{Phone: "+244 934 111 222", Address: "Rua Rainha Ginga"},
		{FullName: "   ", Phone: "+244 934 111 222", Address: "Rua Rainha Ginga"},
	}

	for _, info := range cases {
		_, err := env.service.SubmitShipping(ctx, info)
		assert.ErrorIs(t, err, ErrMissingShippingField)

		session, err := env.service.Session()
		require.NoError(t, err)
		assert.Equal(t, StepShippingInfo, session.Step)
	}
}

func TestShippingAdvancesWithRequiredFields(t *testing.T) {
	env := newTestEnv(t, time.Second)
	ctx := context.Background()
	env.service.Begin(ctx)

	session, err := env.service.SubmitShipping(ctx, validShipping())
	require.NoError(t, err)
	assert.Equal(t, StepReview, session.Step)
}

func TestBackToShippingPreservesFields(t *testing.T) {
	env := newTestEnv(t, time.Second)
	ctx := context.Background()
	env.service.Begin(ctx)

	_, err := env.service.SubmitShipping(ctx, validShipping())
	require.NoError(t, err)

	session, err := env.service.BackToShipping(ctx)
	require.NoError(t, err)

	assert.Equal(t, StepShippingInfo, session.Step)
	assert.Equal(t, "Maria Santos", session.Shipping.FullName)
	assert.Equal(t, "Rua Rainha Ginga, Edifício 23", session.Shipping.Address)
}

func TestBackAllowedOnlyFromReview(t *testing.T) {
	env := newTestEnv(t, time.Second)
	ctx := context.Background()
	env.service.Begin(ctx)

	_, err := env.service.BackToShipping(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = env.service.SubmitShipping(ctx, validShipping())
	require.NoError(t, err)
	_, err = env.service.ConfirmReview(ctx)
	require.NoError(t, err)

	_, err = env.service.BackToShipping(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestStepsRejectOutOfOrderTransitions(t *testing.T) {
	env := newTestEnv(t, time.Second)
	ctx := context.Background()
	env.service.Begin(ctx)

	_, err := env.service.ConfirmReview(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = env.service.SubmitPayment(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestShippingCostTiers(t *testing.T) {
	env := newTestEnv(t, time.Second)
	ctx := context.Background()
	addItem(t, env)

	env.service.Begin(ctx)
	_, err := env.service.SubmitShipping(ctx, validShipping())
	require.NoError(t, err)

	assert.Equal(t, int64(2000), env.service.ShippingCost())
	assert.Equal(t, int64(650000+2000), env.service.FinalTotal())

	env.service.Begin(ctx)
	interior := validShipping()
	interior.Province = "Huíla"
	_, err = env.service.SubmitShipping(ctx, interior)
	require.NoError(t, err)

	assert.Equal(t, int64(5000), env.service.ShippingCost())
	assert.Equal(t, int64(650000+5000), env.service.FinalTotal())
}

func TestSelectPaymentMethod(t *testing.T) {
	env := newTestEnv(t, time.Second)
	ctx := context.Background()
	env.service.Begin(ctx)

	_, err := env.service.SubmitShipping(ctx, validShipping())
	require.NoError(t, err)
	_, err = env.service.ConfirmReview(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, env.service.SelectPaymentMethod("paypal"), ErrInvalidPaymentMethod)
	require.NoError(t, env.service.SelectPaymentMethod(models.PaymentMethodTransfer))

	session, err := env.service.Session()
	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethodTransfer, session.PaymentMethod)
}

func TestSettlementReachesSuccessAndClearsCart(t *testing.T) {
	env := newTestEnv(t, 20*time.Millisecond)
	ctx := context.Background()
	addItem(t, env)

	env.service.Begin(ctx)
	_, err := env.service.SubmitShipping(ctx, validShipping())
	require.NoError(t, err)
	_, err = env.service.ConfirmReview(ctx)
	require.NoError(t, err)

	session, err := env.service.SubmitPayment(ctx)
	require.NoError(t, err)
	assert.Equal(t, StepProcessing, session.Step)

	assert.Eventually(t, func() bool {
		s, err := env.service.Session()
		return err == nil && s.Step == StepSuccess
	}, time.Second, 5*time.Millisecond)

	assert.Empty(t, env.cart.Lines())
	assert.Zero(t, env.cart.ItemCount())

	session, err = env.service.Session()
	require.NoError(t, err)
	require.NotEmpty(t, session.OrderID)

	order, err := env.orders.ByID(session.OrderID)
	require.NoError(t, err)
	assert.Equal(t, int64(650000), order.Subtotal)
	assert.Equal(t, int64(2000), order.ShippingCost)
	assert.Equal(t, int64(652000), order.Total)

	// The settled order is immediately trackable.
	delivery, err := env.deliveries.ByTrackingCode(order.TrackingCode)
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryStatusPending, delivery.Status)
	assert.Equal(t, "Maria Santos", delivery.ClientName)
}

func TestAbandonDuringProcessingCancelsSettlement(t *testing.T) {
	env := newTestEnv(t, 30*time.Millisecond)
	ctx := context.Background()
	addItem(t, env)

	env.service.Begin(ctx)
	_, err := env.service.SubmitShipping(ctx, validShipping())
	require.NoError(t, err)
	_, err = env.service.ConfirmReview(ctx)
	require.NoError(t, err)
	_, err = env.service.SubmitPayment(ctx)
	require.NoError(t, err)

	require.NoError(t, env.service.Abandon(ctx))

	time.Sleep(60 * time.Millisecond)

	assert.Len(t, env.cart.Lines(), 1)
	assert.Empty(t, env.orders.All())

	_, err = env.service.Session()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAbandonBeforeProcessingDiscardsSession(t *testing.T) {
	env := newTestEnv(t, time.Second)
	ctx := context.Background()
	addItem(t, env)

	env.service.Begin(ctx)
	require.NoError(t, env.service.Abandon(ctx))

	_, err := env.service.Session()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Len(t, env.cart.Lines(), 1)

	assert.ErrorIs(t, env.service.Abandon(ctx), ErrNoSession)
}

func TestBeginAbandonsPreviousSession(t *testing.T) {
	env := newTestEnv(t, 30*time.Millisecond)
	ctx := context.Background()
	addItem(t, env)

	env.service.Begin(ctx)
	_, err := env.service.SubmitShipping(ctx, validShipping())
	require.NoError(t, err)
	_, err = env.service.ConfirmReview(ctx)
	require.NoError(t, err)
	_, err = env.service.SubmitPayment(ctx)
	require.NoError(t, err)

	// A new checkout replaces the old session and its pending settlement.
	session := env.service.Begin(ctx)
	assert.Equal(t, StepShippingInfo, session.Step)

	time.Sleep(60 * time.Millisecond)
	assert.Len(t, env.cart.Lines(), 1)
	assert.Empty(t, env.orders.All())
}
