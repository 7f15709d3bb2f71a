package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"marketplace-service/internal/models"
	"marketplace-service/internal/notify"
	"marketplace-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine owns the ordered collection of cart lines. A line is keyed by
// (product ID, selected options): the same product with different option
// selections occupies separate lines, while an identical selection merges
// into the existing line.
type Engine struct {
	mu     sync.Mutex
	lines  []models.CartLine
	sink   notify.Sink
	logger *zap.Logger
}

func NewEngine(sink notify.Sink) *Engine {
	return &Engine{
		sink:   sink,
		logger: util.GetLogger(),
	}
}

// AddToCart adds one unit of a product with the given option selection.
// Products without options pass a nil selection. Merging into an existing
// line enforces the same stock ceiling as UpdateQuantity.
func (e *Engine) AddToCart(ctx context.Context, product *models.Product, selected models.OptionSelection) (*models.CartLine, error) {
	_, span := util.StartSpan(ctx, "cart.AddToCart")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	if existing := e.findLine(product.ID, selected); existing != nil {
		if existing.Quantity+1 > existing.Stock {
			util.CartStockRejectionsTotal.Inc()
			e.sink.Push(fmt.Sprintf("Apenas %d unidades disponíveis.", existing.Stock), models.SeverityWarning)
			return nil, ErrStockExceeded
		}
		existing.Quantity++
		e.sink.Push(fmt.Sprintf("Mais uma unidade de %s adicionada.", product.Name), models.SeverityInfo)
		util.CartLinesMergedTotal.Inc()
		line := *existing
		return &line, nil
	}

	line := models.CartLine{
		LineID:          uuid.New().String(),
		ProductID:       product.ID,
		ProductName:     product.Name,
		UnitPrice:       product.Price,
		Stock:           product.Stock,
		Quantity:        1,
		Options:         product.Options,
		SelectedOptions: selected.Clone(),
		AddedAt:         time.Now(),
	}
	e.lines = append(e.lines, line)

	e.sink.Push(fmt.Sprintf("%s adicionado ao carrinho.", product.Name), models.SeveritySuccess)
	util.CartLinesAddedTotal.Inc()
	e.logger.Info("Cart line added",
		zap.String("line_id", line.LineID),
		zap.String("product_id", product.ID))

	return &line, nil
}

// UpdateQuantity applies a quantity delta to a line. The quantity never
// drops below 1 (decrementing at 1 is a no-op) and never passes the stock
// captured at add-time.
func (e *Engine) UpdateQuantity(ctx context.Context, lineID string, delta int) (*models.CartLine, error) {
	_, span := util.StartSpan(ctx, "cart.UpdateQuantity")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	line := e.findLineByID(lineID)
	if line == nil {
		return nil, ErrLineNotFound
	}

	newQty := line.Quantity + delta
	if newQty < 1 {
		newQty = 1
	}
	if newQty > line.Stock {
		util.CartStockRejectionsTotal.Inc()
		e.sink.Push(fmt.Sprintf("Apenas %d unidades disponíveis.", line.Stock), models.SeverityWarning)
		return nil, ErrStockExceeded
	}

	line.Quantity = newQty
	out := *line
	return &out, nil
}

// RemoveLine deletes a line unconditionally.
func (e *Engine) RemoveLine(ctx context.Context, lineID string) error {
	_, span := util.StartSpan(ctx, "cart.RemoveLine")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].LineID == lineID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			e.sink.Push("Item removido do carrinho.", models.SeverityInfo)
			util.CartLinesRemovedTotal.Inc()
			return nil
		}
	}
	return ErrLineNotFound
}

// EditLineOptions replaces a line's option selection in place, preserving
// line identity, quantity and price. The selection must cover every axis the
// line's product declares.
func (e *Engine) EditLineOptions(ctx context.Context, lineID string, selected models.OptionSelection) (*models.CartLine, error) {
	_, span := util.StartSpan(ctx, "cart.EditLineOptions")
	defer span.End()

	e.mu.Lock()
	defer e.mu.Unlock()

	line := e.findLineByID(lineID)
	if line == nil {
		return nil, ErrLineNotFound
	}
	if len(line.Options) == 0 {
		return nil, ErrNoOptions
	}
	if !selected.CoversAll(line.Options) {
		return nil, ErrIncompleteSelection
	}

	line.SelectedOptions = selected.Clone()
	e.sink.Push("Opções do produto atualizadas com sucesso!", models.SeveritySuccess)

	out := *line
	return &out, nil
}

// Lines returns an ordered snapshot of the cart.
func (e *Engine) Lines() []models.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.CartLine, len(e.lines))
	copy(out, e.lines)
	return out
}

// Subtotal sums captured unit price times quantity over all lines.
func (e *Engine) Subtotal() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	var total int64
	for i := range e.lines {
		total += e.lines[i].LineTotal()
	}
	return total
}

// ItemCount sums quantities across all lines (distinct from line count).
func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for i := range e.lines {
		count += e.lines[i].Quantity
	}
	return count
}

// Clear empties the cart. Called when a checkout settles.
func (e *Engine) Clear() {
	e.mu.Lock()
	e.lines = nil
	e.mu.Unlock()
}

// findLine locates a line by product ID and structural option equality.
// Caller holds the lock.
func (e *Engine) findLine(productID string, selected models.OptionSelection) *models.CartLine {
	for i := range e.lines {
		if e.lines[i].ProductID == productID && e.lines[i].SelectedOptions.Equal(selected) {
			return &e.lines[i]
		}
	}
	return nil
}

// findLineByID locates a line by its synthetic ID. Caller holds the lock.
func (e *Engine) findLineByID(lineID string) *models.CartLine {
	for i := range e.lines {
		if e.lines[i].LineID == lineID {
			return &e.lines[i]
		}
	}
	return nil
}
