package cart

import (
	"context"
	"fmt"

	"marketplace-service/internal/models"
	"marketplace-service/internal/notify"
	"marketplace-service/internal/util"
)

// SelectionMode distinguishes the two sources of the options modal: adding a
// catalog product versus editing an existing cart line. The two routes must
// never be conflated.
type SelectionMode int

const (
	ModeAdd SelectionMode = iota
	ModeEdit
)

// Selection gates confirmation of a product-options modal until every
// declared axis has exactly one chosen value.
type Selection struct {
	mode    SelectionMode
	lineID  string
	product models.Product
	chosen  models.OptionSelection
	sink    notify.Sink
}

// NewAddSelection starts a selection for adding a product with options.
func NewAddSelection(product *models.Product, sink notify.Sink) (*Selection, error) {
	if !product.HasOptions() {
		return nil, ErrNoOptions
	}
	return &Selection{
		mode:    ModeAdd,
		product: *product,
		chosen:  models.OptionSelection{},
		sink:    sink,
	}, nil
}

// NewEditSelection starts a selection for editing an existing line,
// pre-populated with the line's current choices.
func NewEditSelection(line *models.CartLine, product *models.Product, sink notify.Sink) (*Selection, error) {
	if !product.HasOptions() {
		return nil, ErrNoOptions
	}
	chosen := line.SelectedOptions.Clone()
	if chosen == nil {
		chosen = models.OptionSelection{}
	}
	return &Selection{
		mode:    ModeEdit,
		lineID:  line.LineID,
		product: *product,
		chosen:  chosen,
		sink:    sink,
	}, nil
}

// Mode returns whether the selection adds a product or edits a line.
func (s *Selection) Mode() SelectionMode {
	return s.mode
}

// Chosen returns a copy of the current selection state.
func (s *Selection) Chosen() models.OptionSelection {
	return s.chosen.Clone()
}

// Choose picks a value on an axis. Values flagged unavailable are rejected
// with a warning and leave the selection untouched.
func (s *Selection) Choose(axis, value string) error {
	opt := s.axis(axis)
	if opt == nil {
		util.OptionRejectionsTotal.WithLabelValues("unknown_axis").Inc()
		return fmt.Errorf("%w: axis %q", ErrUnknownOption, axis)
	}
	if !contains(opt.Values, value) {
		util.OptionRejectionsTotal.WithLabelValues("unknown_value").Inc()
		return fmt.Errorf("%w: value %q on axis %q", ErrUnknownOption, value, axis)
	}
	if contains(s.product.UnavailableOptions, value) {
		util.OptionRejectionsTotal.WithLabelValues("unavailable").Inc()
		s.sink.Push(fmt.Sprintf("A opção %q está esgotada no momento.", value), models.SeverityWarning)
		return ErrOptionUnavailable
	}

	s.chosen[axis] = value
	return nil
}

// Complete reports whether every declared axis has a chosen value. The
// confirm affordance is enabled only when this is true.
func (s *Selection) Complete() bool {
	return s.chosen.CoversAll(s.product.Options)
}

// Confirm commits the selection: add mode creates or merges a cart line,
// edit mode rewrites the existing line's options.
func (s *Selection) Confirm(ctx context.Context, engine *Engine) (*models.CartLine, error) {
	if !s.Complete() {
		return nil, ErrIncompleteSelection
	}

	switch s.mode {
	case ModeEdit:
		return engine.EditLineOptions(ctx, s.lineID, s.chosen)
	default:
		return engine.AddToCart(ctx, &s.product, s.chosen)
	}
}

func (s *Selection) axis(name string) *models.ProductOption {
	for i := range s.product.Options {
		if s.product.Options[i].Name == name {
			return &s.product.Options[i]
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, val := range values {
		if val == v {
			return true
		}
	}
	return false
}
