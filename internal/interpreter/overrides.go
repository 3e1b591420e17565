package interpreter

import "github.com/nmoralesv/informe/internal/model"

// Overrides are caller-supplied filter values applied on top of whatever the
// text yielded. A set field always wins over the extracted value; nil fields
// leave the extraction alone.
type Overrides struct {
	Category      *string  `json:"category,omitempty"`
	State         *string  `json:"state,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	Product       *string  `json:"product,omitempty"`
	Client        *string  `json:"client,omitempty"`
	MinAmount     *float64 `json:"min_amount,omitempty"`
	MaxAmount     *float64 `json:"max_amount,omitempty"`
	From          *string  `json:"from,omitempty"`
	Until         *string  `json:"until,omitempty"`
}

// IsZero reports whether no override is set.
func (o Overrides) IsZero() bool {
	return o.Category == nil && o.State == nil && o.PaymentMethod == nil &&
		o.Product == nil && o.Client == nil && o.MinAmount == nil &&
		o.MaxAmount == nil && o.From == nil && o.Until == nil
}

// ApplyOverrides merges o into in with override precedence, including the
// explicit from/until dates. The input interpretation is returned updated by
// value; the original is never mutated.
func ApplyOverrides(in model.Interpretation, o Overrides) model.Interpretation {
	if o.Category != nil {
		in.Filters.Category = *o.Category
	}
	if o.State != nil {
		in.Filters.State = model.OrderState(*o.State)
	}
	if o.PaymentMethod != nil {
		in.Filters.PaymentMethod = *o.PaymentMethod
	}
	if o.Product != nil {
		in.Filters.Product = *o.Product
	}
	if o.Client != nil {
		in.Filters.Client = *o.Client
	}
	if o.MinAmount != nil {
		in.Filters.MinAmount = o.MinAmount
	}
	if o.MaxAmount != nil {
		in.Filters.MaxAmount = o.MaxAmount
	}

	if o.From != nil || o.Until != nil {
		dr := model.DateRange{}
		if in.DateRange != nil {
			dr = *in.DateRange
		}
		if o.From != nil {
			dr.From = *o.From
		}
		if o.Until != nil {
			dr.Until = *o.Until
		}
		in.DateRange = &dr
	}

	return in
}
