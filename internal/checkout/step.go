package checkout

// Step is a checkout stage. Progression is strictly forward with a single
// backward transition, Review back to ShippingInfo.
type Step int

const (
	StepShippingInfo Step = iota + 1
	StepReview
	StepPayment
	StepProcessing
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepShippingInfo:
		return "shipping_info"
	case StepReview:
		return "review"
	case StepPayment:
		return "payment"
	case StepProcessing:
		return "processing"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}
