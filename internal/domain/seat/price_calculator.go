package seat

// Ticket prices in cents. VIP pricing follows the advertised VIP tier; every
// sale carries the flat booking fee.
const (
	regularPriceCents = 1000
	vipPriceCents     = 7500
	bookingFeeCents   = 150
)

type PriceCalculator interface {
	PriceCents(class Class) int64
}

type DefaultPriceCalculator struct {
	RegularCents int64
	VIPCents     int64
	FeeCents     int64
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		RegularCents: regularPriceCents,
		VIPCents:     vipPriceCents,
		FeeCents:     bookingFeeCents,
	}
}

// PriceCents quotes the total charge for a seat of the given class,
// booking fee included. NonSellable seats have no price.
func (pc *DefaultPriceCalculator) PriceCents(class Class) int64 {
	switch class {
	case ClassVIP:
		return pc.VIPCents + pc.FeeCents
	case ClassRegular:
		return pc.RegularCents + pc.FeeCents
	default:
		return 0
	}
}
