package pricing

// Config carries the operational pricing levers. It is an explicit value
// passed into the engine so tests can exercise several configurations side by
// side; there is no ambient mutable state.
type Config struct {
	// OperatorMultiplier is the operations lever applied after the display
	// multiplier. Defaults to 1.
	OperatorMultiplier float64

	// DisplayMultiplier frames the displayed price below the service subtotal.
	DisplayMultiplier float64

	// HalfPackingPremium scales the service subtotal for half-packing moves.
	HalfPackingPremium float64

	// ItemPriceMultiplier scales every furniture unit price before the risk
	// multiplier is applied.
	ItemPriceMultiplier float64

	// ItemGrowthRate compounds the merged item cost per additional item.
	ItemGrowthRate float64
}

// DefaultConfig returns the production pricing levers.
func DefaultConfig() Config {
	return Config{
		OperatorMultiplier:  1.0,
		DisplayMultiplier:   0.95,
		HalfPackingPremium:  1.18,
		ItemPriceMultiplier: 1.1,
		ItemGrowthRate:      0.03,
	}
}

// normalized fills zero-valued levers with their defaults so a partially
// populated Config cannot zero out the price.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.OperatorMultiplier <= 0 {
		c.OperatorMultiplier = def.OperatorMultiplier
	}
	if c.DisplayMultiplier <= 0 {
		c.DisplayMultiplier = def.DisplayMultiplier
	}
	if c.HalfPackingPremium <= 0 {
		c.HalfPackingPremium = def.HalfPackingPremium
	}
	if c.ItemPriceMultiplier <= 0 {
		c.ItemPriceMultiplier = def.ItemPriceMultiplier
	}
	if c.ItemGrowthRate < 0 {
		c.ItemGrowthRate = def.ItemGrowthRate
	}
	return c
}
