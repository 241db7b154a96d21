package pricing

import (
	"context"
	"fmt"
	"math"

	"brightnest/models"
)

// Calculator turns a pricing request into a full price breakdown. It is
// stateless apart from the injected quote cache.
type Calculator struct {
	Cache QuoteCache
}

// NewCalculator creates a Calculator. Cache may be nil, in which case every
// quote is computed fresh.
func NewCalculator(cache QuoteCache) *Calculator {
	return &Calculator{Cache: cache}
}

// ValidateOptions reports whether the request is well-formed: a known size,
// a known frequency, and a non-nil addons map. It is a pure predicate;
// callers gate Calculate on it.
func ValidateOptions(req models.PricingRequest) bool {
	if _, ok := basePrices[req.Size]; !ok {
		return false
	}
	if _, ok := discountRates[req.Frequency]; !ok {
		return false
	}
	return req.Addons != nil
}

// Calculate produces the price breakdown for a validated request. The only
// error it can return is a ConfigurationError for a catalog gap; cache
// trouble never surfaces. Quotes without surcharges are served from and
// written to the cache, since their price depends only on size, frequency,
// and addons.
func (c *Calculator) Calculate(ctx context.Context, req models.PricingRequest) (*models.PricingResult, error) {
	cacheable := !req.IsWeekend && !req.IsSameDay
	key := cacheKey(req)

	if cacheable && c.Cache != nil {
		if cached, ok := c.Cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	basePrice := basePrices[req.Size]
	discount := round2(basePrice * discountRates[req.Frequency])

	addonsCost := 0.0
	for name, on := range req.Addons {
		if on {
			addonsCost += addonPrices[name]
		}
	}
	addonsCost = round2(addonsCost)

	var weekendSurcharge, sameDaySurcharge float64
	if req.IsWeekend {
		weekendSurcharge = round2(basePrice * weekendSurchargeRate)
	}
	if req.IsSameDay {
		sameDaySurcharge = round2(basePrice * sameDaySurchargeRate)
	}

	productID, ok := externalProductIDs[productKey{Size: req.Size, Frequency: req.Frequency}]
	if !ok {
		return nil, &ConfigurationError{
			Message: fmt.Sprintf("no external product for size=%s frequency=%s", req.Size, req.Frequency),
		}
	}

	result := &models.PricingResult{
		BasePrice:            basePrice,
		SubscriptionDiscount: discount,
		AddonsCost:           addonsCost,
		WeekendSurcharge:     weekendSurcharge,
		SameDaySurcharge:     sameDaySurcharge,
		TotalPrice:           round2(basePrice - discount + addonsCost + weekendSurcharge + sameDaySurcharge),
		ExternalProductID:    productID,
	}

	if cacheable && c.Cache != nil {
		c.Cache.Set(ctx, key, result)
	}
	return result, nil
}

// round2 rounds to the nearest cent.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
