package pricing

import (
	"context"
	"testing"

	"brightnest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyCache records every read and write so tests can assert cache behavior.
type spyCache struct {
	store map[string]*models.PricingResult
	gets  int
	sets  int
}

func newSpyCache() *spyCache {
	return &spyCache{store: make(map[string]*models.PricingResult)}
}

func (c *spyCache) Get(_ context.Context, key string) (*models.PricingResult, bool) {
	c.gets++
	result, ok := c.store[key]
	return result, ok
}

func (c *spyCache) Set(_ context.Context, key string, result *models.PricingResult) {
	c.sets++
	c.store[key] = result
}

func request(size models.HomeSize, freq models.Frequency, addons map[string]bool) models.PricingRequest {
	if addons == nil {
		addons = map[string]bool{}
	}
	return models.PricingRequest{Size: size, Frequency: freq, Addons: addons}
}

func TestCalculateWeeklyMedium(t *testing.T) {
	calc := NewCalculator(nil)

	result, err := calc.Calculate(context.Background(), request(models.SizeMedium, models.FrequencyWeekly, nil))
	require.NoError(t, err)

	assert.Equal(t, 199.0, result.BasePrice)
	assert.Equal(t, 65.67, result.SubscriptionDiscount)
	assert.Equal(t, 0.0, result.AddonsCost)
	assert.Equal(t, 0.0, result.WeekendSurcharge)
	assert.Equal(t, 0.0, result.SameDaySurcharge)
	assert.Equal(t, 133.33, result.TotalPrice)
	assert.NotEmpty(t, result.ExternalProductID)
}

func TestCalculateLargeMonthlyWithDeepClean(t *testing.T) {
	calc := NewCalculator(nil)

	result, err := calc.Calculate(context.Background(), request(models.SizeLarge, models.FrequencyMonthly, map[string]bool{models.AddonDeepClean: true}))
	require.NoError(t, err)

	assert.Equal(t, 299.0, result.BasePrice)
	assert.Equal(t, 59.8, result.SubscriptionDiscount)
	assert.Equal(t, 75.0, result.AddonsCost)
	assert.Equal(t, 314.2, result.TotalPrice)
}

func TestCalculateSurcharges(t *testing.T) {
	calc := NewCalculator(nil)

	req := request(models.SizeSmall, models.FrequencyOneTime, map[string]bool{models.AddonMoveInOut: true})
	req.IsWeekend = true
	req.IsSameDay = true

	result, err := calc.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 149.0, result.BasePrice)
	assert.Equal(t, 0.0, result.SubscriptionDiscount)
	assert.Equal(t, 99.0, result.AddonsCost)
	assert.Equal(t, 14.9, result.WeekendSurcharge)
	assert.Equal(t, 22.35, result.SameDaySurcharge)
	assert.Equal(t, 285.25, result.TotalPrice)
}

func TestWeekendFlagDoesNotAffectDiscount(t *testing.T) {
	calc := NewCalculator(nil)

	plain := request(models.SizeMedium, models.FrequencyBiweekly, nil)
	weekend := plain
	weekend.IsWeekend = true

	plainResult, err := calc.Calculate(context.Background(), plain)
	require.NoError(t, err)
	weekendResult, err := calc.Calculate(context.Background(), weekend)
	require.NoError(t, err)

	assert.Equal(t, plainResult.SubscriptionDiscount, weekendResult.SubscriptionDiscount)
	assert.Equal(t, plainResult.BasePrice, weekendResult.BasePrice)
	assert.Greater(t, weekendResult.TotalPrice, plainResult.TotalPrice)
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name string
		req  models.PricingRequest
		want bool
	}{
		{"valid minimal", request(models.SizeSmall, models.FrequencyOneTime, nil), true},
		{"valid with addons", request(models.SizeLarge, models.FrequencyMonthly, map[string]bool{models.AddonDeepClean: true}), true},
		{"unknown size", request("mansion", models.FrequencyWeekly, nil), false},
		{"empty size", request("", models.FrequencyWeekly, nil), false},
		{"unknown frequency", request(models.SizeSmall, "daily", nil), false},
		{"empty frequency", request(models.SizeSmall, "", nil), false},
		{"nil addons", models.PricingRequest{Size: models.SizeSmall, Frequency: models.FrequencyWeekly}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateOptions(tt.req))
		})
	}
}

func TestCacheReadThrough(t *testing.T) {
	cache := newSpyCache()
	calc := NewCalculator(cache)
	req := request(models.SizeMedium, models.FrequencyWeekly, map[string]bool{models.AddonDeepClean: true})

	first, err := calc.Calculate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, cache.gets)
	require.Equal(t, 1, cache.sets)

	second, err := calc.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.sets, "a cache hit must not rewrite the entry")
	assert.Equal(t, first, second)
}

func TestSurchargedQuotesBypassCache(t *testing.T) {
	cache := newSpyCache()
	calc := NewCalculator(cache)

	req := request(models.SizeMedium, models.FrequencyWeekly, nil)
	req.IsWeekend = true

	_, err := calc.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, cache.gets, "surcharged quotes must not read the cache")
	assert.Equal(t, 0, cache.sets, "surcharged quotes must not be cached")

	// A cached surcharge-free quote must not leak into a weekend request.
	plain := request(models.SizeMedium, models.FrequencyWeekly, nil)
	plainResult, err := calc.Calculate(context.Background(), plain)
	require.NoError(t, err)

	weekendResult, err := calc.Calculate(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, plainResult.TotalPrice, weekendResult.TotalPrice)
}

func TestCacheKeySortsAddons(t *testing.T) {
	a := request(models.SizeSmall, models.FrequencyWeekly, map[string]bool{models.AddonMoveInOut: true, models.AddonDeepClean: true})
	b := request(models.SizeSmall, models.FrequencyWeekly, map[string]bool{models.AddonDeepClean: true, models.AddonMoveInOut: true})

	assert.Equal(t, cacheKey(a), cacheKey(b))
	assert.Equal(t, "quote:small:weekly:deepClean,moveInOut", cacheKey(a))

	// Disabled addons do not contribute to the key.
	c := request(models.SizeSmall, models.FrequencyWeekly, map[string]bool{models.AddonDeepClean: true, models.AddonMoveInOut: false})
	assert.Equal(t, "quote:small:weekly:deepClean", cacheKey(c))
}

func TestEveryPairHasAProduct(t *testing.T) {
	sizes := []models.HomeSize{models.SizeSmall, models.SizeMedium, models.SizeLarge}
	frequencies := []models.Frequency{models.FrequencyOneTime, models.FrequencyWeekly, models.FrequencyBiweekly, models.FrequencyMonthly}
	calc := NewCalculator(nil)

	seen := make(map[string]bool)
	for _, size := range sizes {
		for _, freq := range frequencies {
			result, err := calc.Calculate(context.Background(), request(size, freq, nil))
			require.NoErrorf(t, err, "size=%s frequency=%s", size, freq)
			require.NotEmptyf(t, result.ExternalProductID, "size=%s frequency=%s", size, freq)
			assert.Falsef(t, seen[result.ExternalProductID], "duplicate product id %s", result.ExternalProductID)
			seen[result.ExternalProductID] = true

			total := round2(result.BasePrice - result.SubscriptionDiscount + result.AddonsCost + result.WeekendSurcharge + result.SameDaySurcharge)
			assert.Equal(t, total, result.TotalPrice)
		}
	}
}

func TestConfigurationErrorFormat(t *testing.T) {
	err := &ConfigurationError{Message: "no external product for size=small frequency=weekly"}
	assert.Equal(t, "ConfigurationError: no external product for size=small frequency=weekly", err.Error())
	assert.True(t, IsConfigurationError(err))
	assert.False(t, IsConfigurationError(context.Canceled))
}
