package models

// HomeSize buckets a home into one of three pricing tiers.
type HomeSize string

const (
	SizeSmall  HomeSize = "small"
	SizeMedium HomeSize = "medium"
	SizeLarge  HomeSize = "large"
)

// Frequency is how often the cleaning recurs. Recurring frequencies earn a
// subscription discount.
type Frequency string

const (
	FrequencyOneTime  Frequency = "one-time"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Addon keys accepted in PricingRequest.Addons.
const (
	AddonDeepClean = "deepClean"
	AddonMoveInOut = "moveInOut"
)

// PricingRequest is the input to the pricing calculator. Addons maps addon
// name to whether it was selected; entries that are absent or false cost
// nothing.
type PricingRequest struct {
	Size      HomeSize        `json:"size"`
	Frequency Frequency       `json:"frequency"`
	Addons    map[string]bool `json:"addons"`
	IsWeekend bool            `json:"isWeekend,omitempty"`
	IsSameDay bool            `json:"isSameDay,omitempty"`
}

// PricingResult is the full price breakdown for a request. All amounts are
// rounded to two decimals and TotalPrice always equals
// BasePrice - SubscriptionDiscount + AddonsCost + WeekendSurcharge + SameDaySurcharge.
type PricingResult struct {
	BasePrice            float64 `json:"basePrice"`
	SubscriptionDiscount float64 `json:"subscriptionDiscount"`
	AddonsCost           float64 `json:"addonsCost"`
	WeekendSurcharge     float64 `json:"weekendSurcharge"`
	SameDaySurcharge     float64 `json:"sameDaySurcharge"`
	TotalPrice           float64 `json:"totalPrice"`
	ExternalProductID    string  `json:"externalProductId"`
}
