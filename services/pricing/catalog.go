package pricing

import "brightnest/models"

// basePrices is the per-visit price for each home size tier.
var basePrices = map[models.HomeSize]float64{
	models.SizeSmall:  149,
	models.SizeMedium: 199,
	models.SizeLarge:  299,
}

// discountRates is the subscription discount applied to the base price for
// recurring frequencies.
var discountRates = map[models.Frequency]float64{
	models.FrequencyOneTime:  0,
	models.FrequencyWeekly:   0.33,
	models.FrequencyBiweekly: 0.27,
	models.FrequencyMonthly:  0.20,
}

// addonPrices is the flat price of each optional extra.
var addonPrices = map[string]float64{
	models.AddonDeepClean: 75,
	models.AddonMoveInOut: 99,
}

// Surcharge rates applied against the base price. Both can apply at once.
const (
	weekendSurchargeRate = 0.10
	sameDaySurchargeRate = 0.15
)

type productKey struct {
	Size      models.HomeSize
	Frequency models.Frequency
}

// externalProductIDs maps every valid (size, frequency) pair to the SKU the
// billing system charges against. The table is enumerated explicitly so a
// missing entry is detectable, rather than assembled from string fragments.
var externalProductIDs = map[productKey]string{
	{models.SizeSmall, models.FrequencyOneTime}:   "price_home_sm_once",
	{models.SizeSmall, models.FrequencyWeekly}:    "price_home_sm_weekly",
	{models.SizeSmall, models.FrequencyBiweekly}:  "price_home_sm_biweekly",
	{models.SizeSmall, models.FrequencyMonthly}:   "price_home_sm_monthly",
	{models.SizeMedium, models.FrequencyOneTime}:  "price_home_md_once",
	{models.SizeMedium, models.FrequencyWeekly}:   "price_home_md_weekly",
	{models.SizeMedium, models.FrequencyBiweekly}: "price_home_md_biweekly",
	{models.SizeMedium, models.FrequencyMonthly}:  "price_home_md_monthly",
	{models.SizeLarge, models.FrequencyOneTime}:   "price_home_lg_once",
	{models.SizeLarge, models.FrequencyWeekly}:    "price_home_lg_weekly",
	{models.SizeLarge, models.FrequencyBiweekly}:  "price_home_lg_biweekly",
	{models.SizeLarge, models.FrequencyMonthly}:   "price_home_lg_monthly",
}
