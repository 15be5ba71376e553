package service

const (
	DefaultCurrency = "AED"
	DefaultLocale   = "en-AE"

	cacheKeyPrefix = "eligibility"
)
