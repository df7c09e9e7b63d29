package entities

import "time"

// SettingKeyGlobalTax is the key of the platform-wide tax rate setting.
const SettingKeyGlobalTax = "globalTax"

// DefaultGlobalTaxRate applies when no globalTax setting has been stored.
const DefaultGlobalTaxRate = 15.0

// Setting is a keyed platform configuration value.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateTaxRateInput carries a global tax rate change. Valid range 0..50.
type UpdateTaxRateInput struct {
	TaxRate *float64 `json:"taxRate" binding:"required"`
}
