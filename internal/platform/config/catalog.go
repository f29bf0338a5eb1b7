package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// AccountSpec is one entry of the account catalog. Amounts are decimal strings
// so catalog files never pass through floating point.
type AccountSpec struct {
	Key            string `mapstructure:"key"`
	Name           string `mapstructure:"name"`
	Category       string `mapstructure:"category"`
	Currency       string `mapstructure:"currency"`
	InitialBalance string `mapstructure:"initial_balance"`
	OpeningInflow  string `mapstructure:"opening_inflow"`
	OpeningOutflow string `mapstructure:"opening_outflow"`
	AllowOverdraft bool   `mapstructure:"allow_overdraft"`
}

// DefaultCatalog is the closed set of treasury accounts the service boots with.
// Opening figures are the historical inflow/outflow each account carried when
// the ledger started; initial balances are zero so that
// current = initial + inflow - outflow holds from the first entry.
func DefaultCatalog() []AccountSpec {
	return []AccountSpec{
		{Key: "boveda_monte", Name: "Bóveda Monte", Category: "vault", Currency: "MXN", InitialBalance: "0", OpeningInflow: "2500000", OpeningOutflow: "2100000", AllowOverdraft: true},
		{Key: "boveda_usa", Name: "Bóveda USA", Category: "vault", Currency: "USD", InitialBalance: "0", OpeningInflow: "800000", OpeningOutflow: "600000"},
		{Key: "azteca", Name: "Azteca", Category: "operational", Currency: "MXN", InitialBalance: "0", OpeningInflow: "1200000", OpeningOutflow: "1050000"},
		{Key: "leftie", Name: "Leftie", Category: "operational", Currency: "MXN", InitialBalance: "0", OpeningInflow: "300000", OpeningOutflow: "220000"},
		{Key: "profit", Name: "Profit", Category: "operational", Currency: "MXN", InitialBalance: "0", OpeningInflow: "500000", OpeningOutflow: "380000"},
		{Key: "flete_sur", Name: "Flete Sur", Category: "expense", Currency: "MXN", InitialBalance: "0", OpeningInflow: "180000", OpeningOutflow: "180000"},
		{Key: "utilidades", Name: "Utilidades", Category: "profit", Currency: "MXN", InitialBalance: "0", OpeningInflow: "450000", OpeningOutflow: "450000"},
	}
}

// LoadCatalog reads the catalog from path (YAML, JSON or TOML, by extension)
// under an "accounts" key. An empty path yields the default catalog.
func LoadCatalog(path string) ([]AccountSpec, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read account catalog %s: %w", path, err)
	}

	var specs []AccountSpec
	if err := v.UnmarshalKey("accounts", &specs); err != nil {
		return nil, fmt.Errorf("failed to decode account catalog %s: %w", path, err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("account catalog %s defines no accounts", path)
	}
	return specs, nil
}
