package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"eligibility-engine/domain"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the static engine configuration: the currency estimates are
// quoted in, the financing partners and the product ranges.
type Catalog struct {
	Currency string
	Banks    []domain.BankPolicy
	Products []domain.ProductRange
}

type catalogFile struct {
	Currency string         `yaml:"currency"`
	Banks    []bankEntry    `yaml:"banks"`
	Products []productEntry `yaml:"products"`
}

type bankEntry struct {
	ID              string `yaml:"id"`
	DisplayName     string `yaml:"display_name"`
	MaxLimit        string `yaml:"max_limit"`
	AdvanceRate     string `yaml:"advance_rate"`
	TurnoverDivisor string `yaml:"turnover_divisor"`
}

type productEntry struct {
	ID              string `yaml:"id"`
	DisplayName     string `yaml:"display_name"`
	Formula         string `yaml:"formula"`
	TurnoverDivisor string `yaml:"turnover_divisor"`
	GlobalCeiling   string `yaml:"global_ceiling"`
	MinInput        string `yaml:"min_input"`
	MaxInput        string `yaml:"max_input"`
	Step            string `yaml:"step"`
	DefaultBank     string `yaml:"default_bank"`
}

// LoadCatalog reads the catalog at path, or the embedded default when path
// is empty.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return ParseCatalog(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	file.normalize()
	if err := file.validate(); err != nil {
		return Catalog{}, err
	}
	return file.toCatalog()
}

func (f *catalogFile) normalize() {
	f.Currency = strings.ToUpper(strings.TrimSpace(f.Currency))
	for i := range f.Banks {
		f.Banks[i].ID = strings.TrimSpace(f.Banks[i].ID)
		f.Banks[i].DisplayName = strings.TrimSpace(f.Banks[i].DisplayName)
	}
	for i := range f.Products {
		f.Products[i].ID = strings.TrimSpace(f.Products[i].ID)
		f.Products[i].DisplayName = strings.TrimSpace(f.Products[i].DisplayName)
		f.Products[i].Formula = strings.ToLower(strings.TrimSpace(f.Products[i].Formula))
		f.Products[i].DefaultBank = strings.TrimSpace(f.Products[i].DefaultBank)
	}
}

func (f *catalogFile) validate() error {
	if f.Currency == "" {
		return fmt.Errorf("catalog: currency is required")
	}
	if len(f.Products) == 0 {
		return fmt.Errorf("catalog: at least one product must be configured")
	}
	return nil
}

func (f *catalogFile) toCatalog() (Catalog, error) {
	c := Catalog{
		Currency: f.Currency,
		Banks:    make([]domain.BankPolicy, 0, len(f.Banks)),
		Products: make([]domain.ProductRange, 0, len(f.Products)),
	}

	for _, b := range f.Banks {
		p := domain.BankPolicy{ID: b.ID, DisplayName: b.DisplayName}
		if err := parseAmounts("bank "+b.ID, map[string]amountField{
			"max_limit":        {b.MaxLimit, &p.MaxLimit},
			"advance_rate":     {b.AdvanceRate, &p.AdvanceRate},
			"turnover_divisor": {b.TurnoverDivisor, &p.TurnoverDivisor},
		}); err != nil {
			return Catalog{}, err
		}
		if err := p.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("catalog: %w", err)
		}
		c.Banks = append(c.Banks, p)
	}

	for _, e := range f.Products {
		p := domain.ProductRange{
			ProductID:     e.ID,
			DisplayName:   e.DisplayName,
			Formula:       domain.FormulaKind(e.Formula),
			DefaultBankID: e.DefaultBank,
		}
		if err := parseAmounts("product "+e.ID, map[string]amountField{
			"turnover_divisor": {e.TurnoverDivisor, &p.TurnoverDivisor},
			"global_ceiling":   {e.GlobalCeiling, &p.GlobalCeiling},
			"min_input":        {e.MinInput, &p.MinInput},
			"max_input":        {e.MaxInput, &p.MaxInput},
			"step":             {e.Step, &p.Step},
		}); err != nil {
			return Catalog{}, err
		}
		if err := p.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("catalog: %w", err)
		}
		c.Products = append(c.Products, p)
	}

	return c, nil
}

type amountField struct {
	raw string
	dst *decimal.Decimal
}

// parseAmounts leaves empty fields at zero.
func parseAmounts(owner string, fields map[string]amountField) error {
	for name, f := range fields {
		raw := strings.TrimSpace(f.raw)
		if raw == "" {
			continue
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("catalog: %s: invalid %s %q: %w", owner, name, raw, err)
		}
		*f.dst = v
	}
	return nil
}
