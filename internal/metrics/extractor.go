// Package metrics extracts and validates the fundamental attribute map of a
// ticker snapshot into a typed record. All provider-shape concerns live
// here: scorers downstream only ever see typed, optional fields where nil
// means "not reported" rather than zero.
package metrics

import (
	"encoding/json"
	"fmt"

	"github.com/wonny/oracle/internal/contracts"
)

// Metrics is the typed view of a snapshot's attribute map. Pointer fields
// are nil when the provider did not report the attribute; a reported zero
// stays distinguishable from absence.
type Metrics struct {
	Name     string
	Sector   string
	Industry string

	CurrentPrice *float64
	MarketCap    *float64

	TrailingPE   *float64
	PEGRatio     *float64
	PriceToBook  *float64
	PriceToSales *float64

	RevenueGrowth           *float64
	EarningsGrowth          *float64
	RevenueQuarterlyGrowth  *float64
	EarningsQuarterlyGrowth *float64

	ProfitMargin    *float64
	OperatingMargin *float64
	ReturnOnEquity  *float64
	ReturnOnAssets  *float64

	DebtToEquity *float64
	CurrentRatio *float64
	QuickRatio   *float64

	FreeCashFlow      *float64
	OperatingCashFlow *float64

	DividendYield *float64
	PayoutRatio   *float64

	HeldPercentInsiders     *float64
	HeldPercentInstitutions *float64
}

// Provider attribute keys. These match the upstream data source naming
// exactly and are the only place the raw names appear.
const (
	keyLongName = "longName"
	keySector   = "sector"
	keyIndustry = "industry"

	keyCurrentPrice       = "currentPrice"
	keyRegularMarketPrice = "regularMarketPrice"
	keyMarketCap          = "marketCap"

	keyTrailingPE   = "trailingPE"
	keyPEGRatio     = "pegRatio"
	keyPriceToBook  = "priceToBook"
	keyPriceToSales = "priceToSalesTrailing12Months"

	keyRevenueGrowth           = "revenueGrowth"
	keyEarningsGrowth          = "earningsGrowth"
	keyRevenueQuarterlyGrowth  = "revenueQuarterlyGrowth"
	keyEarningsQuarterlyGrowth = "earningsQuarterlyGrowth"

	keyProfitMargins    = "profitMargins"
	keyOperatingMargins = "operatingMargins"
	keyReturnOnEquity   = "returnOnEquity"
	keyReturnOnAssets   = "returnOnAssets"

	keyDebtToEquity = "debtToEquity"
	keyCurrentRatio = "currentRatio"
	keyQuickRatio   = "quickRatio"

	keyFreeCashflow      = "freeCashflow"
	keyOperatingCashflow = "operatingCashflow"

	keyDividendYield = "dividendYield"
	keyPayoutRatio   = "payoutRatio"

	keyHeldPercentInsiders     = "heldPercentInsiders"
	keyHeldPercentInstitutions = "heldPercentInstitutions"
)

// Extract validates the snapshot attribute map once and returns the typed
// metric record. A key that is present but not numeric (or not a string,
// for the identity fields) fails the whole extraction with
// ErrMalformedMetric; scoring never proceeds on a half-parsed snapshot.
func Extract(snap *contracts.TickerSnapshot) (*Metrics, error) {
	if snap == nil || snap.Info == nil {
		return nil, fmt.Errorf("%w: snapshot has no attributes", contracts.ErrDataUnavailable)
	}

	m := &Metrics{}
	var err error

	if m.Name, err = stringField(snap.Info, keyLongName); err != nil {
		return nil, err
	}
	if m.Sector, err = stringField(snap.Info, keySector); err != nil {
		return nil, err
	}
	if m.Industry, err = stringField(snap.Info, keyIndustry); err != nil {
		return nil, err
	}

	numeric := []struct {
		key  string
		dest **float64
	}{
		{keyMarketCap, &m.MarketCap},
		{keyTrailingPE, &m.TrailingPE},
		{keyPEGRatio, &m.PEGRatio},
		{keyPriceToBook, &m.PriceToBook},
		{keyPriceToSales, &m.PriceToSales},
		{keyRevenueGrowth, &m.RevenueGrowth},
		{keyEarningsGrowth, &m.EarningsGrowth},
		{keyRevenueQuarterlyGrowth, &m.RevenueQuarterlyGrowth},
		{keyEarningsQuarterlyGrowth, &m.EarningsQuarterlyGrowth},
		{keyProfitMargins, &m.ProfitMargin},
		{keyOperatingMargins, &m.OperatingMargin},
		{keyReturnOnEquity, &m.ReturnOnEquity},
		{keyReturnOnAssets, &m.ReturnOnAssets},
		{keyDebtToEquity, &m.DebtToEquity},
		{keyCurrentRatio, &m.CurrentRatio},
		{keyQuickRatio, &m.QuickRatio},
		{keyFreeCashflow, &m.FreeCashFlow},
		{keyOperatingCashflow, &m.OperatingCashFlow},
		{keyDividendYield, &m.DividendYield},
		{keyPayoutRatio, &m.PayoutRatio},
		{keyHeldPercentInsiders, &m.HeldPercentInsiders},
		{keyHeldPercentInstitutions, &m.HeldPercentInstitutions},
	}
	for _, f := range numeric {
		if *f.dest, err = numericField(snap.Info, f.key); err != nil {
			return nil, err
		}
	}

	// Price falls back to the regular market quote when the provider omits
	// the dedicated field.
	if m.CurrentPrice, err = numericField(snap.Info, keyCurrentPrice); err != nil {
		return nil, err
	}
	if m.CurrentPrice == nil {
		if m.CurrentPrice, err = numericField(snap.Info, keyRegularMarketPrice); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Reported unwraps an optional metric under the ladder convention that a
// missing attribute and a reported zero both contribute nothing, while
// negative values still reach the ladder's fallback rung.
func Reported(p *float64) (float64, bool) {
	if p == nil || *p == 0 {
		return 0, false
	}
	return *p, true
}

// MarketCapValue returns the market cap or 0 when unreported
func (m *Metrics) MarketCapValue() float64 {
	if m.MarketCap == nil {
		return 0
	}
	return *m.MarketCap
}

// PriceValue returns the current price or 0 when unreported
func (m *Metrics) PriceValue() float64 {
	if m.CurrentPrice == nil {
		return 0
	}
	return *m.CurrentPrice
}

func stringField(info map[string]interface{}, key string) (string, error) {
	raw, ok := info[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want string", contracts.ErrMalformedMetric, key, raw)
	}
	return s, nil
}

func numericField(info map[string]interface{}, key string) (*float64, error) {
	raw, ok := info[key]
	if !ok || raw == nil {
		return nil, nil
	}

	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", contracts.ErrMalformedMetric, key, err)
		}
		v = f
	default:
		return nil, fmt.Errorf("%w: %s is %T, want number", contracts.ErrMalformedMetric, key, raw)
	}
	return &v, nil
}
