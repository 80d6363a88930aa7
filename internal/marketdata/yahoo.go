// Package marketdata turns the Yahoo Finance public endpoints into
// ticker snapshots and resolves the scan universe. All provider quirks
// (wrapped numbers, null-padded candles, per-module availability) are
// absorbed here so the rest of the system sees clean contracts types.
package marketdata

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/wonny/oracle/internal/contracts"
	"github.com/wonny/oracle/pkg/config"
	"github.com/wonny/oracle/pkg/httputil"
	"github.com/wonny/oracle/pkg/logger"
)

const quoteSummaryModules = "price,assetProfile,summaryDetail,defaultKeyStatistics,financialData,upgradeDowngradeHistory,insiderTransactions"

// YahooProvider fetches snapshots from the Yahoo Finance v8/v10 JSON
// endpoints. Requests go through the shared rate-limited HTTP client.
type YahooProvider struct {
	client  *httputil.Client
	baseURL string
	log     *logger.Logger
}

// NewYahoo builds a provider against cfg.Provider.BaseURL.
func NewYahoo(cfg *config.Config, log *logger.Logger) *YahooProvider {
	client := httputil.New(log, cfg.Provider.Timeout).
		WithRateLimit(cfg.Provider.RequestRate, cfg.Provider.RequestBurst)
	return NewYahooWithClient(client, cfg.Provider.BaseURL, log)
}

// NewYahooWithClient builds a provider with an explicit client and base
// URL.
func NewYahooWithClient(client *httputil.Client, baseURL string, log *logger.Logger) *YahooProvider {
	return &YahooProvider{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.WithField("provider", "yahoo"),
	}
}

// Snapshot fetches the full per-ticker payload: company attributes,
// lookbackDays of daily candles, analyst actions, insider transactions
// and recent headlines. News is best-effort; the rest is required.
func (p *YahooProvider) Snapshot(ctx context.Context, ticker string, lookbackDays int) (*contracts.TickerSnapshot, error) {
	info, actions, insiders, err := p.fetchQuoteSummary(ctx, ticker)
	if err != nil {
		return nil, err
	}

	history, err := p.fetchChart(ctx, ticker, lookbackDays)
	if err != nil {
		return nil, err
	}

	return &contracts.TickerSnapshot{
		Ticker:              ticker,
		Info:                info,
		History:             history,
		AnalystActions:      actions,
		News:                p.fetchNews(ctx, ticker),
		InsiderTransactions: insiders,
	}, nil
}

// infoFields maps provider attribute names to their quoteSummary paths.
// Yahoo wraps every numeric field as {"raw": n, "fmt": "..."}; only the
// raw value is kept.
var infoFields = map[string]string{
	"currentPrice":       "financialData.currentPrice.raw",
	"regularMarketPrice": "price.regularMarketPrice.raw",
	"marketCap":          "price.marketCap.raw",

	"trailingPE":                   "summaryDetail.trailingPE.raw",
	"pegRatio":                     "defaultKeyStatistics.pegRatio.raw",
	"priceToBook":                  "defaultKeyStatistics.priceToBook.raw",
	"priceToSalesTrailing12Months": "summaryDetail.priceToSalesTrailing12Months.raw",

	"revenueGrowth":           "financialData.revenueGrowth.raw",
	"earningsGrowth":          "financialData.earningsGrowth.raw",
	"revenueQuarterlyGrowth":  "defaultKeyStatistics.revenueQuarterlyGrowth.raw",
	"earningsQuarterlyGrowth": "defaultKeyStatistics.earningsQuarterlyGrowth.raw",

	"profitMargins":    "financialData.profitMargins.raw",
	"operatingMargins": "financialData.operatingMargins.raw",
	"returnOnEquity":   "financialData.returnOnEquity.raw",
	"returnOnAssets":   "financialData.returnOnAssets.raw",

	"debtToEquity": "financialData.debtToEquity.raw",
	"currentRatio": "financialData.currentRatio.raw",
	"quickRatio":   "financialData.quickRatio.raw",

	"freeCashflow":      "financialData.freeCashflow.raw",
	"operatingCashflow": "financialData.operatingCashflow.raw",

	"dividendYield": "summaryDetail.dividendYield.raw",
	"payoutRatio":   "summaryDetail.payoutRatio.raw",

	"heldPercentInsiders":     "defaultKeyStatistics.heldPercentInsiders.raw",
	"heldPercentInstitutions": "defaultKeyStatistics.heldPercentInstitutions.raw",
}

func (p *YahooProvider) fetchQuoteSummary(ctx context.Context, ticker string) (map[string]interface{}, []contracts.AnalystAction, []contracts.InsiderTransaction, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		p.baseURL, url.PathEscape(ticker), url.QueryEscape(quoteSummaryModules))

	body, err := p.client.GetBody(ctx, u)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("quote summary %s: %w: %v", ticker, contracts.ErrDataUnavailable, err)
	}

	root := gjson.GetBytes(body, "quoteSummary.result.0")
	if !root.Exists() {
		reason := gjson.GetBytes(body, "quoteSummary.error.description").String()
		if reason == "" {
			reason = "empty result"
		}
		return nil, nil, nil, fmt.Errorf("quote summary %s: %w: %s", ticker, contracts.ErrDataUnavailable, reason)
	}

	info := make(map[string]interface{}, len(infoFields)+3)
	for key, path := range infoFields {
		if v := root.Get(path); v.Exists() {
			info[key] = v.Float()
		}
	}
	for key, path := range map[string]string{
		"longName": "price.longName",
		"sector":   "assetProfile.sector",
		"industry": "assetProfile.industry",
	} {
		if v := root.Get(path); v.Exists() {
			info[key] = v.String()
		}
	}

	return info, parseAnalystActions(root), parseInsiderTransactions(root), nil
}

// parseAnalystActions returns the grade history oldest first. The
// provider serves it newest first.
func parseAnalystActions(root gjson.Result) []contracts.AnalystAction {
	history := root.Get("upgradeDowngradeHistory.history").Array()
	actions := make([]contracts.AnalystAction, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		item := history[i]
		actions = append(actions, contracts.AnalystAction{
			Date:    time.Unix(item.Get("epochGradeDate").Int(), 0).UTC(),
			Firm:    item.Get("firm").String(),
			ToGrade: item.Get("toGrade").String(),
		})
	}
	return actions
}

// parseInsiderTransactions keeps the provider's newest-first order.
func parseInsiderTransactions(root gjson.Result) []contracts.InsiderTransaction {
	txs := root.Get("insiderTransactions.transactions").Array()
	out := make([]contracts.InsiderTransaction, 0, len(txs))
	for _, item := range txs {
		out = append(out, contracts.InsiderTransaction{
			Date:        time.Unix(item.Get("startDate.raw").Int(), 0).UTC(),
			Insider:     item.Get("filerName").String(),
			Transaction: item.Get("transactionText").String(),
			Shares:      item.Get("shares.raw").Int(),
		})
	}
	return out
}

func (p *YahooProvider) fetchChart(ctx context.Context, ticker string, lookbackDays int) ([]contracts.Bar, error) {
	now := time.Now()
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		p.baseURL, url.PathEscape(ticker),
		now.AddDate(0, 0, -lookbackDays).Unix(), now.Unix())

	body, err := p.client.GetBody(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w: %v", ticker, contracts.ErrDataUnavailable, err)
	}

	result := gjson.GetBytes(body, "chart.result.0")
	if !result.Exists() {
		reason := gjson.GetBytes(body, "chart.error.description").String()
		if reason == "" {
			reason = "empty result"
		}
		return nil, fmt.Errorf("chart %s: %w: %s", ticker, contracts.ErrDataUnavailable, reason)
	}

	timestamps := result.Get("timestamp").Array()
	quote := result.Get("indicators.quote.0")
	opens := quote.Get("open").Array()
	highs := quote.Get("high").Array()
	lows := quote.Get("low").Array()
	closes := quote.Get("close").Array()
	volumes := quote.Get("volume").Array()

	bars := make([]contracts.Bar, 0, len(timestamps))
	for i, ts := range timestamps {
		// Non-trading gaps come back as nulls; drop those rows.
		if i >= len(closes) || closes[i].Type == gjson.Null {
			continue
		}
		bar := contracts.Bar{
			Date:  time.Unix(ts.Int(), 0).UTC(),
			Close: closes[i].Float(),
		}
		if i < len(opens) {
			bar.Open = opens[i].Float()
		}
		if i < len(highs) {
			bar.High = highs[i].Float()
		}
		if i < len(lows) {
			bar.Low = lows[i].Float()
		}
		if i < len(volumes) {
			bar.Volume = volumes[i].Int()
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// fetchNews pulls recent headlines from the search endpoint, newest
// first. Headlines are optional; any failure degrades to no news.
func (p *YahooProvider) fetchNews(ctx context.Context, ticker string) []contracts.NewsItem {
	u := fmt.Sprintf("%s/v1/finance/search?q=%s&quotesCount=0&newsCount=10",
		p.baseURL, url.QueryEscape(ticker))

	body, err := p.client.GetBody(ctx, u)
	if err != nil {
		p.log.WithField("ticker", ticker).WithError(err).Debug("news fetch failed")
		return nil
	}

	items := gjson.GetBytes(body, "news").Array()
	news := make([]contracts.NewsItem, 0, len(items))
	for _, item := range items {
		title := item.Get("title").String()
		if title == "" {
			continue
		}
		news = append(news, contracts.NewsItem{
			Date:  time.Unix(item.Get("providerPublishTime").Int(), 0).UTC(),
			Title: title,
		})
	}
	return news
}
