package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/oracle/pkg/httputil"
	"github.com/wonny/oracle/pkg/logger"
)

func testHTTPClient() *httputil.Client {
	return httputil.New(logger.NewNop(), 5*time.Second).DisableRetry()
}

func TestUniverseCuratedFallback(t *testing.T) {
	u := NewIDXUniverse(testHTTPClient(), "", logger.NewNop())

	tickers, err := u.AllTickers(context.Background())
	require.NoError(t, err)

	assert.Contains(t, tickers, "BBCA.JK")
	assert.Contains(t, tickers, "ANTM.JK")
	assert.Contains(t, tickers, "GOTO.JK")

	seen := make(map[string]int)
	for _, ticker := range tickers {
		seen[ticker]++
	}
	for ticker, n := range seen {
		assert.Equal(t, 1, n, "duplicate ticker %s", ticker)
	}
}

func TestUniverseScrapesListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><table>
			<tr><td>No</td><td>Code</td><td>Name</td></tr>
			<tr><td>1</td><td>BBCA</td><td>Bank Central Asia Tbk</td></tr>
			<tr><td>2</td><td>TLKM</td><td>Telkom Indonesia Tbk</td></tr>
			<tr><td>3</td><td>BBCA</td><td>Duplicate row</td></tr>
		</table></body></html>`))
	}))
	defer srv.Close()

	u := NewIDXUniverse(testHTTPClient(), srv.URL, logger.NewNop())

	tickers, err := u.AllTickers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"BBCA.JK", "TLKM.JK"}, tickers)
}

func TestUniverseScrapeFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	u := NewIDXUniverse(testHTTPClient(), srv.URL, logger.NewNop())

	tickers, err := u.AllTickers(context.Background())
	require.NoError(t, err)
	assert.Contains(t, tickers, "BBCA.JK", "falls back to the curated universe")
}

func TestUniverseSectorTickers(t *testing.T) {
	u := NewIDXUniverse(testHTTPClient(), "", logger.NewNop())

	mining := u.SectorTickers("Mining")
	assert.Contains(t, mining, "ANTM.JK")
	assert.Contains(t, mining, "MDKA.JK")

	assert.Nil(t, u.SectorTickers("Aerospace"))

	// Returned slices are copies; callers cannot mutate the map.
	mining[0] = "XXXX.JK"
	assert.NotContains(t, u.SectorTickers("Mining"), "XXXX.JK")
}

func TestUniverseSectors(t *testing.T) {
	u := NewIDXUniverse(testHTTPClient(), "", logger.NewNop())
	sectors := u.Sectors()
	assert.Contains(t, sectors, "Banking")
	assert.Contains(t, sectors, "Technology")
	assert.True(t, len(sectors) >= 15)
}
