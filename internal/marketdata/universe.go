package marketdata

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/oracle/pkg/httputil"
	"github.com/wonny/oracle/pkg/logger"
)

// idxSectors is the curated universe of Jakarta-listed tickers grouped
// by exchange sector. The live exchange listing page is preferred when
// reachable; this map is the fallback and the source for sector lookups.
var idxSectors = map[string][]string{
	"Banking": {
		"BBCA.JK", "BBRI.JK", "BMRI.JK", "BBNI.JK", "BRIS.JK",
		"BNLI.JK", "NISP.JK", "MEGA.JK", "PNBN.JK", "BTPS.JK",
		"BNGA.JK", "BNII.JK", "BDMN.JK",
	},
	"Mining": {
		"ADRO.JK", "PTBA.JK", "ITMG.JK", "HRUM.JK", "DOID.JK",
		"ANTM.JK", "INCO.JK", "MDKA.JK", "TINS.JK", "DKFT.JK",
		"ARCI.JK", "GEMS.JK",
	},
	"Energy": {
		"PGAS.JK", "MEDC.JK", "ELSA.JK",
	},
	"Consumer": {
		"ICBP.JK", "INDF.JK", "MYOR.JK", "ULTJ.JK", "UNVR.JK",
		"KLBF.JK", "SIDO.JK", "HMSP.JK", "GGRM.JK", "WIIM.JK",
		"CAMP.JK", "DLTA.JK", "ROTI.JK",
	},
	"Technology": {
		"GOTO.JK", "BUKA.JK", "WIFI.JK", "DCII.JK",
	},
	"Telecom": {
		"TLKM.JK", "EXCL.JK", "ISAT.JK", "FREN.JK",
	},
	"Automotive": {
		"ASII.JK", "AUTO.JK", "IMAS.JK", "SMSM.JK", "GDYR.JK",
		"PRAS.JK", "NIPS.JK",
	},
	"Heavy_Equipment": {
		"UNTR.JK", "TOBA.JK",
	},
	"Construction": {
		"WSKT.JK", "WIKA.JK", "PTPP.JK", "ADHI.JK", "WTON.JK",
		"ACST.JK", "TOTL.JK", "DGIK.JK",
	},
	"Property": {
		"BSDE.JK", "CTRA.JK", "SMRA.JK", "PWON.JK", "APLN.JK",
		"DUTI.JK", "ASRI.JK", "BEST.JK", "KIJA.JK", "LPKR.JK",
		"PANI.JK", "MDLN.JK",
	},
	"Retail": {
		"ACES.JK", "MAPI.JK", "ERAA.JK", "RALS.JK", "LPPF.JK",
	},
	"Plantation": {
		"AALI.JK", "LSIP.JK", "SIMP.JK", "SSMS.JK", "TBLA.JK",
	},
	"Poultry": {
		"CPIN.JK", "JPFA.JK", "MAIN.JK",
	},
	"Healthcare": {
		"HEAL.JK", "SILO.JK", "MIKA.JK", "SAME.JK",
	},
	"Transportation": {
		"BIRD.JK", "WEHA.JK", "SMDR.JK", "KARW.JK",
	},
	"Media": {
		"SCMA.JK", "MNCN.JK", "ABBA.JK",
	},
	"Cement": {
		"SMGR.JK", "INTP.JK", "WSBP.JK", "SMBR.JK",
	},
	"Steel": {
		"KRAS.JK", "BAJA.JK", "ISSP.JK",
	},
	"Packaging": {
		"TKIM.JK", "AKPI.JK", "FPNI.JK", "PACK.JK",
	},
}

// IDX exchange codes are exactly four uppercase letters.
var idxCodeRe = regexp.MustCompile(`^[A-Z]{4}$`)

// IDXUniverse resolves the Jakarta exchange ticker universe. When a
// listing URL is configured the live stock list is scraped; otherwise,
// or on any scrape failure, the curated sector map serves the universe.
type IDXUniverse struct {
	client     *httputil.Client
	listingURL string
	log        *logger.Logger
}

// NewIDXUniverse builds a universe source. listingURL may be empty to
// serve only the curated list.
func NewIDXUniverse(client *httputil.Client, listingURL string, log *logger.Logger) *IDXUniverse {
	return &IDXUniverse{
		client:     client,
		listingURL: listingURL,
		log:        log.WithField("component", "universe"),
	}
}

// AllTickers returns the complete universe, sorted and deduplicated.
func (u *IDXUniverse) AllTickers(ctx context.Context) ([]string, error) {
	if u.listingURL != "" {
		tickers, err := u.scrapeListing(ctx)
		if err != nil {
			u.log.WithError(err).Warn("listing scrape failed, using curated universe")
		} else if len(tickers) > 0 {
			return tickers, nil
		}
	}
	return u.curated(), nil
}

// SectorTickers returns the curated tickers for a named sector; an
// unknown sector returns nil.
func (u *IDXUniverse) SectorTickers(sector string) []string {
	tickers, ok := idxSectors[sector]
	if !ok {
		return nil
	}
	out := make([]string, len(tickers))
	copy(out, tickers)
	return out
}

// Sectors returns the known sector names, sorted.
func (u *IDXUniverse) Sectors() []string {
	names := make([]string, 0, len(idxSectors))
	for name := range idxSectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (u *IDXUniverse) curated() []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, sector := range idxSectors {
		for _, t := range sector {
			if !seen[t] {
				seen[t] = true
				tickers = append(tickers, t)
			}
		}
	}
	sort.Strings(tickers)
	return tickers
}

// scrapeListing extracts exchange codes from the listing page's tables
// and suffixes them for the data provider.
func (u *IDXUniverse) scrapeListing(ctx context.Context) ([]string, error) {
	body, err := u.client.GetBody(ctx, u.listingURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tickers []string
	doc.Find("table td").Each(func(_ int, cell *goquery.Selection) {
		code := strings.TrimSpace(cell.Text())
		if !idxCodeRe.MatchString(code) {
			return
		}
		ticker := code + ".JK"
		if !seen[ticker] {
			seen[ticker] = true
			tickers = append(tickers, ticker)
		}
	})

	sort.Strings(tickers)
	u.log.WithField("count", len(tickers)).Debug("scraped exchange listing")
	return tickers, nil
}
