package strategyconfig

import (
	"fmt"
	"math"
)

const weightTolerance = 0.01

// Validate checks internal consistency of the strategy configuration.
// Weight vectors must each sum to 1.0; thresholds must be ordered.
func (c *Config) Validate() error {
	if err := checkWeightSum("multibagger", c.Multibagger.Sum()); err != nil {
		return err
	}
	if err := checkWeightSum("fundamental", c.Fundamental.Sum()); err != nil {
		return err
	}
	if err := checkWeightSum("technical", c.Technical.Sum()); err != nil {
		return err
	}
	if err := checkWeightSum("sentiment", c.Sentiment.Sum()); err != nil {
		return err
	}

	if c.PreFilter.MinMarketCap < 0 {
		return fmt.Errorf("pre-filter min market cap must be non-negative")
	}
	if c.PreFilter.MaxMarketCap <= c.PreFilter.MinMarketCap {
		return fmt.Errorf("pre-filter max market cap must exceed min market cap")
	}

	if c.Scan.MinScore < 0 || c.Scan.MinScore > 100 {
		return fmt.Errorf("scan min score must be in [0,100], got %.2f", c.Scan.MinScore)
	}
	if c.Scan.MinHistoryBars < 1 {
		return fmt.Errorf("scan min history bars must be at least 1")
	}

	for sector, theme := range c.SectorThemes {
		if theme < 0 {
			return fmt.Errorf("sector theme for %q must be non-negative, got %.2f", sector, theme)
		}
	}

	if len(c.News.Positive) == 0 || len(c.News.Negative) == 0 {
		return fmt.Errorf("news lexicon must have positive and negative word lists")
	}

	return nil
}

func checkWeightSum(name string, sum float64) error {
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%s weights must sum to 1.0, got %.4f", name, sum)
	}
	return nil
}
