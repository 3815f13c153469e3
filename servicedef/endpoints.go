// Package servicedef describes the HTTP API of the yoree platform service that the smoke tests
// exercise.
package servicedef

import "fmt"

const DefaultBaseURL = "http://127.0.0.1:8080"

// RequestIDHeader carries a unique ID for each request so that it can be found in the service's
// own logs.
const RequestIDHeader = "X-Request-Id"

const (
	HealthPath         = "/health"
	MarketOverviewPath = "/api/data/market_overview"
	AgentsStatusPath   = "/api/agents/status"
	RiskAssessmentPath = "/api/risk/assessment"
)

const (
	AssetBitcoin  = "bitcoin"
	AssetEthereum = "ethereum"
)

func CurrentPricePath(asset string) string {
	return "/api/data/current_price/" + asset
}

func HistoricalDataPath(asset string, days int) string {
	return fmt.Sprintf("/api/data/historical/%s/%d", asset, days)
}

func BacktestPath(asset string, days int) string {
	return fmt.Sprintf("/api/backtest/%s/%d", asset, days)
}

func SentimentPath(asset string) string {
	return "/api/sentiment/" + asset
}
