package smoketests

import "github.com/yoree-platform/api-smoke-tests/servicedef"

// TestCase is one endpoint to check, with a label for the report.
type TestCase struct {
	Endpoint    string
	Description string
}

// DefaultTestCases returns the standard checks, in the order they are run.
func DefaultTestCases() []TestCase {
	return []TestCase{
		{servicedef.HealthPath, "Health Check"},

		{servicedef.CurrentPricePath(servicedef.AssetBitcoin), "Current Bitcoin Price"},
		{servicedef.CurrentPricePath(servicedef.AssetEthereum), "Current Ethereum Price"},
		{servicedef.MarketOverviewPath, "Market Overview"},
		{servicedef.HistoricalDataPath(servicedef.AssetBitcoin, 30), "Historical Bitcoin Data (30 days)"},

		{servicedef.BacktestPath(servicedef.AssetBitcoin, 90), "Backtest Bitcoin (90 days)"},

		{servicedef.AgentsStatusPath, "Agent Status"},
		{servicedef.RiskAssessmentPath, "Risk Assessment"},
		{servicedef.SentimentPath(servicedef.AssetBitcoin), "Sentiment Analysis"},
	}
}
