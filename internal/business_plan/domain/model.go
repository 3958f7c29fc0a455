package domain

import "time"

// BusinessPlan is the single aggregate document served by the API.
type BusinessPlan struct {
	ID               string           `json:"id,omitempty"`
	Company          CompanyInfo      `json:"company"`
	ExecutiveSummary ExecutiveSummary `json:"executive_summary"`
	MarketData       MarketData       `json:"market_data"`
	FinancialData    FinancialData    `json:"financial_data"`
	Menu             MenuData         `json:"menu"`
	Locations        []LocationInfo   `json:"locations" validate:"min=1,dive"`
	Investment       InvestmentData   `json:"investment"`
	CreatedAt        time.Time        `json:"created_at,omitempty"`
	UpdatedAt        time.Time        `json:"updated_at,omitempty"`
}

type CompanyInfo struct {
	Name     string `json:"name" validate:"required"`
	Subtitle string `json:"subtitle" validate:"required"`
	Tagline  string `json:"tagline" validate:"required"`
	Vision   string `json:"vision" validate:"required"`
	Target   string `json:"target" validate:"required"`
}

type ExecutiveSummary struct {
	Vision          string `json:"vision" validate:"required"`
	TargetMarket    string `json:"target_market" validate:"required"`
	BusinessModel   string `json:"business_model" validate:"required"`
	FinancialTarget string `json:"financial_target" validate:"required"`
}

// MarketInfo holds market sizing figures. Values are free-text ranges ("15-20%").
type MarketInfo struct {
	Size         string `json:"size" validate:"required"`
	Growth       string `json:"growth" validate:"required"`
	Penetration  string `json:"penetration" validate:"required"`
	AverageOrder string `json:"average_order" validate:"required"`
}

type MarketGrowthData struct {
	Year         int `json:"year" validate:"gt=0"`
	Traditional  int `json:"traditional" validate:"gte=0"`
	CloudKitchen int `json:"cloud_kitchen" validate:"gte=0"`
	MarketShare  int `json:"market_share" validate:"gte=0,lte=100"`
}

type CostComparisonData struct {
	Category     string `json:"category" validate:"required"`
	Traditional  int    `json:"traditional" validate:"gte=0"`
	CloudKitchen int    `json:"cloud_kitchen" validate:"gte=0"`
	Savings      int    `json:"savings"`
}

type DemographicData struct {
	Age         string `json:"age" validate:"required"`
	Percentage  int    `json:"percentage" validate:"gte=0,lte=100"`
	Description string `json:"description" validate:"required"`
}

// MarketData groups market sizing with the growth, cost and demographic series.
// CloudKitchenGrowth is ordered by year.
type MarketData struct {
	ShanghaiMarket     MarketInfo           `json:"shanghai_market"`
	CloudKitchenGrowth []MarketGrowthData   `json:"cloud_kitchen_growth" validate:"dive"`
	CostComparison     []CostComparisonData `json:"cost_comparison" validate:"dive"`
	TargetDemographics []DemographicData    `json:"target_demographics" validate:"dive"`
}

type InvestmentItem struct {
	Category   string `json:"category" validate:"required"`
	Amount     int    `json:"amount" validate:"gte=0"`
	Percentage int    `json:"percentage" validate:"gte=0,lte=100"`
}

// RevenueProjection is one time bucket of projected revenue, e.g. "Ay 1-3".
type RevenueProjection struct {
	Month      string `json:"month" validate:"required"`
	Orders     int    `json:"orders" validate:"gte=0"`
	AvgValue   int    `json:"avg_value" validate:"gte=0"`
	Revenue    int    `json:"revenue" validate:"gte=0"`
	Cumulative int    `json:"cumulative" validate:"gte=0"`
}

type ProfitabilityData struct {
	YearlyRevenue  int `json:"yearly_revenue" validate:"gte=0"`
	OperationCosts int `json:"operation_costs" validate:"gte=0"`
	NetProfit      int `json:"net_profit"`
	Margin         int `json:"margin" validate:"gte=-100,lte=100"`
}

// FinancialData groups the investment breakdown, revenue series and profitability summary.
// RevenueProjection is ordered by period.
type FinancialData struct {
	InitialInvestment []InvestmentItem    `json:"initial_investment" validate:"dive"`
	RevenueProjection []RevenueProjection `json:"revenue_projection" validate:"dive"`
	Profitability     ProfitabilityData   `json:"profitability"`
}

type SignatureBowl struct {
	Name        string `json:"name" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type MenuData struct {
	SignatureBowls []SignatureBowl `json:"signature_bowls" validate:"dive"`
	Proteins       []string        `json:"proteins" validate:"dive,required"`
	Toppings       []string        `json:"toppings" validate:"dive,required"`
	Sides          []string        `json:"sides" validate:"dive,required"`
}

type LocationInfo struct {
	Name     string   `json:"name" validate:"required"`
	Area     string   `json:"area" validate:"required"`
	Capacity string   `json:"capacity" validate:"required"`
	Features []string `json:"features" validate:"dive,required"`
	Phase    int      `json:"phase" validate:"gte=1"`
}

type InvestmentUsage struct {
	Purpose    string `json:"purpose" validate:"required"`
	Percentage int    `json:"percentage" validate:"gte=0,lte=100"`
}

type ROIProjection struct {
	Year int    `json:"year" validate:"gt=0"`
	ROI  string `json:"roi" validate:"required"`
}

type SuccessMetrics struct {
	SixMonths    []string `json:"six_months" validate:"dive,required"`
	TwelveMonths []string `json:"twelve_months" validate:"dive,required"`
}

type InvestmentData struct {
	Amount         string            `json:"amount" validate:"required"`
	Usage          []InvestmentUsage `json:"usage" validate:"dive"`
	ROIProjection  []ROIProjection   `json:"roi_projection" validate:"dive"`
	SuccessMetrics SuccessMetrics    `json:"success_metrics"`
}
