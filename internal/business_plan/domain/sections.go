package domain

// Section names a projection of the business plan that clients can fetch on its own.
type Section string

const (
	SectionOverview       Section = "overview"
	SectionMarketAnalysis Section = "market-analysis"
	SectionFinancial      Section = "financial"
	SectionMenu           Section = "menu"
	SectionLocations      Section = "locations"
	SectionInvestment     Section = "investment"
)

// SectionInfo describes a section for navigation clients.
type SectionInfo struct {
	Name  Section `json:"name"`
	Path  string  `json:"path"`
	Title string  `json:"title"`
}

var sectionCatalog = []SectionInfo{
	{Name: SectionOverview, Path: "/overview", Title: "Genel Bakış"},
	{Name: SectionMarketAnalysis, Path: "/market-analysis", Title: "Pazar Analizi"},
	{Name: SectionFinancial, Path: "/financial", Title: "Finansal"},
	{Name: SectionMenu, Path: "/menu", Title: "Menü & Ürünler"},
	{Name: SectionLocations, Path: "/locations", Title: "Operasyon"},
	{Name: SectionInvestment, Path: "/investment", Title: "Yatırım"},
}

// Sections returns the section catalog in navigation order.
func Sections() []SectionInfo {
	out := make([]SectionInfo, len(sectionCatalog))
	copy(out, sectionCatalog)
	return out
}

func ParseSection(name string) (Section, error) {
	for _, s := range sectionCatalog {
		if string(s.Name) == name {
			return s.Name, nil
		}
	}
	return "", ErrUnknownSection
}

// Overview is the company identity plus the executive summary.
type Overview struct {
	Company          CompanyInfo      `json:"company"`
	ExecutiveSummary ExecutiveSummary `json:"executive_summary"`
}

type MarketAnalysis struct {
	MarketData MarketData `json:"market_data"`
}

type Financial struct {
	FinancialData FinancialData `json:"financial_data"`
}

type Menu struct {
	Menu MenuData `json:"menu"`
}

type Locations struct {
	Locations []LocationInfo `json:"locations"`
}

type Investment struct {
	Investment InvestmentData `json:"investment"`
}
