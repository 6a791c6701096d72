package model

// MetricComparison compares a metric between the current and the previous window.
type MetricComparison struct {
	Current    float64 `json:"current"`
	Previous   float64 `json:"previous"`
	Change     float64 `json:"change"`
	IsPositive bool    `json:"isPositive"`
}

type UpcomingAppointment struct {
	ID         string `json:"id"`
	ClientName string `json:"clientName"`
	StoreName  string `json:"storeName"`
	SellerName string `json:"sellerName"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

type SellerRanking struct {
	SellerID       string  `json:"sellerId"`
	SellerName     string  `json:"sellerName"`
	Appointments   int64   `json:"appointments"`
	Proposals      int64   `json:"proposals"`
	Closed         int64   `json:"closed"`
	ConversionRate float64 `json:"conversionRate"`
}

type DashboardStats struct {
	ConversionRate       MetricComparison      `json:"conversionRate"`
	ProposalsIssued      MetricComparison      `json:"proposalsIssued"`
	ProposalsClosed      MetricComparison      `json:"proposalsClosed"`
	ProposalsCancelled   MetricComparison      `json:"proposalsCancelled"`
	UpcomingAppointments []UpcomingAppointment `json:"upcomingAppointments"`
	SellerRanking        []SellerRanking       `json:"sellerRanking"`
}
