package constant

const (
	UpcomingAppointmentsLimit = 4
	SellerRankingLimit        = 5

	PlaceholderClientName = "Cliente não informado"
	PlaceholderStoreName  = "Loja não informada"
	PlaceholderSellerName = "Vendedor não informado"
)
