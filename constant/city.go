package constant

type Month string

const (
	MonthJanuary   Month = "Janeiro"
	MonthFebruary  Month = "Fevereiro"
	MonthMarch     Month = "Março"
	MonthApril     Month = "Abril"
	MonthMay       Month = "Maio"
	MonthJune      Month = "Junho"
	MonthJuly      Month = "Julho"
	MonthAugust    Month = "Agosto"
	MonthSeptember Month = "Setembro"
	MonthOctober   Month = "Outubro"
	MonthNovember  Month = "Novembro"
	MonthDecember  Month = "Dezembro"
)

// Months lists the calendar in order.
var Months = []Month{
	MonthJanuary, MonthFebruary, MonthMarch, MonthApril, MonthMay, MonthJune,
	MonthJuly, MonthAugust, MonthSeptember, MonthOctober, MonthNovember, MonthDecember,
}

// Index returns the 1-based position of the month, or 0 when unknown.
func (m Month) Index() int {
	for i, v := range Months {
		if v == m {
			return i + 1
		}
	}
	return 0
}
