package compare

import (
	"strconv"

	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
)

// Direction tells which end of a metric wins.
type Direction string

const (
	HigherIsBetter Direction = "max"
	LowerIsBetter  Direction = "min"
)

// Metric is one comparable numeric row of the comparison table.
type Metric struct {
	Key       string
	Label     string
	Direction Direction
	Value     func(models.LoanOffer) float64
	Format    func(float64) string
}

// Metrics lists the comparison rows in display order.
var Metrics = []Metric{
	{"rating", "Рейтинг", HigherIsBetter, func(o models.LoanOffer) float64 { return o.Rating }, formatRating},
	{"rateFrom", "Ставка от", LowerIsBetter, func(o models.LoanOffer) float64 { return o.RateFrom }, loans.FormatPercent},
	{"rateTo", "Ставка до", LowerIsBetter, func(o models.LoanOffer) float64 { return o.RateTo }, loans.FormatPercent},
	{"amountMin", "Минимальная сумма", LowerIsBetter, func(o models.LoanOffer) float64 { return float64(o.AmountMin) }, formatRub},
	{"amountMax", "Максимальная сумма", HigherIsBetter, func(o models.LoanOffer) float64 { return float64(o.AmountMax) }, formatRub},
	{"termMin", "Минимальный срок", LowerIsBetter, func(o models.LoanOffer) float64 { return float64(o.TermMin) }, formatMonths},
	{"termMax", "Максимальный срок", HigherIsBetter, func(o models.LoanOffer) float64 { return float64(o.TermMax) }, formatMonths},
}

// Cell is one offer's value in a metric row.
type Cell struct {
	OfferID string  `json:"offerId"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Best    bool    `json:"best"`
}

// Row is a rendered metric across the selected offers.
type Row struct {
	Key       string    `json:"key"`
	Label     string    `json:"label"`
	Direction Direction `json:"direction"`
	Cells     []Cell    `json:"cells"`
}

// BestValues returns the winning value per metric key. It is empty when
// no offers are selected.
func BestValues(metrics []Metric, offers []models.LoanOffer) map[string]float64 {
	best := make(map[string]float64, len(metrics))
	if len(offers) == 0 {
		return best
	}
	for _, m := range metrics {
		v := m.Value(offers[0])
		for _, o := range offers[1:] {
			candidate := m.Value(o)
			if m.Direction == HigherIsBetter && candidate > v || m.Direction == LowerIsBetter && candidate < v {
				v = candidate
			}
		}
		best[m.Key] = v
	}
	return best
}

// BuildRows renders every metric for offers. Each offer tied for the best
// value is flagged.
func BuildRows(metrics []Metric, offers []models.LoanOffer) []Row {
	best := BestValues(metrics, offers)
	rows := make([]Row, 0, len(metrics))
	for _, m := range metrics {
		row := Row{Key: m.Key, Label: m.Label, Direction: m.Direction, Cells: make([]Cell, 0, len(offers))}
		for _, o := range offers {
			v := m.Value(o)
			row.Cells = append(row.Cells, Cell{
				OfferID: o.ID,
				Value:   v,
				Display: m.Format(v),
				Best:    v == best[m.Key],
			})
		}
		rows = append(rows, row)
	}
	return rows
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatRub(v float64) string {
	return loans.FormatRub(int(v))
}

func formatMonths(v float64) string {
	return loans.FormatMonths(int(v))
}
