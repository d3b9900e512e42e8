package compare

import (
	"fmt"
	"sort"
	"strconv"

	"loan-catalog/internal/loans"
	"loan-catalog/internal/models"
)

// RecommendedCount is how many unselected offers are suggested.
const RecommendedCount = 3

var PayoutTypeLabels = map[models.PayoutType]string{
	models.PayoutCard:    "На карту",
	models.PayoutBank:    "На счет",
	models.PayoutCash:    "Наличными",
	models.PayoutEWallet: "Электронный кошелек",
}

var RequirementLabels = map[models.BorrowerRequirement]string{
	models.RequirementPassport:    "Паспорт",
	models.RequirementIncomeProof: "Подтверждение дохода",
	models.RequirementNoBadCredit: "Без просрочек",
	models.RequirementCitizenship: "Гражданство РФ",
	models.RequirementAge18Plus:   "Возраст 18+",
}

// Option is an offer that can be added to the selection.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SortForPicker orders offers by rating desc, then by lowest rate.
func SortForPicker(offers []models.LoanOffer) []models.LoanOffer {
	sorted := append([]models.LoanOffer(nil), offers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].RateFrom < sorted[j].RateFrom
	})
	return sorted
}

// AvailableOptions lists the picker entries not yet selected.
func AvailableOptions(offers []models.LoanOffer, selected []string) []Option {
	taken := make(map[string]bool, len(selected))
	for _, id := range selected {
		taken[id] = true
	}
	options := make([]Option, 0, len(offers))
	for _, o := range SortForPicker(offers) {
		if !taken[o.ID] {
			options = append(options, Option{ID: o.ID, Label: OptionLabel(o)})
		}
	}
	return options
}

// Recommended returns the first RecommendedCount available options.
func Recommended(available []Option) []Option {
	if len(available) > RecommendedCount {
		return available[:RecommendedCount]
	}
	return available
}

// OptionLabel reads like "Займер · 12.5% · до 250 000 ₽".
func OptionLabel(o models.LoanOffer) string {
	return fmt.Sprintf("%s · %s%% · до %s", o.Organization, strconv.FormatFloat(o.RateFrom, 'f', -1, 64), loans.FormatRub(o.AmountMax))
}

// PayoutLabels maps payout types to display names, keeping unknown values.
func PayoutLabels(types []models.PayoutType) []string {
	labels := make([]string, 0, len(types))
	for _, t := range types {
		if l, ok := PayoutTypeLabels[t]; ok {
			labels = append(labels, l)
		} else {
			labels = append(labels, string(t))
		}
	}
	return labels
}

func RequirementLabelsFor(reqs []models.BorrowerRequirement) []string {
	labels := make([]string, 0, len(reqs))
	for _, r := range reqs {
		if l, ok := RequirementLabels[r]; ok {
			labels = append(labels, l)
		} else {
			labels = append(labels, string(r))
		}
	}
	return labels
}
