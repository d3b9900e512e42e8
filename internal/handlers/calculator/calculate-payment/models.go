// internal/handlers/calculator/calculate-payment/models.go
package calculatepayment

import "loan-catalog/internal/loans"

type Input struct {
	OfferID    string
	Calculator loans.CalculatorInput
}

type Output struct {
	loans.Calculation
	Title            string     `json:"title"`
	Organization     string     `json:"organization"`
	AmountRange      [2]int     `json:"amountRange"`
	TermRange        [2]int     `json:"termRange"`
	RateRange        [2]float64 `json:"rateRange"`
	MonthlyLabel     string     `json:"monthlyLabel"`
	TotalLabel       string     `json:"totalLabel"`
	OverpaymentLabel string     `json:"overpaymentLabel"`
}
