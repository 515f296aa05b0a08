package showcase

import "strconv"

// incomeShare is the affordability rule: the first installment should not
// exceed 30% of the household income.
const incomeShare = 0.30

// Quote is the result of one SAC simulation, with both raw values and their
// BRL-formatted labels.
type Quote struct {
	FinancedAmount        float64
	FirstInstallment      float64
	SuggestedIncome       float64
	FirstInstallmentLabel string
	SuggestedIncomeLabel  string
	ApprovalLink          string
}

// Calculator computes the SAC (constant amortization) first installment for
// a listing. AgentName and WhatsAppDigits feed the approval contact link.
type Calculator struct {
	AgentName      string
	WhatsAppDigits string
}

// Calculate runs one simulation. When principal or termYears is absent or
// non-positive it performs no computation and reports ok=false, leaving any
// previously displayed result untouched.
func (c Calculator) Calculate(principal, downPayment float64, termYears int, annualRatePercent float64) (Quote, bool) {
	if principal <= 0 || termYears <= 0 {
		return Quote{}, false
	}

	financed := principal - downPayment
	months := float64(termYears * 12)
	monthlyRate := annualRatePercent / 100 / 12
	first := financed/months + financed*monthlyRate
	income := first / incomeShare

	message := "Olá " + c.AgentName + ", quero aprovar o crédito para o imóvel de R$" +
		strconv.FormatFloat(principal, 'f', -1, 64) + "."

	return Quote{
		FinancedAmount:        financed,
		FirstInstallment:      first,
		SuggestedIncome:       income,
		FirstInstallmentLabel: FormatBRL(first),
		SuggestedIncomeLabel:  FormatBRL(income),
		ApprovalLink:          WhatsAppLink(c.WhatsAppDigits, message),
	}, true
}
