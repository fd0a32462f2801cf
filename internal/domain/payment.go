package domain

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodWallet       PaymentMethod = "wallet"
	PaymentMethodOther        PaymentMethod = "other"
)

var paymentMethodLabels = map[PaymentMethod]string{
	PaymentMethodCash:         "Cash",
	PaymentMethodCreditCard:   "Credit Card",
	PaymentMethodDebitCard:    "Debit Card",
	PaymentMethodBankTransfer: "Bank Transfer",
	PaymentMethodUPI:          "UPI",
	PaymentMethodWallet:       "Wallet",
	PaymentMethodOther:        "Other",
}

// IsValid reports whether m is a known payment method
func (m PaymentMethod) IsValid() bool {
	_, ok := paymentMethodLabels[m]
	return ok
}

// Label returns the display name of the payment method
func (m PaymentMethod) Label() string {
	if label, ok := paymentMethodLabels[m]; ok {
		return label
	}
	return string(m)
}
