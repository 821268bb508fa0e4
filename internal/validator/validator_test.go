package validator

import (
	"testing"
	"txstream/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// helperTestTransaction - валидная транзакция для тестов
var helperTestTransaction = model.Transaction{
	TransactionID: "b563feb7-b2b8-4b6f-807c-9b63a11e81b9",
	UserID:        "user_17",
	MerchantID:    "travel_merchant_3",
	Amount:        120.5,
	Currency:      "USD",
	CountryCode:   "DE",
	City:          "Köln",
	DeviceType:    "web",
	Timestamp:     "2024-03-01T12:04:05.123456Z",
	IsFraud:       false,
	RiskReason:    model.RiskNormal,
}

func TestValidateStruct_Valid(t *testing.T) {
	txn := helperTestTransaction
	assert.NoError(t, ValidateStruct(&txn))
}

func TestValidateStruct_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Transaction)
	}{
		{"не uuid", func(txn *model.Transaction) { txn.TransactionID = "txn-1" }},
		{"нулевая сумма", func(txn *model.Transaction) { txn.Amount = 0 }},
		{"неизвестная валюта", func(txn *model.Transaction) { txn.Currency = "XXQ" }},
		{"длинный код страны", func(txn *model.Transaction) { txn.CountryCode = "DEU" }},
		{"пустой город", func(txn *model.Transaction) { txn.City = "" }},
		{"чужое устройство", func(txn *model.Transaction) { txn.DeviceType = "atm" }},
		{"чужая причина", func(txn *model.Transaction) { txn.RiskReason = "card_testing" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			txn := helperTestTransaction
			tc.mutate(&txn)

			err := ValidateStruct(&txn)
			assert.Error(t, err)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}
