package model

import "time"

// Currency - единственная валюта генерируемых транзакций.
const Currency = "USD"

// TimestampLayout - формат времени события: UTC, микросекунды, суффикс Z.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// RiskReason - метка паттерна мошенничества.
type RiskReason string

const (
	RiskNormal         RiskReason = "normal"
	RiskHighAmount     RiskReason = "high_amount"
	RiskVelocityAttack RiskReason = "velocity_attack"
	RiskGeoAnomaly     RiskReason = "geo_anomaly"
	RiskRiskyMerchant  RiskReason = "risky_merchant"
)

// FraudReasons - метки, из которых выбирается причина для мошеннической транзакции.
var FraudReasons = []RiskReason{
	RiskHighAmount,
	RiskVelocityAttack,
	RiskGeoAnomaly,
	RiskRiskyMerchant,
}

// Transaction - синтетическое событие платежа, отправляемое в Event Hub.
type Transaction struct {
	TransactionID string     `json:"transaction_id" validate:"required,uuid4"`
	UserID        string     `json:"user_id" validate:"required"`
	MerchantID    string     `json:"merchant_id" validate:"required"`
	Amount        float64    `json:"amount" validate:"gt=0"`
	Currency      string     `json:"currency" validate:"required,iso4217"`
	CountryCode   string     `json:"country_code" validate:"required,len=2"`
	City          string     `json:"city" validate:"required"`
	DeviceType    string     `json:"device_type" validate:"required,oneof=mobile web pos"`
	Timestamp     string     `json:"timestamp" validate:"required"`
	IsFraud       bool       `json:"is_fraud"`
	RiskReason    RiskReason `json:"risk_reason" validate:"required,oneof=normal high_amount velocity_attack geo_anomaly risky_merchant"`
}

// Time разбирает Timestamp обратно во время UTC.
func (t Transaction) Time() (time.Time, error) {
	return time.Parse(TimestampLayout, t.Timestamp)
}

// BatchRecord - запись журнала об успешно отправленном батче.
type BatchRecord struct {
	BatchID    string    `json:"batch_id" db:"batch_id"`
	Size       int       `json:"size" db:"size"`
	FraudCount int       `json:"fraud_count" db:"fraud_count"`
	Attempts   int       `json:"attempts" db:"attempts"`
	SentAt     time.Time `json:"sent_at" db:"sent_at"`
}
