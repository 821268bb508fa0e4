package generator

import (
	"context"
	"time"
	"txstream/internal/cache"
	"txstream/internal/catalog"
	"txstream/internal/metrics"
	"txstream/internal/model"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DefaultFraudRate - доля транзакций с паттерном мошенничества.
	DefaultFraudRate = 0.06

	minAmount = 5.0
	maxAmount = 500.0

	// Множитель суммы для мошеннической транзакции, включительно.
	minFraudFactor = 5
	maxFraudFactor = 12
)

// Generator синтезирует транзакции из каталога измерений.
// Вся случайность берется из переданного gofakeit.Faker.
type Generator struct {
	catalog   *catalog.Catalog
	locales   *cache.LocaleCache
	faker     *gofakeit.Faker
	now       func() time.Time
	fraudRate float64
}

// Option настраивает Generator.
type Option func(*Generator)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithFraudRate задает вероятность мошеннической транзакции.
func WithFraudRate(rate float64) Option {
	return func(g *Generator) {
		g.fraudRate = rate
	}
}

// New создает генератор транзакций.
func New(c *catalog.Catalog, locales *cache.LocaleCache, faker *gofakeit.Faker, opts ...Option) *Generator {
	g := &Generator{
		catalog:   c,
		locales:   locales,
		faker:     faker,
		now:       time.Now,
		fraudRate: DefaultFraudRate,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate создает одну транзакцию. Генерация не может завершиться ошибкой.
func (g *Generator) Generate(ctx context.Context) model.Transaction {
	// 1. Измерения
	userID := g.faker.RandomString(g.catalog.Users)
	merchantID := g.faker.RandomString(g.catalog.Merchants)
	countryCode := g.faker.RandomString(g.catalog.Countries)

	// 2. Город по локали страны
	city := g.locales.GetOrCreate(ctx, g.catalog.LocaleFor(countryCode)).City()

	// 3. Устройство
	deviceType := g.faker.RandomString(g.catalog.DeviceTypes)

	// 4. Базовая сумма
	amount := round2(g.faker.Float64Range(minAmount, maxAmount))

	// 5. Паттерн мошенничества
	isFraud := false
	reason := model.RiskNormal
	if g.faker.Float64Range(0, 1) < g.fraudRate {
		isFraud = true
		reason = model.FraudReasons[g.faker.Number(0, len(model.FraudReasons)-1)]
		amount *= float64(g.faker.Number(minFraudFactor, maxFraudFactor))
	}

	metrics.TransactionsGenerated.WithLabelValues(string(reason)).Inc()

	return model.Transaction{
		TransactionID: uuid.New().String(),
		UserID:        userID,
		MerchantID:    merchantID,
		Amount:        round2(amount), // Повторное округление после умножения
		Currency:      model.Currency,
		CountryCode:   countryCode,
		City:          city,
		DeviceType:    deviceType,
		Timestamp:     g.now().UTC().Format(model.TimestampLayout),
		IsFraud:       isFraud,
		RiskReason:    reason,
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
