package locale

import (
	"github.com/brianvoe/gofakeit/v6"
)

// DefaultLocale - локаль, на которую откатываются неподдерживаемые теги.
const DefaultLocale = "en_US"

// Faker генерирует правдоподобные строки для одной локали.
type Faker struct {
	locale string
	faker  *gofakeit.Faker
	cities []string
}

// New создает генератор для локали. Для неподдерживаемой локали
// используется DefaultLocale; выбор такой локали - задача вызывающего кода.
func New(locale string, faker *gofakeit.Faker) *Faker {
	if !Supported(locale) {
		locale = DefaultLocale
	}
	return &Faker{
		locale: locale,
		faker:  faker,
		cities: cities[locale],
	}
}

// Supported сообщает, есть ли для локали данные.
func Supported(locale string) bool {
	if locale == DefaultLocale {
		return true
	}
	_, ok := cities[locale]
	return ok
}

// Locale возвращает фактическую локаль генератора.
func (f *Faker) Locale() string {
	return f.locale
}

// City возвращает название города для локали.
func (f *Faker) City() string {
	if len(f.cities) == 0 {
		return f.faker.City()
	}
	return f.faker.RandomString(f.cities)
}
