package catalog

import (
	"fmt"
	"sync"
)

// DefaultLocale используется для стран, отсутствующих в таблице локалей.
const DefaultLocale = "en_US"

const (
	userCount            = 100_000
	merchantsPerCategory = 25
	merchantCatalogLimit = 200
	countryCatalogLimit  = 100
)

// MerchantCategories - категории, из которых собираются идентификаторы мерчантов.
var MerchantCategories = []string{
	"ecommerce", "travel", "food", "subscription",
	"electronics", "gaming", "fintech", "health",
}

// DeviceTypes - типы устройств, с которых совершается транзакция.
var DeviceTypes = []string{"mobile", "web", "pos"}

// isoAlpha2 - коды ISO 3166-1 alpha-2 в порядке сортировки по alpha-3.
var isoAlpha2 = []string{
	"AW", "AF", "AO", "AI", "AX", "AL", "AD", "AE", "AR", "AM",
	"AS", "AQ", "TF", "AG", "AU", "AT", "AZ", "BI", "BE", "BJ",
	"BQ", "BF", "BD", "BG", "BH", "BS", "BA", "BL", "BY", "BZ",
	"BM", "BO", "BR", "BB", "BN", "BT", "BV", "BW", "CF", "CA",
	"CC", "CH", "CL", "CN", "CI", "CM", "CD", "CG", "CK", "CO",
	"KM", "CV", "CR", "CU", "CW", "CX", "KY", "CY", "CZ", "DE",
	"DJ", "DM", "DK", "DO", "DZ", "EC", "EG", "ER", "EH", "ES",
	"EE", "ET", "FI", "FJ", "FK", "FR", "FO", "FM", "GA", "GB",
	"GE", "GG", "GH", "GI", "GN", "GP", "GM", "GW", "GQ", "GR",
	"GD", "GL", "GT", "GF", "GU", "GY", "HK", "HM", "HN", "HR",
	"HT", "HU", "ID", "IM", "IN", "IO", "IE", "IR", "IQ", "IS",
	"IL", "IT",
}

// countryLocales - соответствие страны и локали для самых частых стран.
var countryLocales = map[string]string{
	"US": "en_US", "CA": "en_CA", "MX": "es_MX",
	"BR": "pt_BR", "AR": "es_AR", "CL": "es_CL",
	"CO": "es_CO", "PE": "es_PE", "VE": "es_VE",
	"GB": "en_GB", "FR": "fr_FR", "DE": "de_DE",
	"ES": "es_ES", "IT": "it_IT", "NL": "nl_NL",
	"SE": "sv_SE", "NO": "no_NO", "DK": "da_DK",
	"FI": "fi_FI", "PL": "pl_PL", "CZ": "cs_CZ",
	"HU": "hu_HU", "RO": "ro_RO", "PT": "pt_PT",
	"GR": "el_GR", "UA": "uk_UA", "RU": "ru_RU",
	"AE": "ar_AE", "SA": "ar_SA", "IL": "he_IL",
	"TR": "tr_TR", "IN": "en_IN", "PK": "en_GB",
	"BD": "en_GB", "CN": "zh_CN", "JP": "ja_JP",
	"KR": "ko_KR", "SG": "en_SG", "MY": "ms_MY",
	"TH": "th_TH", "VN": "vi_VN", "ID": "id_ID",
	"PH": "en_GB", "AU": "en_AU", "NZ": "en_NZ",
	"ZA": "en_ZA", "NG": "en_GB", "KE": "en_GB",
	"EG": "ar_EG", "MA": "fr_FR",
}

// Catalog содержит неизменяемые справочники измерений транзакции.
// После создания только читается, поэтому безопасен для конкурентного доступа.
type Catalog struct {
	Users       []string
	Merchants   []string
	Countries   []string
	DeviceTypes []string

	countrySet     map[string]struct{}
	countryLocales map[string]string
}

var (
	defaultCatalog *Catalog
	once           sync.Once
)

// Default возвращает каталог процесса, построенный один раз.
func Default() *Catalog {
	once.Do(func() {
		defaultCatalog = build()
	})
	return defaultCatalog
}

func build() *Catalog {
	users := make([]string, 0, userCount)
	for i := 1; i <= userCount; i++ {
		users = append(users, fmt.Sprintf("user_%d", i))
	}

	merchants := make([]string, 0, len(MerchantCategories)*merchantsPerCategory)
	for _, category := range MerchantCategories {
		for i := 1; i <= merchantsPerCategory; i++ {
			merchants = append(merchants, fmt.Sprintf("%s_merchant_%d", category, i))
		}
	}
	if len(merchants) > merchantCatalogLimit {
		merchants = merchants[:merchantCatalogLimit]
	}

	countries := make([]string, countryCatalogLimit)
	copy(countries, isoAlpha2[:countryCatalogLimit])

	countrySet := make(map[string]struct{}, len(countries))
	for _, code := range countries {
		countrySet[code] = struct{}{}
	}

	return &Catalog{
		Users:          users,
		Merchants:      merchants,
		Countries:      countries,
		DeviceTypes:    append([]string(nil), DeviceTypes...),
		countrySet:     countrySet,
		countryLocales: countryLocales,
	}
}

// LocaleFor возвращает локаль страны или DefaultLocale, если страны нет в таблице.
func (c *Catalog) LocaleFor(countryCode string) string {
	if loc, ok := c.countryLocales[countryCode]; ok {
		return loc
	}
	return DefaultLocale
}

// HasCountry сообщает, входит ли код страны в каталог.
func (c *Catalog) HasCountry(countryCode string) bool {
	_, ok := c.countrySet[countryCode]
	return ok
}
