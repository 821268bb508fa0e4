package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var (
	// HttpRequestsTotal - Счетчик HTTP-запросов
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Количество HTTP запросов",
		},
		[]string{"handler", "status"}, // Метки: хэндлер и http-статус
	)

	// HttpRequestDuration - Гистограмма длительности HTTP-запросов
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Длительность HTTP запросов",
		},
		[]string{"handler"},
	)

	// TransactionsGenerated - Счетчик сгенерированных транзакций по причине риска
	TransactionsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transactions_generated_total",
			Help: "Количество сгенерированных транзакций",
		},
		[]string{"risk_reason"}, // Метки: "normal", "high_amount", "velocity_attack", "geo_anomaly", "risky_merchant"
	)

	// BatchesSent - Счетчик отправок батчей
	BatchesSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "batches_sent_total",
			Help: "Количество отправленных в Event Hub батчей",
		},
		[]string{"status"}, // Метки: "success", "failed"
	)

	// BatchSize - Гистограмма количества транзакций в батче
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "batch_size_transactions",
			Help:    "Количество транзакций в отправленном батче",
			Buckets: prometheus.LinearBuckets(5, 1, 11),
		},
	)

	// BatchSendDuration - Гистограмма длительности отправки батча (с учетом повторов)
	BatchSendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "batch_send_duration_seconds",
			Help: "Длительность отправки батча",
		},
	)

	// BatchSendRetries - Счетчик повторных попыток отправки
	BatchSendRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "batch_send_retries_total",
			Help: "Количество повторных попыток отправки батча",
		},
	)

	// LocaleCacheHits - Счетчик попаданий в кэш генераторов локалей
	LocaleCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "locale_cache_hits_total",
			Help: "Количество попаданий в кэш локалей",
		},
	)

	// LocaleCacheMisses - Счетчик промахов кэша генераторов локалей
	LocaleCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "locale_cache_misses_total",
			Help: "Количество промахов кэша локалей",
		},
	)

	// LocaleCacheSize - Датчик (Gauge) текущего размера кэша локалей
	LocaleCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "locale_cache_size_items",
			Help: "Текущий размер кэша локалей",
		},
	)

	// JournalErrors - Счетчик ошибок журнала батчей
	JournalErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_errors_total",
			Help: "Количество ошибок при работе с журналом батчей",
		},
		[]string{"operation"}, // Метки: "save_batch", "recent_batches"
	)
)

// Init используется для регистрации метрик.
// promauto регистрирует их автоматически при создании.
func Init() {
	logrus.Info("Prometheus метрики инициализированы.")
}
