package cache

import (
	"context"
	"sync"
	"txstream/internal/locale"
	"txstream/internal/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Factory создает генератор для поддерживаемой локали.
type Factory func(locale string) *locale.Faker

// LocaleCache хранит генераторы локалей на все время жизни процесса.
// Вытеснения нет: ключей не больше, чем стран в каталоге.
type LocaleCache struct {
	mu      sync.Mutex
	items   map[string]*locale.Faker
	factory Factory
	tracer  trace.Tracer // Для трассировки
}

// NewLocaleCache создает пустой кэш генераторов.
func NewLocaleCache(factory Factory) *LocaleCache {
	return &LocaleCache{
		items:   make(map[string]*locale.Faker),
		factory: factory,
		tracer:  otel.Tracer("locale-cache"),
	}
}

// GetOrCreate возвращает генератор для тега локали.
// Неподдерживаемый тег получает генератор DefaultLocale, но кэшируется
// под исходным тегом, поэтому повторный запрос вернет тот же экземпляр.
func (c *LocaleCache) GetOrCreate(ctx context.Context, tag string) *locale.Faker {
	_, span := c.tracer.Start(ctx, "LocaleCache.GetOrCreate")
	defer span.End()
	span.SetAttributes(attribute.String("locale", tag))

	// Построение под мьютексом: один ключ никогда не строится дважды.
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.items[tag]; ok {
		metrics.LocaleCacheHits.Inc()
		return f
	}
	metrics.LocaleCacheMisses.Inc()

	safe := tag
	if !locale.Supported(tag) {
		safe = locale.DefaultLocale
	}
	f := c.factory(safe)
	c.items[tag] = f

	metrics.LocaleCacheSize.Set(float64(len(c.items)))
	return f
}

// Len возвращает количество закэшированных тегов.
func (c *LocaleCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
