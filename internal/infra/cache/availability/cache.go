package availability

import (
	"sync"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/metrics"
)

// Cache хранит DayAvailability по (тур, дата) в памяти процесса.
// Записи только добавляются; вытеснения нет - устаревание проверяется при
// чтении по TTL. Писатель один (preload), читатели - фильтрующие usecase'ы,
// но кэш защищен RWMutex, т.к. HTTP-обработчики работают из разных горутин.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[cacheKey]*domain.DayAvailability
	metrics *metrics.Metrics // nil = метрики выключены
}

type cacheKey struct {
	tourType domain.TourType
	dateKey  string
}

// New создает кэш с заданным TTL
func New(ttl time.Duration) *Cache {
	return NewWithClock(ttl, time.Now)
}

// NewWithClock создает кэш с внешними часами (для тестов)
func NewWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     now,
		entries: make(map[cacheKey]*domain.DayAvailability),
	}
}

// WithMetrics включает счетчики hit/miss/fallback
func (c *Cache) WithMetrics(m *metrics.Metrics) *Cache {
	c.metrics = m
	return c
}

// Get возвращает запись для даты, даже устаревшую; nil если записи нет.
// Свежесть проверяет вызывающая сторона через IsStale или GetFresh.
func (c *Cache) Get(tourType domain.TourType, dateKey string) *domain.DayAvailability {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[cacheKey{tourType, dateKey}]
}

// GetFresh возвращает запись только если она есть и не устарела
func (c *Cache) GetFresh(tourType domain.TourType, dateKey string) (*domain.DayAvailability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[cacheKey{tourType, dateKey}]
	if !ok || entry.IsStale(c.now(), c.ttl) {
		c.countMiss(tourType)
		return nil, false
	}
	c.countHit(tourType)
	return entry, true
}

// IsStale сообщает, нужна ли повторная загрузка даты
// (записи нет или она старше TTL)
func (c *Cache) IsStale(tourType domain.TourType, dateKey string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[cacheKey{tourType, dateKey}]
	return !ok || entry.IsStale(c.now(), c.ttl)
}

// Set сохраняет запись для даты, затирая предыдущую
func (c *Cache) Set(tourType domain.TourType, day *domain.DayAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(tourType, day)
}

// SetAll сохраняет пачку записей одним захватом мьютекса
// (слияние результата preload)
func (c *Cache) SetAll(tourType domain.TourType, days []*domain.DayAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, day := range days {
		c.store(tourType, day)
	}
}

// Len возвращает количество записей в кэше
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) store(tourType domain.TourType, day *domain.DayAvailability) {
	c.entries[cacheKey{tourType, day.DateKey}] = day
	if c.metrics != nil && day.IsFallback() {
		c.metrics.AvailabilityFallbacksTotal.WithLabelValues(string(tourType)).Inc()
	}
}

func (c *Cache) countHit(tourType domain.TourType) {
	if c.metrics != nil {
		c.metrics.AvailabilityCacheHits.WithLabelValues(string(tourType)).Inc()
	}
}

func (c *Cache) countMiss(tourType domain.TourType) {
	if c.metrics != nil {
		c.metrics.AvailabilityCacheMisses.WithLabelValues(string(tourType)).Inc()
	}
}
