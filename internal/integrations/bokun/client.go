package bokun

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/internal/domain"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/metrics"
	"github.com/vincent-tomodachitours/tomodachitours-website-sub013/pkg/ptr"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего источника броней (Bokun).
// Отдает остатки мест по слотам на дату; ошибки не глотает - деградацию
// до локального расчета выполняет вызывающая сторона.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    *metrics.Metrics // nil = метрики выключены
}

// NewClient создает новый экземпляр клиента внешнего источника
func NewClient(baseURL string, timeout time.Duration, log Logger, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: m,
	}
}

// GetAvailableTimeSlots возвращает слоты тура на дату по данным внешнего
// источника. Пустой список - валидный ответ (день распродан или не в
// расписании). Слоты с нечитаемым временем пропускаются с предупреждением.
func (c *Client) GetAvailableTimeSlots(ctx context.Context, tourType domain.TourType, date time.Time) ([]domain.TimeSlot, error) {
	slug, ok := activitySlugs[tourType]
	if !ok {
		return nil, fmt.Errorf("%w: tour_type=%s", ErrTourNotListed, tourType)
	}

	url := fmt.Sprintf("%s/activity/%s/availabilities?date=%s",
		c.baseURL, slug, date.Format(domain.DateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe("availabilities", start, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: tour_type=%s", ErrTourNotListed, tourType)
	case resp.StatusCode >= 500:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var parsed availabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return c.toTimeSlots(tourType, parsed.Items), nil
}

// toTimeSlots нормализует ответ внешнего источника к доменной модели
func (c *Client) toTimeSlots(tourType domain.TourType, items []availabilityItem) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, len(items))

	for _, item := range items {
		slotTime, err := domain.ParseSlotTime(item.StartTime)
		if err != nil {
			c.log.Warn("Bokun: dropping slot with unparsable time %q for tour_type=%s: %v",
				item.StartTime, tourType, err)
			continue
		}

		spots := item.AvailabilityCount
		if item.SoldOut {
			spots = 0
		}

		slots = append(slots, domain.TimeSlot{
			Time:           slotTime,
			AvailableSpots: ptr.Ptr(spots),
		})
	}

	return slots
}

func (c *Client) observe(endpoint string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.metrics.ExternalRequestsTotal.WithLabelValues(status).Inc()
	c.metrics.ExternalRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
