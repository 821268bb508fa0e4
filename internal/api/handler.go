package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"txstream/internal/database"
	"txstream/internal/metrics"
	"txstream/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	defaultSampleCount = 1
	maxSampleCount     = 100

	defaultBatchesLimit = 20
	maxBatchesLimit     = 500
)

// TransactionSource синтезирует транзакции.
type TransactionSource interface {
	Generate(ctx context.Context) model.Transaction
}

// TransactionHandler отдает пробные транзакции. В брокер они не отправляются.
type TransactionHandler struct {
	source TransactionSource
}

// NewTransactionHandler создает новый экземпляр TransactionHandler.
func NewTransactionHandler(source TransactionSource) *TransactionHandler {
	return &TransactionHandler{source: source}
}

// Sample возвращает count свежих транзакций.
func (h *TransactionHandler) Sample(w http.ResponseWriter, r *http.Request) {
	handlerName := "Sample"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	count, err := intQueryParam(r, "count", defaultSampleCount, maxSampleCount)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), handlerName)
		return
	}

	txns := make([]model.Transaction, 0, count)
	for i := 0; i < count; i++ {
		txns = append(txns, h.source.Generate(r.Context()))
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, txns)
}

// BatchHandler отдает журнал отправленных батчей.
type BatchHandler struct {
	journal database.Journal // Используем интерфейс
}

// NewBatchHandler создает новый экземпляр BatchHandler.
func NewBatchHandler(journal database.Journal) *BatchHandler {
	return &BatchHandler{journal: journal}
}

// Recent возвращает последние записи журнала.
func (h *BatchHandler) Recent(w http.ResponseWriter, r *http.Request) {
	handlerName := "RecentBatches"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	if h.journal == nil {
		respondWithError(w, http.StatusServiceUnavailable, "Журнал батчей отключен", handlerName)
		return
	}

	limit, err := intQueryParam(r, "limit", defaultBatchesLimit, maxBatchesLimit)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), handlerName)
		return
	}

	// Передаем контекст (r.Context()) для трейсинга.
	records, err := h.journal.RecentBatches(r.Context(), limit)
	if err != nil {
		logrus.Errorf("Ошибка получения журнала батчей: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Не удалось получить журнал батчей", handlerName)
		return
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, records)
}

// intQueryParam читает целый параметр запроса из [1, max]; пустой параметр дает def.
func intQueryParam(r *http.Request, name string, def, max int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 || v > max {
		return 0, fmt.Errorf("параметр %s должен быть целым числом от 1 до %d", name, max)
	}
	return v, nil
}

// respondWithJSON вспомогательная функция для отправки JSON-ответов.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string, handlerName string) {
	metrics.HttpRequestsTotal.WithLabelValues(handlerName, strconv.Itoa(code)).Inc()
	http.Error(w, message, code)
}
