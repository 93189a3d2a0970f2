package prometheus

import (
	"context"
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"net/http"
	"strconv"
	"time"
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "cashcard",
		Name:      "request_duration_seconds",
		Help:      "Duration of handled requests by operation and status code.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op", "code"},
)

func init() {
	prometheus.MustRegister(requestDuration)
}

func ObserveRequest(d time.Duration, code int, op string) {
	requestDuration.WithLabelValues(op, strconv.Itoa(code)).Observe(d.Seconds())
}

type Metrics struct {
	srv *http.Server
}

func New(port int) *Metrics {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Metrics{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%v", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start serves /metrics until ctx is cancelled.
func (m *Metrics) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		if err := m.srv.Shutdown(context.Background()); err != nil {
			zap.L().Warn("Error shutting down metrics server", zap.Error(err))
		}
	}()

	zap.L().Info("Starting metrics server", zap.String("addr", m.srv.Addr))
	if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Metrics server error", zap.Error(err))
	}
}
