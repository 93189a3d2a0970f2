package jaeger

import (
	"github.com/KeivinIsmaili/cashcard/internal/config"
	"github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegerzap "github.com/uber/jaeger-client-go/log/zap"
	"go.uber.org/zap"
	"io"
)

// Start installs a Jaeger tracer as the global opentracing tracer. It must
// run before any handler reads the global tracer. The returned closer
// flushes buffered spans.
func Start(serviceName string, conf *config.JaegerConfig) (io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  conf.Sampler.Type,
			Param: conf.Sampler.Param,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           conf.Reporter.LogSpans,
			LocalAgentHostPort: conf.Reporter.LocalAgentHostPort,
		},
	}

	tracer, closer, err := cfg.NewTracer(jaegercfg.Logger(jaegerzap.NewLogger(zap.L())))
	if err != nil {
		return nil, err
	}

	opentracing.SetGlobalTracer(tracer)
	zap.L().Info("Jaeger tracer started", zap.String("service", serviceName))
	return closer, nil
}
