package jaeger

import (
	"github.com/KeivinIsmaili/cashcard/internal/config"
	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestStart(t *testing.T) {
	prev := opentracing.GlobalTracer()
	t.Cleanup(func() { opentracing.SetGlobalTracer(prev) })

	conf := &config.JaegerConfig{}
	conf.Sampler.Type = "const"
	conf.Sampler.Param = 0
	conf.Reporter.LocalAgentHostPort = "localhost:6831"

	closer, err := Start("cashcard-test", conf)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, closer.Close()) })

	assert.True(t, opentracing.IsGlobalTracerRegistered())
	assert.NotEqual(t, prev, opentracing.GlobalTracer())
}

func TestStart_InvalidSampler(t *testing.T) {
	conf := &config.JaegerConfig{}
	conf.Sampler.Type = "bogus"

	_, err := Start("cashcard-test", conf)
	assert.Error(t, err)
}
