package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/viralscope/pkg/config"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "invalid-config.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: cfgFile})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_MissingEnvFile(t *testing.T) {
	err := run(context.Background(), Opts{Config: "testdata/test_config.yml", EnvFile: "testdata/no-such.env"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load env file")
}

func TestRun_ServerStartStop(t *testing.T) {
	t.Setenv("DB_PATH", t.TempDir())

	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("VIRALSCOPE_TEST_LLM_KEY=\n"), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, Opts{Config: "testdata/test_config.yml", EnvFile: envFile})
	}()

	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = http.Get("http://127.0.0.1:18765/ping")
		return err == nil
	}, 5*time.Second, 50*time.Millisecond, "server didn't start")
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))

	// without llm key the feed is served from built-in items
	resp, err := http.Get("http://127.0.0.1:18765/api/v1/feed/en")
	require.NoError(t, err)
	var feed struct {
		Items    []json.RawMessage `json:"items"`
		Fallback bool              `json:"fallback"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&feed))
	resp.Body.Close()
	assert.True(t, feed.Fallback)
	assert.Len(t, feed.Items, 5)

	cancel()
	select {
	case err := <-serverErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestMakeKV(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		kv, closeFn, err := makeKV(ctx, config.CacheConfig{Backend: "memory"})
		require.NoError(t, err)
		require.NoError(t, kv.Set(ctx, "k", "v"))
		v, ok, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", v)
		assert.NoError(t, closeFn())
	})

	t.Run("sqlite", func(t *testing.T) {
		dsn := fmt.Sprintf("file:%s?mode=rwc", filepath.Join(t.TempDir(), "cache.db"))
		kv, closeFn, err := makeKV(ctx, config.CacheConfig{Backend: "sqlite", DSN: dsn})
		require.NoError(t, err)
		require.NoError(t, kv.Set(ctx, "k", "v"))
		_, ok, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, closeFn())
	})

	t.Run("redis unreachable", func(t *testing.T) {
		l, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := l.Addr().String()
		require.NoError(t, l.Close())

		_, _, err = makeKV(ctx, config.CacheConfig{Backend: "redis", RedisURL: "redis://" + addr})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ping redis")
	})
}

func TestMakeAggregator(t *testing.T) {
	cfg := &config.Config{}
	cfg.News.MaxArticles = 30
	cfg.Extraction.Enabled = true
	cfg.Extraction.MaxConcurrent = 2
	agg := makeAggregator(cfg)
	require.NotNil(t, agg)

	// no provider has a key, nothing is requested
	assert.Empty(t, agg.FetchArticles(context.Background()))
}

func TestSetupLog(t *testing.T) {
	t.Run("debug mode enabled", func(t *testing.T) {
		SetupLog(true)
	})

	t.Run("debug mode disabled", func(t *testing.T) {
		SetupLog(false)
	})

	t.Run("with secrets", func(t *testing.T) {
		SetupLog(true, "secret1", "secret2")
	})
}
