package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordFeed(t *testing.T) {
	before := testutil.ToFloat64(FeedServed.WithLabelValues("PT", SourceCache))
	RecordFeed("PT", SourceCache)
	RecordFeed("PT", SourceCache)
	assert.InDelta(t, before+2, testutil.ToFloat64(FeedServed.WithLabelValues("PT", SourceCache)), 0.001)
}

func TestRecordModelCall(t *testing.T) {
	okBefore := testutil.ToFloat64(ModelCalls.WithLabelValues("test_op", "ok"))
	errBefore := testutil.ToFloat64(ModelCalls.WithLabelValues("test_op", "error"))

	RecordModelCall("test_op", nil, 2*time.Second)
	RecordModelCall("test_op", errors.New("boom"), time.Second)

	assert.InDelta(t, okBefore+1, testutil.ToFloat64(ModelCalls.WithLabelValues("test_op", "ok")), 0.001)
	assert.InDelta(t, errBefore+1, testutil.ToFloat64(ModelCalls.WithLabelValues("test_op", "error")), 0.001)
}

func TestRecordProvider(t *testing.T) {
	artBefore := testutil.ToFloat64(ProviderArticles.WithLabelValues("test_provider"))
	errBefore := testutil.ToFloat64(ProviderErrors.WithLabelValues("test_provider"))

	RecordProvider("test_provider", 7, nil)
	RecordProvider("test_provider", 0, errors.New("timeout"))

	assert.InDelta(t, artBefore+7, testutil.ToFloat64(ProviderArticles.WithLabelValues("test_provider")), 0.001)
	assert.InDelta(t, errBefore+1, testutil.ToFloat64(ProviderErrors.WithLabelValues("test_provider")), 0.001)
}
