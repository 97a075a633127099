package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/pools", "200", 0.05)
	RecordHTTPRequest("GET", "/pools", "200", 0.08)
	RecordHTTPRequest("POST", "/flow/confirm", "422", 0.02)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/pools", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/flow/confirm", "422"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordBackendRequest(t *testing.T) {
	BackendRequestsTotal.Reset()

	RecordBackendRequest("/wallets", "200")
	RecordBackendRequest("/wallets", "unreachable")
	RecordBackendRequest("/auth/login", "401")

	okCount := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues("/wallets", "200"))
	downCount := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues("/wallets", "unreachable"))
	authCount := testutil.ToFloat64(BackendRequestsTotal.WithLabelValues("/auth/login", "401"))

	assert.Equal(t, float64(1), okCount)
	assert.Equal(t, float64(1), downCount)
	assert.Equal(t, float64(1), authCount)
}

func TestPoolJoinOutcomes(t *testing.T) {
	PoolJoinsTotal.Reset()

	PoolJoinsTotal.WithLabelValues("ok").Inc()
	PoolJoinsTotal.WithLabelValues("ok").Inc()
	PoolJoinsTotal.WithLabelValues("insufficient_funds").Inc()

	okCount := testutil.ToFloat64(PoolJoinsTotal.WithLabelValues("ok"))
	rejectedCount := testutil.ToFloat64(PoolJoinsTotal.WithLabelValues("insufficient_funds"))

	assert.Equal(t, float64(2), okCount)
	assert.Equal(t, float64(1), rejectedCount)
}

func TestWalletDeductionOutcomes(t *testing.T) {
	WalletDeductionsTotal.Reset()

	WalletDeductionsTotal.WithLabelValues("ok").Inc()
	WalletDeductionsTotal.WithLabelValues("rejected").Inc()

	okCount := testutil.ToFloat64(WalletDeductionsTotal.WithLabelValues("ok"))
	rejectedCount := testutil.ToFloat64(WalletDeductionsTotal.WithLabelValues("rejected"))

	assert.Equal(t, float64(1), okCount)
	assert.Equal(t, float64(1), rejectedCount)
}

func TestNotificationTypes(t *testing.T) {
	NotificationsTotal.Reset()

	NotificationsTotal.WithLabelValues("activation").Inc()
	NotificationsTotal.WithLabelValues("pool-full").Inc()
	NotificationsTotal.WithLabelValues("activation").Inc()

	activationCount := testutil.ToFloat64(NotificationsTotal.WithLabelValues("activation"))
	poolFullCount := testutil.ToFloat64(NotificationsTotal.WithLabelValues("pool-full"))

	assert.Equal(t, float64(2), activationCount)
	assert.Equal(t, float64(1), poolFullCount)
}
