package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("OFFICEDESK_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("OFFICEDESK_TEST_KEY", "fallback"))

	t.Setenv("OFFICEDESK_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnv("OFFICEDESK_TEST_KEY", "fallback"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("OFFICEDESK_TEST_INT", "42")
	assert.Equal(t, 42, GetIntEnv("OFFICEDESK_TEST_INT", 7))

	t.Setenv("OFFICEDESK_TEST_INT", "forty-two")
	assert.Equal(t, 7, GetIntEnv("OFFICEDESK_TEST_INT", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("OFFICEDESK_TEST_TICK", "250ms")
	assert.Equal(t, 250*time.Millisecond, GetDurationEnv("OFFICEDESK_TEST_TICK", time.Second))

	t.Setenv("OFFICEDESK_TEST_TICK", "-1s")
	assert.Equal(t, time.Second, GetDurationEnv("OFFICEDESK_TEST_TICK", time.Second))
}

func TestPaymentLinkBaseURLTrimsSlash(t *testing.T) {
	t.Setenv("PAYMENT_LINK_BASE_URL", "https://links.office.test/")
	assert.Equal(t, "https://links.office.test", PaymentLinkBaseURL())
}
