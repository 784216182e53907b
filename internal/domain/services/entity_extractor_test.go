package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cyberguard-lab/pkg/logger"
)

func TestEntityExtractor_Extract(t *testing.T) {
	e := NewEntityExtractor(logger.NewNop())

	intel := e.Extract("Send OTP to winner@paytm or call:9876543210, visit http://bit.ly/claim now!")

	assert.Contains(t, intel.PaymentHandles, "winner@paytm")
	assert.Contains(t, intel.PhoneNumbers, "9876543210")
	assert.Contains(t, intel.Links, "http://bit.ly/claim")
	assert.Contains(t, intel.SuspiciousKeywords, "otp")
}

func TestEntityExtractor_LinkTrimsTrailingPunctuation(t *testing.T) {
	e := NewEntityExtractor(logger.NewNop())

	intel := e.Extract("Check www.secure-update.xyz/login!")

	assert.Equal(t, []string{"www.secure-update.xyz/login"}, intel.Links)
}

func TestEntityExtractor_BareDomain(t *testing.T) {
	e := NewEntityExtractor(logger.NewNop())

	intel := e.Extract("go to reward-portal.top/claim for details")

	assert.Contains(t, intel.Links, "reward-portal.top/claim")
}

func TestEntityExtractor_PhoneWithCountryCode(t *testing.T) {
	e := NewEntityExtractor(logger.NewNop())

	intel := e.Extract("call +91 9876543210 immediately")

	assert.Len(t, intel.PhoneNumbers, 1)
}

func TestEntityExtractor_EmptyTextReturnsEmptySlices(t *testing.T) {
	e := NewEntityExtractor(logger.NewNop())

	intel := e.Extract("")

	assert.NotNil(t, intel.PaymentHandles)
	assert.NotNil(t, intel.PhoneNumbers)
	assert.NotNil(t, intel.Links)
	assert.NotNil(t, intel.SuspiciousKeywords)
	assert.Empty(t, intel.PaymentHandles)
	assert.Empty(t, intel.Links)
}
