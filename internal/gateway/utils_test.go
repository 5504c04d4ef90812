package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSourceIp(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.RemoteAddr = "10.0.0.7:41000"
	sourceIp := getSourceIp(r)
	require.NotNil(t, sourceIp)
	assert.Equal(t, "10.0.0.7", *sourceIp)

	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	sourceIp = getSourceIp(r)
	require.NotNil(t, sourceIp)
	assert.Equal(t, "203.0.113.9", *sourceIp)
}

func TestGetSourceIpIgnoresForgedHeaders(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.RemoteAddr = "10.0.0.7:41000"
	r.Header.Set("X-Forwarded-For", "<script>alert(1)</script>, 203.0.113.9")
	sourceIp := getSourceIp(r)
	require.NotNil(t, sourceIp)
	assert.Equal(t, "10.0.0.7", *sourceIp)

	r.RemoteAddr = "not-an-address"
	assert.Nil(t, getSourceIp(r))
}

func TestGetErrorCodeHidesDetails(t *testing.T) {
	assert.Equal(t, "generic_error", getErrorCode(assert.AnError).Error())
}
