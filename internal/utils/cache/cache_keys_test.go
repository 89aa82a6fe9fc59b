package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	assert.Equal(t, "paymentlink:short:abc123", GenerateKey(EntityPaymentLink, KeyShort, "abc123"))
	assert.Equal(t, "wizard:session:9f1c", GenerateKey(EntityWizard, KeySession, "9f1c"))
}

func TestParseKey(t *testing.T) {
	parts := ParseKey(GenerateKey(EntityUser, KeyEmail, "a:b@x.com"))
	assert.Equal(t, map[string]string{"entity": "user", "type": "email", "value": "a:b@x.com"}, parts)
	assert.Nil(t, ParseKey("broken"))
}
