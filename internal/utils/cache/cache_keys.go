package cache

import (
	"fmt"
	"strings"
)

type EntityType string

const (
	EntityUser        EntityType = "user"
	EntityPaymentLink EntityType = "paymentlink"
	EntityWizard      EntityType = "wizard"
)

type KeyType string

const (
	KeyID      KeyType = "id"
	KeyEmail   KeyType = "email"
	KeyShort   KeyType = "short"
	KeySession KeyType = "session"
)

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entity, keyType, value)
}

// ParseKey extracts entity, key type and value from a key built by GenerateKey
func ParseKey(key string) map[string]string {
	parts := strings.SplitN(key, ":", 3)
	if len(parts) < 3 {
		return nil
	}
	return map[string]string{
		"entity": parts[0],
		"type":   parts[1],
		"value":  parts[2],
	}
}
