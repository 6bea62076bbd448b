package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMessageContent(t *testing.T) {
	assert.NoError(t, ValidateMessageContent("hello"))
	assert.Error(t, ValidateMessageContent(""))
	assert.Error(t, ValidateMessageContent(strings.Repeat("x", 100001)))
	assert.Error(t, ValidateMessageContent("bad \xff utf8"))
}

func TestValidateCategory(t *testing.T) {
	for _, category := range []string{"support", "orders", "general"} {
		assert.NoError(t, ValidateCategory(category))
	}
	assert.Error(t, ValidateCategory("billing"))
	assert.Error(t, ValidateCategory(""))
}

func TestValidateCustomerName(t *testing.T) {
	assert.NoError(t, ValidateCustomerName("Luis Davison"))
	assert.Error(t, ValidateCustomerName(""))
	assert.Error(t, ValidateCustomerName(strings.Repeat("n", 257)))
}

func TestValidatePagination(t *testing.T) {
	assert.NoError(t, ValidatePagination(0, 0))
	assert.NoError(t, ValidatePagination(2, 10))
	assert.Error(t, ValidatePagination(-1, 10))
	assert.Error(t, ValidatePagination(1, -5))
	assert.Error(t, ValidatePagination(1, 101))
}
