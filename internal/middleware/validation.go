package middleware

import (
	"errors"
	"unicode/utf8"

	"github.com/chiragSahani/copilot-inbox/internal/model"
)

// ValidateMessageContent validates message content.
func ValidateMessageContent(content string) error {
	if len(content) == 0 {
		return errors.New("content cannot be empty")
	}
	if len(content) > 100000 { // ~100KB limit
		return errors.New("content exceeds maximum length")
	}
	if !utf8.ValidString(content) {
		return errors.New("content must be valid UTF-8")
	}
	return nil
}

// ValidateCategory validates a conversation category.
func ValidateCategory(category string) error {
	if !model.ValidCategory(model.Category(category)) {
		return errors.New("unknown category")
	}
	return nil
}

// ValidateCustomerName validates a customer display name.
func ValidateCustomerName(name string) error {
	if len(name) == 0 {
		return errors.New("customer name cannot be empty")
	}
	if len(name) > 256 {
		return errors.New("customer name exceeds maximum length")
	}
	if !utf8.ValidString(name) {
		return errors.New("customer name must be valid UTF-8")
	}
	return nil
}

// ValidatePagination validates list pagination parameters. Zero values
// are allowed; they select the defaults downstream.
func ValidatePagination(page, limit int) error {
	if page < 0 {
		return errors.New("page cannot be negative")
	}
	if limit < 0 {
		return errors.New("limit cannot be negative")
	}
	if limit > 100 {
		return errors.New("limit exceeds maximum of 100")
	}
	return nil
}
