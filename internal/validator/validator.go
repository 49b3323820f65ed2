// Package validator проверяет маски и ссылки до обращения к хранилищу.
package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Popolzen/unreputable/internal/model"
)

const (
	MinMaskLength = 6
	MaxMaskLength = 512
	MaxLinkLength = 512
)

var (
	invalidMaskChars = regexp.MustCompile(`[^a-z0-9_-]`)
	// схема необязательна, хост из сегментов через точку, TLD от двух букв, путь необязателен
	linkPattern = regexp.MustCompile(`(?i)^(?:https?://)?(?:[a-z0-9_-]+\.)+[a-z]{2,}(?:/\S*)?$`)
)

// RequireValidMask проверяет маску и возвращает её в нижнем регистре
func RequireValidMask(input string) (string, error) {
	mask := strings.TrimSpace(input)
	if mask == "" {
		return "", model.NewInvalidInput("Please provide an unreputable link.")
	}
	mask = strings.ToLower(mask)

	length := utf8.RuneCountInString(mask)
	if length < MinMaskLength {
		return "", model.NewInvalidInput("Links should be at least 6 characters")
	}
	if length > MaxMaskLength {
		return "", model.NewInvalidInput("Please keep links to 512 characters maximum!")
	}
	if invalidMaskChars.MatchString(mask) {
		return "", model.NewInvalidInput("Invalid mask!")
	}

	return mask, nil
}

// RequireValidLink проверяет реальную ссылку
func RequireValidLink(input string) error {
	link := strings.TrimSpace(input)
	if link == "" {
		return model.NewInvalidInput("Please provide a valid link.")
	}
	if utf8.RuneCountInString(link) > MaxLinkLength {
		return model.NewInvalidInput("Please keep links to 512 characters maximum!")
	}
	if !linkPattern.MatchString(link) {
		return model.NewInvalidInput("Invalid link!")
	}
	return nil
}
