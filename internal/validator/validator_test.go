package validator

import (
	"strings"
	"testing"

	"github.com/Popolzen/unreputable/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireValidMask(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "Обрезка и нижний регистр", input: "  ABC123  ", want: "abc123"},
		{name: "Дефис и подчёркивание", input: "my-link_1", want: "my-link_1"},
		{name: "Ровно 6 символов", input: "abcdef", want: "abcdef"},
		{name: "Ровно 512 символов", input: strings.Repeat("a", 512), want: strings.Repeat("a", 512)},
		{name: "Пустая строка", input: "", wantErr: "Please provide an unreputable link."},
		{name: "Только пробелы", input: "   ", wantErr: "Please provide an unreputable link."},
		{name: "Короткая", input: "abc12", wantErr: "Links should be at least 6 characters"},
		{name: "Короткая после обрезки", input: "  abc  ", wantErr: "Links should be at least 6 characters"},
		{name: "Длинная", input: strings.Repeat("a", 513), wantErr: "Please keep links to 512 characters maximum!"},
		{name: "Пробел внутри", input: "abc 123", wantErr: "Invalid mask!"},
		{name: "Слэш", input: "abc/123", wantErr: "Invalid mask!"},
		{name: "Точка", input: "abc.123", wantErr: "Invalid mask!"},
		{name: "Кириллица", input: "ссылка1", wantErr: "Invalid mask!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequireValidMask(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireValidMask_AnyForbiddenChar(t *testing.T) {
	for _, c := range "!@#$%^&*()+=[]{};:'\",.<>?/\\|`~" {
		_, err := RequireValidMask("abcdef" + string(c))
		assert.ErrorIs(t, err, model.ErrInvalidInput, "символ %q", c)
	}
}

func TestRequireValidLink(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "https с путём", input: "https://example.com/path"},
		{name: "Без схемы", input: "example.com"},
		{name: "http", input: "http://example.com"},
		{name: "Поддомены", input: "https://a.b.example.org"},
		{name: "Слэш в конце", input: "example.com//"},
		{name: "Верхний регистр", input: "HTTPS://EXAMPLE.COM"},
		{name: "Пробелы по краям", input: "  example.com  "},
		{name: "Пустая строка", input: "", wantErr: "Please provide a valid link."},
		{name: "Не ссылка", input: "not a url", wantErr: "Invalid link!"},
		{name: "Без TLD", input: "localhost", wantErr: "Invalid link!"},
		{name: "Короткий TLD", input: "example.c", wantErr: "Invalid link!"},
		{name: "Цифровой TLD", input: "example.123", wantErr: "Invalid link!"},
		{name: "Чужая схема", input: "ftp://example.com", wantErr: "Invalid link!"},
		{name: "Длинная", input: "https://" + strings.Repeat("a", 510) + ".com", wantErr: "Please keep links to 512 characters maximum!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireValidLink(tt.input)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func BenchmarkRequireValidMask(b *testing.B) {
	for b.Loop() {
		RequireValidMask("  My-Link_2025  ")
	}
}

func BenchmarkRequireValidLink(b *testing.B) {
	for b.Loop() {
		RequireValidLink("https://example.com/some/path")
	}
}
