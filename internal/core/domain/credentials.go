package domain

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeNamePart приводит часть имени к виду, пригодному для логина:
// убирает диакритику (José -> jose), переводит в нижний регистр и
// выбрасывает все, кроме латинских букв и цифр.
func normalizeNamePart(part string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, part)
	if err != nil {
		normalized = part
	}

	var b strings.Builder
	for _, r := range strings.ToLower(normalized) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GenerateUsername собирает логин вида "j.martinez" из имени и фамилии.
// Если после нормализации ничего не осталось (имя целиком не латиницей),
// подставляется нейтральный префикс.
func GenerateUsername(firstName, lastName string) string {
	first := normalizeNamePart(firstName)
	last := normalizeNamePart(lastName)

	switch {
	case first == "" && last == "":
		return "user." + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first[:1] + "." + last
	}
}

// NewTempPassword генерирует одноразовый пароль. Пользователь меняет его
// при первом входе, в БД остается только bcrypt-хэш.
func NewTempPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
