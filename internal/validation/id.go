package validation

import (
	"fmt"
	"regexp"
)

// IDPattern определяет допустимый формат идентификатора активности или атлета.
// Идентификатор подставляется в путь URL, поэтому разрешены только
// латинские буквы, цифры, дефис и нижнее подчеркивание.
var IDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxIDLen максимальная длина идентификатора
const MaxIDLen = 64

// ValidateActivityID проверяет id активности перед запросом к API
func ValidateActivityID(id string) error {
	return validateID("activity id", id)
}

// ValidateAthleteID проверяет id атлета. "0" означает текущего атлета.
func ValidateAthleteID(id string) error {
	return validateID("athlete id", id)
}

func validateID(kind, id string) error {
	if id == "" {
		return fmt.Errorf("%s cannot be empty", kind)
	}

	if len(id) > MaxIDLen {
		return fmt.Errorf("%s must not exceed %d characters", kind, MaxIDLen)
	}

	if !IDPattern.MatchString(id) {
		return fmt.Errorf("%s can only contain letters (a-z, A-Z), numbers (0-9), hyphens and underscores", kind)
	}

	return nil
}
