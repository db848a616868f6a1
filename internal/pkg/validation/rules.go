package validation

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// Clock time in 24h HH:mm form
	TimePattern = `^([01]\d|2[0-3]):([0-5]\d)$`

	// Username min/max length
	UsernameMinLength = 3
	UsernameMaxLength = 50

	// Password min/max length
	PasswordMinLength = 6
	PasswordMaxLength = 100
)

// DayNames lists the accepted day-of-week values, stored uppercase
var DayNames = []string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Time *regexp.Regexp
}{
	Time: regexp.MustCompile(TimePattern),
}

// IsValidTime reports whether value is a clock time in HH:mm form
func IsValidTime(value string) bool {
	return CompiledPatterns.Time.MatchString(value)
}

// IsValidDayOfWeek reports whether value names a day of the week.
// Comparison is case-insensitive; values are stored uppercase.
func IsValidDayOfWeek(value string) bool {
	upper := strings.ToUpper(value)
	for _, day := range DayNames {
		if day == upper {
			return true
		}
	}
	return false
}

// hhmmRule validates the "hhmm" binding tag
func hhmmRule(fl validator.FieldLevel) bool {
	return IsValidTime(fl.Field().String())
}

// dayOfWeekRule validates the "dayofweek" binding tag
func dayOfWeekRule(fl validator.FieldLevel) bool {
	return IsValidDayOfWeek(fl.Field().String())
}

// RegisterCustomValidators wires the domain rules into gin's binding validator.
// Must run before the router starts accepting requests.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("hhmm", hhmmRule); err != nil {
		return err
	}
	if err := v.RegisterValidation("dayofweek", dayOfWeekRule); err != nil {
		return err
	}

	return nil
}
