package catalog

import (
	"strings"
	"time"

	"github.com/alzcare/screening-service/internal/models"
)

// Placeholder tokens accepted in expected-answer strings.
const (
	TokenYear      = "{{CURRENT_YEAR}}"
	TokenMonthName = "{{CURRENT_MONTH_NAME}}"
	TokenWeekday   = "{{CURRENT_WEEKDAY}}"
	TokenCountry   = "{{CURRENT_COUNTRY}}"
)

// LocaleProvider supplies the current date and locale strings used for
// placeholder substitution. Treated as a pure query.
type LocaleProvider interface {
	Year() string
	MonthName() string
	WeekdayName() string
	Country() string
}

// SystemLocale answers from the wall clock and a configured country name.
type SystemLocale struct {
	CountryName string
}

func (s SystemLocale) Year() string {
	return time.Now().Format("2006")
}

func (s SystemLocale) MonthName() string {
	return time.Now().Month().String()
}

func (s SystemLocale) WeekdayName() string {
	return time.Now().Weekday().String()
}

func (s SystemLocale) Country() string {
	return s.CountryName
}

// ResolveTemplates rewrites placeholder tokens in each item's expected
// answer, replacing every occurrence with the lower-cased provider value so
// downstream exact-match comparisons stay case-insensitive by construction.
// Items without an expected answer pass through untouched. Callers must run
// this exactly once per assembled session; a substituted value could itself
// collide with a token on a second pass.
func ResolveTemplates(items []models.Item, locale LocaleProvider) []models.Item {
	replacer := strings.NewReplacer(
		TokenYear, strings.ToLower(locale.Year()),
		TokenMonthName, strings.ToLower(locale.MonthName()),
		TokenWeekday, strings.ToLower(locale.WeekdayName()),
		TokenCountry, strings.ToLower(locale.Country()),
	)

	out := models.CloneItems(items)
	for i := range out {
		if out[i].ExpectedAnswer == nil {
			continue
		}
		resolved := replacer.Replace(*out[i].ExpectedAnswer)
		out[i].ExpectedAnswer = &resolved
	}
	return out
}
