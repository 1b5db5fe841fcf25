package studio

import (
	"fmt"
	"time"

	"github.com/umputun/viralscope/pkg/domain"
)

var ptMonths = [...]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."}

// FormatShortDate renders day and short month for display, "17 de out." for PT and "Oct 17" for EN
func FormatShortDate(t time.Time, lang domain.Language) string {
	if lang == domain.LangPT {
		return fmt.Sprintf("%d de %s", t.Day(), ptMonths[t.Month()-1])
	}
	return t.Format("Jan 2")
}
