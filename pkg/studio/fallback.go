package studio

import (
	"strings"
	"time"

	"github.com/umputun/viralscope/pkg/domain"
)

// fallbackHeadlineEN replaces the one fallback headline that has an english rendition
const fallbackHeadlineEN = "SHOOTING AT WHITE HOUSE: Washington in Lockdown"

// fallbackNews is the built-in feed served when generation is impossible. Never modified, copied on use.
var fallbackNews = [...]domain.NewsItem{
	{
		ID:          "fallback-1",
		Headline:    "TIROTEIO NA CASA BRANCA: Washington em Lockdown Total",
		Summary:     "A capital americana entra em estado de sítio após múltiplos disparos reportados no perímetro norte da residência presidencial. Guarda Nacional acionada.",
		ViralScore:  99,
		Category:    domain.CategoryPolitics,
		IsReal:      true,
		Date:        "Hoje",
		IsHighlight: true,
	},
	{
		ID:         "fallback-2",
		Headline:   "CALIFÓRNIA AFUNDANDO: A Falha de San Andreas Acordou",
		Summary:    `Sismólogos registram tremor histórico de 8.2 na escala Richter. Especialistas alertam que o "Big One" pode ter começado agora.`,
		ViralScore: 97,
		Category:   domain.CategoryDisaster,
		IsReal:     true,
		Date:       "Hoje",
	},
	{
		ID:         "fallback-3",
		Headline:   "O FIM DO DÓLAR: China e Rússia Lançam Nova Moeda Global",
		Summary:    "Em movimento surpresa, potências orientais desvinculam suas economias do dólar americano, causando pânico em Wall Street.",
		ViralScore: 95,
		Category:   domain.CategoryEconomy,
		IsReal:     true,
		Date:       "Hoje",
	},
	{
		ID:         "fallback-4",
		Headline:   "INVASÃO SILENCIOSA: O Sinal Veio do Fundo do Mar",
		Summary:    "Marinha dos EUA detecta estrutura gigantesca se movendo no Pacífico. O Pentágono se recusa a comentar, mas frotas estão se movendo.",
		ViralScore: 98,
		Category:   domain.CategoryFiction,
		IsReal:     false,
		Date:       "Hoje",
	},
	{
		ID:         "fallback-5",
		Headline:   "APAGÃO DIGITAL: Internet Global Desligada em 24h?",
		Summary:    "Grupo hacker desconhecido reivindica controle dos cabos submarinos e ameaça resetar a rede mundial se exigências não forem cumpridas.",
		ViralScore: 94,
		Category:   domain.CategoryFiction,
		IsReal:     false,
		Date:       "Hoje",
	},
}

// FallbackNews returns a fresh copy of the built-in items with their static date
func FallbackNews() []domain.NewsItem {
	res := make([]domain.NewsItem, len(fallbackNews))
	copy(res, fallbackNews[:])
	return res
}

// fallbackItems returns the built-in items dated at now. With translate set, english feeds get
// the known english headline.
func fallbackItems(lang domain.Language, now time.Time, translate bool) []domain.NewsItem {
	items := FallbackNews()
	date := FormatShortDate(now, lang)
	for i := range items {
		items[i].Date = date
		if translate && lang == domain.LangEN && strings.Contains(items[i].Headline, "TIROTEIO") {
			items[i].Headline = fallbackHeadlineEN
		}
	}
	return items
}
