package quantity

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// TotalsSeparator separa dimensiones cuando un conjunto mezcla peso, volumen y unidades.
const TotalsSeparator = " + "

// Formatter formatea totales con los separadores del idioma configurado.
// Los dígitos salen del string del decimal, sin pasar por float64.
type Formatter struct {
	decimalSep string
	groupSep   string
	minGroup   int
}

// NewFormatter crea un formatter para el locale (BCP 47, ej. "es", "pt-BR").
// Un locale inválido cae a español.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	p := message.NewPrinter(tag)

	// Los separadores se leen de una muestra impresa con las reglas CLDR del locale.
	f := &Formatter{decimalSep: ".", minGroup: 1}
	seps := separators(p.Sprint(number.Decimal(1234567.5, number.MinFractionDigits(1))))
	if len(seps) > 0 {
		f.decimalSep = seps[len(seps)-1]
	}
	if len(seps) > 1 {
		f.groupSep = seps[0]
		// es agrupa 1234567 pero no 1234.
		if len(separators(p.Sprint(number.Decimal(1234.5, number.MinFractionDigits(1))))) < 2 {
			f.minGroup = 2
		}
	}
	return f
}

// separators tramos no numéricos entre dígitos, en orden.
func separators(s string) []string {
	var (
		out     []string
		cur     strings.Builder
		started bool
	)
	for _, r := range s {
		if unicode.IsDigit(r) {
			if started && cur.Len() > 0 {
				out = append(out, cur.String())
			}
			cur.Reset()
			started = true
			continue
		}
		if started {
			cur.WriteRune(r)
		}
	}
	return out
}

// FormatTotals devuelve p.ej. "150,25 KG" o "12,50 KG + 3 UN".
func (f *Formatter) FormatTotals(t Totals) string {
	var parts []string
	if !t.Weight.IsZero() {
		parts = append(parts, f.measure(t.Weight)+" KG")
	}
	if !t.Volume.IsZero() {
		parts = append(parts, f.measure(t.Volume)+" L")
	}
	if !t.Units.IsZero() {
		parts = append(parts, f.count(t.Units)+" UN")
	}
	if len(parts) == 0 {
		return f.measure(decimal.Zero) + " KG"
	}
	return strings.Join(parts, TotalsSeparator)
}

func (f *Formatter) measure(v decimal.Decimal) string {
	return f.format(v, 2)
}

func (f *Formatter) count(v decimal.Decimal) string {
	return f.format(v, 0)
}

// format redondea a 3 decimales y recorta ceros finales hasta minFrac.
func (f *Formatter) format(v decimal.Decimal, minFrac int) string {
	s := v.Round(3).StringFixed(3)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	for len(frac) > minFrac && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(f.group(intPart))
	if frac != "" {
		b.WriteString(f.decimalSep)
		b.WriteString(frac)
	}
	return b.String()
}

func (f *Formatter) group(digits string) string {
	if f.groupSep == "" || len(digits) < 3+f.minGroup {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(f.groupSep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
