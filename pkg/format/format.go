// Package format contiene helpers puros de presentación: moneda COP y parseo tolerante
// de los campos de formulario.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// copSeparator es el espacio no separable entre el símbolo y el monto (es-CO).
const copSeparator = "\u00a0"

// FormatCOP formatea un monto en pesos colombianos sin decimales.
// Ej: 1234 → "$ 1.234", 0 → "$ 0", -5000 → "-$ 5.000" (con espacio no separable).
func FormatCOP(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	neg := rounded.IsNegative()
	digits := rounded.Abs().StringFixed(0)

	prefix := "$" + copSeparator
	if neg {
		prefix = "-" + prefix
	}
	return prefix + groupThousands(digits)
}

// colombia hora de Colombia (UTC-5, sin horario de verano).
var colombia = time.FixedZone("COT", -5*60*60)

// FormatDate fecha corta dd/mm/yyyy en hora de Colombia.
func FormatDate(t time.Time) string {
	return t.In(colombia).Format("02/01/2006")
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// SafeParseInt interpreta el prefijo entero de s (espacios iniciales, signo, dígitos).
// Cualquier entrada sin dígitos al inicio devuelve 0: "42" → 42, "12abc" → 12, "abc" → 0, "" → 0.
func SafeParseInt(s string) int {
	num := leadingNumber(s, false)
	if num == "" {
		return 0
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0
	}
	return n
}

// SafeParseDecimal interpreta el prefijo decimal de s ("12.5kg" → 12.5); sin número devuelve 0.
func SafeParseDecimal(s string) decimal.Decimal {
	num := leadingNumber(s, true)
	if num == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// leadingNumber extrae el número al inicio de s. Con fraction acepta parte decimal y exponente.
func leadingNumber(s string, fraction bool) string {
	s = strings.TrimLeft(s, " \t\n\r\v\f\u00a0")
	var b strings.Builder
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			b.WriteByte('-')
		}
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		b.WriteByte(s[i])
		i++
	}
	hasInt := i > intStart
	if !fraction {
		if !hasInt {
			return ""
		}
		return b.String()
	}

	hasFrac := false
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > i+1 {
			if !hasInt {
				b.WriteByte('0')
			}
			b.WriteString(s[i:j])
			hasFrac = true
			i = j
		}
	}
	if !hasInt && !hasFrac {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			b.WriteString(s[i:k])
		}
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
