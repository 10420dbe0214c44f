// Package numbering implementa el formato del número de factura del estudio:
// PREFIJO + DDMMYY + "-" + secuencia de 3 dígitos, con la secuencia acotada
// al día calendario (ej: la 7.ª factura del 5 de marzo de 2025 es GP050325-007).
//
// Este paquete es puro: solo formatea y parsea. Quién decide la secuencia
// (conteo del día o secuencia atómica) vive en la capa de aplicación.
package numbering

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/gpstudio/billing-api/internal/domain"
)

// DefaultPrefix prefijo del estudio.
const DefaultPrefix = "GP"

// Number es un número de factura ya interpretado.
type Number struct {
	Prefix string
	Day    int
	Month  time.Month
	Year   int // dos dígitos (00-99)
	Seq    int
}

// Format produce el identificador para la fecha y secuencia dadas.
// La fecha se toma tal cual (el llamador ya la expresó en la zona local).
func Format(prefix string, date time.Time, seq int) string {
	return fmt.Sprintf("%s%02d%02d%02d-%03d",
		prefix, date.Day(), int(date.Month()), date.Year()%100, seq)
}

var numberRe = regexp.MustCompile(`^([A-Z]+)(\d{2})(\d{2})(\d{2})-(\d{3,})$`)

// Parse interpreta un identificador producido por Format. Round-trip exacto:
// Parse(Format(p, d, s)) recupera (p, día/mes/año de d, s).
func Parse(s string) (Number, error) {
	m := numberRe.FindStringSubmatch(s)
	if m == nil {
		return Number{}, fmt.Errorf("%w: número de factura %q", domain.ErrInvalidInput, s)
	}
	day, _ := strconv.Atoi(m[2])
	month, _ := strconv.Atoi(m[3])
	year, _ := strconv.Atoi(m[4])
	seq, _ := strconv.Atoi(m[5])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return Number{}, fmt.Errorf("%w: fecha fuera de rango en %q", domain.ErrInvalidInput, s)
	}
	return Number{
		Prefix: m[1],
		Day:    day,
		Month:  time.Month(month),
		Year:   year,
		Seq:    seq,
	}, nil
}
