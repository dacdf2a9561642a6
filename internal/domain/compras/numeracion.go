package compras

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PlantillaNumeroDefault produce números como "01/2026".
const PlantillaNumeroDefault = "{SEQ2}/{PERIODO}"

var seqPadRe = regexp.MustCompile(`\{SEQ(\d+)\}`)

// Periodo devuelve la clave de período (año calendario) de la fecha en la zona indicada.
func Periodo(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return strconv.Itoa(t.Year())
}

// FormatearNumeroOC arma el número visible de la OC a partir de la plantilla.
//
// Tokens: {PERIODO}, {SEQ} (valor crudo) y {SEQn} (relleno con ceros a n dígitos).
func FormatearNumeroOC(plantilla, periodo string, seq int64) (string, error) {
	if plantilla == "" {
		return "", fmt.Errorf("plantilla de numeración vacía")
	}
	if seq <= 0 {
		return "", fmt.Errorf("secuencia inválida: %d", seq)
	}

	out := strings.ReplaceAll(plantilla, "{PERIODO}", periodo)
	out = strings.ReplaceAll(out, "{SEQ}", strconv.FormatInt(seq, 10))
	out = seqPadRe.ReplaceAllStringFunc(out, func(m string) string {
		match := seqPadRe.FindStringSubmatch(m)
		width, err := strconv.Atoi(match[1])
		if err != nil || width <= 0 {
			return m
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	if strings.ContainsAny(out, "{}") {
		return "", fmt.Errorf("token sin resolver en la plantilla de numeración: %s", out)
	}
	return out, nil
}
