// Package infogov interpreta el texto copiado desde el sistema InfoGov
// para dar de alta expedientes.
package infogov

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Expedientes-api/internal/domain"
)

// EstadoDesconocido se usa cuando la línea no termina con un estado reconocible.
const EstadoDesconocido = "Desconocido"

var (
	nroInfoGovRe = regexp.MustCompile(`^(\d+)\s+(\d+)\s+(\d+)`)
	temaFechaRe  = regexp.MustCompile(`^(.+?)\s+(\d{1,2}/\d{1,2}/\d{4})`)
	nroGDERe     = regexp.MustCompile(`(EX-\d{4}-\d{8}-[A-Z]{6}-[A-Z]{5})`)
	estadoRe     = regexp.MustCompile(`(Contratación\s+Directa|[A-ZÁÉÍÓÚÑ][a-záéíóúñ\s]+)$`)
)

// Registro es un expediente leído de InfoGov.
type Registro struct {
	NroInfoGov string    // 817619-30-2026
	Tema       string    // Reparación embrague Toyota Hilux
	NroGDE     string    // EX-2026-01216856-GDEMZA-DGIRR
	FechaPase  time.Time // fecha del último pase
	Estado     string    // Contratación Directa
	Oficina    string    // GDEMZA (cuarto segmento del nro GDE)
}

// Resumen devuelve "nro_infogov - tema - nro_gde".
func (r Registro) Resumen() string {
	return r.NroInfoGov + " - " + r.Tema + " - " + r.NroGDE
}

// Anio devuelve el año del número InfoGov (último segmento).
func (r Registro) Anio() int {
	partes := strings.Split(r.NroInfoGov, "-")
	n, _ := strconv.Atoi(partes[len(partes)-1])
	return n
}

// Parse interpreta una línea del portapapeles de InfoGov. Formato esperado:
//
//	817619 30 2026 Reparación embrague... 18/2/2026 ... EX-2026-01216856-GDEMZA-DGIRR Contratación Directa
func Parse(linea string) (Registro, error) {
	texto := strings.TrimSpace(linea)
	if texto == "" {
		return Registro{}, fmt.Errorf("%w: línea vacía", domain.ErrInvalidInput)
	}

	m := nroInfoGovRe.FindStringSubmatchIndex(texto)
	if m == nil {
		return Registro{}, fmt.Errorf("%w: no se encontró el número InfoGov", domain.ErrInvalidInput)
	}
	nro := texto[m[2]:m[3]] + "-" + texto[m[4]:m[5]] + "-" + texto[m[6]:m[7]]
	resto := strings.TrimSpace(texto[m[1]:])

	tf := temaFechaRe.FindStringSubmatch(resto)
	if tf == nil {
		return Registro{}, fmt.Errorf("%w: no se encontró fecha DD/MM/AAAA", domain.ErrInvalidInput)
	}
	fecha, err := parseFechaDMY(tf[2])
	if err != nil {
		return Registro{}, err
	}

	gde := nroGDERe.FindString(resto)
	if gde == "" {
		return Registro{}, fmt.Errorf("%w: no se encontró el número GDE", domain.ErrInvalidInput)
	}

	estado := EstadoDesconocido
	if e := estadoRe.FindStringSubmatch(resto); e != nil {
		estado = strings.TrimSpace(e[1])
	}

	return Registro{
		NroInfoGov: nro,
		Tema:       strings.TrimSpace(tf[1]),
		NroGDE:     gde,
		FechaPase:  fecha,
		Estado:     estado,
		Oficina:    oficina(gde),
	}, nil
}

func parseFechaDMY(s string) (time.Time, error) {
	partes := strings.Split(s, "/")
	if len(partes) != 3 {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, s)
	}
	dia, _ := strconv.Atoi(partes[0])
	mes, _ := strconv.Atoi(partes[1])
	anio, _ := strconv.Atoi(partes[2])
	if mes < 1 || mes > 12 {
		return time.Time{}, fmt.Errorf("%w: mes fuera de rango %d", domain.ErrInvalidInput, mes)
	}
	if dia < 1 || dia > 31 {
		return time.Time{}, fmt.Errorf("%w: día fuera de rango %d", domain.ErrInvalidInput, dia)
	}
	return time.Date(anio, time.Month(mes), dia, 0, 0, 0, 0, time.UTC), nil
}

// oficina extrae el cuarto segmento de EX-AAAA-NNNNNNNN-OFICINA-SIGLA.
func oficina(nroGDE string) string {
	partes := strings.Split(nroGDE, "-")
	if len(partes) >= 4 {
		return partes[3]
	}
	return ""
}
