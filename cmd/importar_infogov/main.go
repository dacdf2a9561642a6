// importar_infogov genera un script SQL idempotente para dar de alta expedientes
// a partir del texto copiado desde InfoGov (una línea por expediente).
//
// Uso: go run ./cmd/importar_infogov [-latin1] [ruta/infogov.txt] [salida.sql]
// Sin salida escribe en stdout. Con -latin1 el archivo se lee como ISO-8859-1.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Expedientes-api/internal/domain/entity"
	"github.com/jhoicas/Expedientes-api/internal/domain/infogov"
)

func main() {
	latin1 := flag.Bool("latin1", false, "decodificar la entrada como ISO-8859-1")
	flag.Parse()

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Abrir entrada: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}
	if *latin1 {
		in = transform.NewReader(in, charmap.ISO8859_1.NewDecoder())
	}

	var out io.Writer = os.Stdout
	if flag.NArg() > 1 {
		f, err := os.Create(flag.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	n, errs, err := generarSQL(in, out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar SQL: %v\n", err)
		os.Exit(1)
	}
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, e)
	}
	fmt.Fprintf(os.Stderr, "Generados %d expedientes (%d líneas descartadas)\n", n, len(errs))
}

// generarSQL escribe un INSERT por línea válida. Las líneas en blanco se ignoran y
// las que no se pueden interpretar se devuelven como errores con su número de línea.
func generarSQL(r io.Reader, w io.Writer) (int, []error, error) {
	bw := bufio.NewWriter(w)
	bw.WriteString("-- Expedientes importados desde InfoGov\n\n")

	var (
		n    int
		errs []error
	)
	sc := bufio.NewScanner(r)
	linea := 0
	for sc.Scan() {
		linea++
		texto := strings.TrimSpace(sc.Text())
		if texto == "" {
			continue
		}
		reg, err := infogov.Parse(texto)
		if err != nil {
			errs = append(errs, fmt.Errorf("línea %d: %w", linea, err))
			continue
		}
		escribirInsert(bw, reg)
		n++
	}
	if err := sc.Err(); err != nil {
		return n, errs, err
	}
	return n, errs, bw.Flush()
}

func escribirInsert(w io.Writer, reg infogov.Registro) {
	numero := strings.SplitN(reg.NroInfoGov, "-", 2)[0]
	fmt.Fprintf(w, "INSERT INTO expedientes (numero, anio, tipo, asunto, nro_infogov, nro_gde, oficina, estado, fecha_pase)\n")
	fmt.Fprintf(w, "VALUES ('%s', %d, '%s', '%s', '%s', '%s', '%s', '%s', '%s')\n",
		escapeSQL(numero), reg.Anio(), entity.ExpedienteTipoInfoGov, escapeSQL(reg.Tema),
		escapeSQL(reg.NroInfoGov), escapeSQL(reg.NroGDE), escapeSQL(reg.Oficina),
		escapeSQL(reg.Estado), reg.FechaPase.Format("2006-01-02"))
	io.WriteString(w, "ON CONFLICT (nro_infogov) DO NOTHING;\n")
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
