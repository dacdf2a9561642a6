// occtl opera el circuito de órdenes de compra desde la línea de comandos:
// migraciones, tabla de topes, preparación de borradores, tokens y semáforo de licencias.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
