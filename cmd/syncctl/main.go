// Command syncctl opera la base de productividad desde la terminal: sincroniza las
// hojas de cálculo, aplica migraciones y da de alta usuarios del panel.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
