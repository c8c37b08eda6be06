package main

import (
	"os"

	"github.com/fluffis/invoicehandler/cmd/invoicehandler"
)

func main() {
	os.Exit(invoicehandler.Execute())
}
