// Command catalogmaker writes the built-in seed catalog to an avro
// snapshot file, the format the storefront loads at startup via the
// catalog_file config key.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/niksmo/storefront/internal/adapter/catalogfile"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/spf13/pflag"
)

const outFlag = "out"

func main() {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	out := cmdLine.String(outFlag, "catalog.avro", "snapshot output path")
	_ = cmdLine.Parse(os.Args[1:])

	printStart(*out)
	defer printComplete(time.Now())

	catalog := catalogfile.Seed()

	records := make([]schema.ProductV1, 0, catalog.Len())
	for _, p := range catalog.Products() {
		records = append(records, catalogfile.FromDomain(p))
	}

	f, err := os.Create(*out)
	if err != nil {
		printFail(err)
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			printFail(err)
		}
	}()

	if err := schema.WriteCatalogV1(f, records); err != nil {
		printFail(err)
		return
	}

	fmt.Printf("wrote %d products\n", len(records))
}

func printStart(out string) {
	fmt.Printf("writing seed catalog snapshot to %q...\n", out)
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to write snapshot: \n%s\n", err)
}
