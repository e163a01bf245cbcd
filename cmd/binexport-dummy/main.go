// Command binexport-dummy is a do-nothing tool used to exercise the
// binexport front end. It answers the manifest query and otherwise
// echoes its positional arguments.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"binexport/internal/toolinfo"
)

var manifest = toolinfo.Manifest{
	Name:        "dummy",
	Aliases:     []string{"nop"},
	Description: "Dummy command that does (mostly) nothing",
}

func main() {
	query := flag.String("subcommand_query", "",
		"internal, output information for the 'binexport' tool")
	flag.Parse()

	if *query != "" {
		if err := answerQuery(*query); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Hello from Dummy")
	for _, arg := range flag.Args() {
		fmt.Printf("  posarg: %s\n", arg)
	}
}

func answerQuery(query string) error {
	if query != "info" {
		return fmt.Errorf("unknown query %q", query)
	}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
