// Package main provides the Lattice array engine CLI.
package main

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/lattice-lang/lattice/internal/serialization"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Lattice Array Engine %s\n", version)
			return
		case "inspect":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: lattice inspect <file.lat>")
				os.Exit(2)
			}
			if err := inspect(os.Args[2]); err != nil {
				fmt.Fprintln(os.Stderr, "lattice:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Lattice - N-dimensional array engine for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version           Show version")
	fmt.Println("  inspect <file>    List the values in a .lat file")
}

// inspect prints the name, kind, and shape of every value in a .lat file.
func inspect(path string) error {
	values, err := serialization.Load(path)
	if err != nil {
		return err
	}
	names := maps.Keys(values)
	sort.Strings(names)
	for _, name := range names {
		v := values[name]
		fmt.Printf("%-24s %-10s %v\n", name, v.TypeName(), v.Shape())
	}
	return nil
}
