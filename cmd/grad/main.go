// Package main provides the grad command-line tool.
package main

import (
	"fmt"
	"log"
	"os"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("grad %s\n", version)
	case "demo":
		err = runDemo(os.Stdout)
	case "dot":
		err = runDOT(os.Stdout)
	case "train":
		err = runTrain(os.Args[2:], os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Println("grad - scalar reverse-mode autodiff")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Backpropagate through L = (a*b + c) * f")
	fmt.Println("  dot        Print the demo graph in Graphviz DOT format")
	fmt.Println("  train      Fit an MLP on a two-moons dataset (see train -h)")
}
