package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Selector    string `arg:"" optional:"" default:"all" help:"Validators to run: all | jsonld | links | meta | comma-separated list (e.g. jsonld,meta)"`
	Dir         string `default:"dist" type:"path" help:"Path to the dist directory (default: ./dist)"`
	Quiet       bool   `help:"Disable printed summary output"`
	Config      string `type:"path" help:"YAML configuration file (default: distcheck.yaml when present)"`
	Concurrency int    `short:"c" default:"1" help:"Number of pages checked at once"`
	Verbose     bool   `short:"v" help:"Log validator activity to stderr"`
}
