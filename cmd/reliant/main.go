package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cloudward/reliant"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "", "Validate a client config file and print the effective retry schedule")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := reliant.GetVersionInfo()
		fmt.Printf("Reliant version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if *configFlag != "" {
		cfg, err := reliant.LoadClientConfig(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		rc := cfg.RetryConfig()
		fmt.Printf("maxAttempts: %d\n", rc.MaxAttempts)
		fmt.Printf("baseInterval: %s\n", rc.BaseInterval)
		fmt.Printf("exponential: %t\n", rc.Exponential)
		os.Exit(0)
	}

	flag.Usage()
	os.Exit(2)
}
