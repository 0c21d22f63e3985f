package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/suparena/memrepo"
	"github.com/suparena/memrepo/processor"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "", "Identifier configuration file (default: $MEMREPO_CONFIG). "+
		"Only strategy names are checked; entity names are resolved by programs that call processor.Run with registry.Types")
	envFlag     = flag.String("env", "", "Comma-separated dotenv files to load before resolving $MEMREPO_CONFIG")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := memrepo.GetVersionInfo()
		fmt.Printf("memrepo idmap version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	var envFiles []string
	if *envFlag != "" {
		envFiles = strings.Split(*envFlag, ",")
	}

	// idmap knows no entity types, so Types stays nil.
	processor.Main(processor.Options{
		ConfigPath: *configFlag,
		EnvFiles:   envFiles,
	})
}
