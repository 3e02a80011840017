// Command sm83 runs single step CPU test vectors against the CPU
// and reports the number of passing and failing tests per file.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"sort"

	"github.com/thelolagemann/gomeboy/internal/conformance"
	"github.com/thelolagemann/gomeboy/pkg/log"
)

func main() {
	verbose := flag.Bool("v", false, "Print every failing test")
	flag.Parse()

	logger := log.NewWriter(os.Stdout, *verbose)
	if flag.NArg() == 0 {
		logger.Fatalf("usage: sm83 [-v] <dir|file|archive>...")
	}

	var paths []string
	for _, arg := range flag.Args() {
		info, err := os.Stat(arg)
		if err != nil {
			logger.Fatalf("%v", err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		matches, _ := filepath.Glob(filepath.Join(arg, "*.json*"))
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	var passed, failed int
	for _, path := range paths {
		files, err := conformance.LoadFiles(path)
		if err != nil {
			logger.Errorf("%v", err)
			failed++
			continue
		}
		for _, file := range files {
			var filePassed, fileFailed int
			for _, test := range file.Tests {
				result := conformance.Run(test)
				if result.Passed() {
					filePassed++
					continue
				}
				fileFailed++
				logger.Debugf("%s: %v (digest %016X)", result.Name, result.Diffs, result.Digest)
			}
			if fileFailed > 0 {
				logger.Errorf("%s: %d passed, %d failed", file.Name, filePassed, fileFailed)
			} else {
				logger.Infof("%s: %d passed", file.Name, filePassed)
			}
			passed += filePassed
			failed += fileFailed
		}
	}

	logger.Infof("total: %d passed, %d failed", passed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
