package main

import (
	"os"
	"strings"

	"navdemo/internal/cli"
	"navdemo/internal/deeplink"
)

func rewriteDeepLinkArgs(argv []string) []string {
	// Convenience: `navdemo music/browser/0` works like `navdemo open music/browser/0`.
	//
	// Cobra treats the first non-flag token as a subcommand, so we rewrite argv before parsing.
	// Persistent flags may come first (`navdemo --config x.toml <link>`), so find the first
	// positional token rather than looking at argv[1].
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":    true,
		"--deeplink":  true,
		"--format":    true,
		"--log-file":  true,
		"--log-level": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && deeplink.Looks(argv[i+1]) {
				return insertOpen(argv, i)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if strings.Contains(a, "=") {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}

		if deeplink.Looks(a) {
			return insertOpen(argv, i)
		}
		return argv
	}
	return argv
}

func insertOpen(argv []string, at int) []string {
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:at]...)
	out = append(out, "open")
	out = append(out, argv[at:]...)
	return out
}

func main() {
	os.Args = rewriteDeepLinkArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
