package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mnightingale/rapidutf8"
)

// CLI defines the utf8check command-line interface. With no paths it checks
// standard input. Directories are walked recursively; files ending in
// well-formed UTF-8 count as ok, anything else flips the exit code to 1.
type CLI struct {
	Paths  []string `arg:"" optional:"" help:"Files or directories to check (default: stdin)" type:"path"`
	Quiet  bool     `short:"q" help:"No per-file output, exit code only"`
	Kernel bool     `help:"Print the selected validation kernel and exit"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("utf8check"),
		kong.Description("Check that files contain well-formed UTF-8."),
	)

	if cli.Kernel {
		fmt.Printf("%s (%d lanes)\n", rapidutf8.Kernel(), rapidutf8.VectorWidth())
		return
	}

	bad, err := run(&cli)
	ctx.FatalIfErrorf(err)
	if bad {
		os.Exit(1)
	}
}

func run(cli *CLI) (bad bool, err error) {
	if len(cli.Paths) == 0 {
		ok, err := checkStream(os.Stdin)
		if err != nil {
			return false, fmt.Errorf("stdin: %w", err)
		}
		report(cli, "stdin", ok)
		return !ok, nil
	}

	for _, path := range cli.Paths {
		info, err := os.Stat(path)
		if err != nil {
			return bad, fmt.Errorf("stat %q: %w", path, err)
		}
		if info.IsDir() {
			dirBad, err := checkDir(cli, path)
			if err != nil {
				return bad, err
			}
			bad = bad || dirBad
			continue
		}
		ok, err := checkFile(path)
		if err != nil {
			return bad, err
		}
		report(cli, path, ok)
		bad = bad || !ok
	}
	return bad, nil
}

// checkDir walks a directory tree and checks every regular file. Test
// fixtures and editor droppings are not special-cased; everything regular
// gets checked.
func checkDir(cli *CLI, dir string) (bad bool, err error) {
	err = filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %q: %w", path, err)
		}
		if entry.IsDir() {
			if strings.HasPrefix(entry.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %q: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		ok, err := checkFile(path)
		if err != nil {
			return err
		}
		report(cli, path, ok)
		bad = bad || !ok
		return nil
	})
	return bad, err
}

func checkFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	return checkStream(f)
}

// checkStream drains r through a validating reader so arbitrarily large
// inputs never need to be held in memory.
func checkStream(r io.Reader) (bool, error) {
	_, err := io.Copy(io.Discard, rapidutf8.NewReader(r))
	if errors.Is(err, rapidutf8.ErrInvalidUTF8) {
		return false, nil
	}
	return err == nil, err
}

func report(cli *CLI, name string, ok bool) {
	if cli.Quiet {
		return
	}
	if ok {
		fmt.Printf("%s: ok\n", name)
	} else {
		fmt.Printf("%s: invalid utf-8\n", name)
	}
}
