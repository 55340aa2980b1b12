package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/debworks/dep5/copyright"
	"github.com/debworks/dep5/deb"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "dep5",
		Short: "Machine-readable debian/copyright tooling",
		Long: `dep5 parses machine-readable debian/copyright files
(copyright-format 1.0) and gives packaging and build tools a structured
view of per-file copyright and license attribution.`,
		Version: version,
	}

	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(licensesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseFile(path string) (*copyright.CopyrightFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := copyright.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func checkCmd() *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a copyright file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return watchFile(args[0])
			}
			if _, err := parseFile(args[0]); err != nil {
				return err
			}
			fmt.Printf("%s: ok\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check the file on every change")
	return cmd
}

// watchFile re-validates path whenever it changes. Editors usually replace
// the file instead of writing in place, so the watch is registered on the
// parent directory and events are filtered by name.
func watchFile(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	report := func() {
		if _, err := parseFile(path); err != nil {
			log.Printf("%v", err)
			return
		}
		log.Printf("%s: ok", path)
	}
	report()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				report()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func showCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the parsed document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}
			switch format {
			case "yaml":
				out, err := yaml.Marshal(doc)
				if err != nil {
					return err
				}
				fmt.Print(string(out))
			case "json":
				out, err := json.MarshalIndent(doc, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
			default:
				return fmt.Errorf("unknown format %q (want yaml or json)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func extractCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "extract <package.deb>",
		Short: "Print the copyright file shipped inside a .deb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			content, err := deb.ExtractCopyright(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Print(content)
			if check {
				if _, err := copyright.Parse(content); err != nil {
					return fmt.Errorf("%s: embedded copyright file: %w", args[0], err)
				}
				fmt.Fprintf(os.Stderr, "%s: embedded copyright file is valid\n", args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "also parse the extracted file")
	return cmd
}

func licensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "licenses <file>",
		Short: "List license expressions used and license texts defined",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := parseFile(args[0])
			if err != nil {
				return err
			}
			for _, bp := range doc.Body {
				switch {
				case bp.Files != nil:
					fmt.Printf("used: %s (%s)\n", firstLine(bp.Files.License), strings.Join(bp.Files.Files, " "))
				case bp.LicenseDetail != nil:
					fmt.Printf("defined: %s\n", bp.LicenseDetail.Name)
				}
			}
			return nil
		},
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
