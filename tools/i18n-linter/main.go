// Copyright (c) 2026 Airdesk Team
// Airdesk - flight and passenger desk
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the source tree. It reports
// keys used in code but missing from the primary locale, keys the other
// locales lack, and keys nothing uses. Missing keys fail the run.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
)

// keyRe matches i18n.T("key") and bare "section.key" literals, which is how
// the desk passes log line ids around.
var keyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z_]+(?:\.[a-z_]+)*)"`)

// report is the outcome of one lint run.
type report struct {
	Used      map[string]struct{}
	Undefined []string            // used in code, absent from the primary locale
	Missing   map[string][]string // locale file -> keys it lacks
	Orphaned  []string            // in the primary locale, never used
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

func main() {
	r, err := lint(".", localesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(2)
	}
	writeReport(os.Stdout, r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (report, error) {
	r := report{Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("scan sources: %w", err)
	}
	r.Used = used

	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("load primary locale: %w", err)
	}

	for key := range used {
		if _, ok := primary[key]; !ok && looksLikeLocaleKey(key, primary) {
			r.Undefined = append(r.Undefined, key)
		}
	}
	for key := range primary {
		if _, ok := used[key]; !ok {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Undefined)
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return r, fmt.Errorf("load %s: %w", file, err)
		}
		var missing []string
		for key := range primary {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			r.Missing[filepath.Base(file)] = missing
		}
	}
	return r, nil
}

// looksLikeLocaleKey filters bare literals that merely have a dotted shape
// (file names, config keys) by requiring a known top-level section.
func looksLikeLocaleKey(key string, primary map[string]struct{}) bool {
	section, _, ok := strings.Cut(key, ".")
	if !ok {
		return false
	}
	for k := range primary {
		if strings.HasPrefix(k, section+".") {
			return true
		}
	}
	return false
}

// findUsedKeys scans non-test .go files below root for translation keys.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyRe.FindAllStringSubmatch(string(content), -1) {
			if m[1] != "" {
				keys[m[1]] = struct{}{}
			} else if m[2] != "" {
				keys[m[2]] = struct{}{}
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML locale and returns its dot-joined leaf keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	case []any:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

func writeReport(w io.Writer, r report) {
	fmt.Fprintf(w, "Found %d translation keys used in source code.\n", len(r.Used))

	fmt.Fprintln(w, "\n--- Undefined keys (used in code, not in "+primaryLocale+") ---")
	printList(w, r.Undefined)

	fmt.Fprintln(w, "\n--- Missing keys (in "+primaryLocale+", not in other locales) ---")
	if len(r.Missing) == 0 {
		fmt.Fprintln(w, "  None found.")
	}
	var files []string
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		fmt.Fprintf(w, "%s:\n", f)
		printList(w, r.Missing[f])
	}

	fmt.Fprintln(w, "\n--- Orphaned keys (in "+primaryLocale+", never used) ---")
	printList(w, r.Orphaned)

	switch {
	case r.failed():
		fmt.Fprintln(w, "\nFound issues that need to be addressed.")
	case len(r.Orphaned) > 0:
		fmt.Fprintln(w, "\nFound orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(w, "\nAll translation files are consistent.")
	}
}

func printList(w io.Writer, keys []string) {
	if len(keys) == 0 {
		fmt.Fprintln(w, "  None found.")
		return
	}
	for _, k := range keys {
		fmt.Fprintf(w, "  - %s\n", k)
	}
}
