// histstat — linenoise history file inspector
// Usage: go run ./cmd/histstat [--top N] [--hist-dir PATH]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ── Types ────────────────────────────────────────────────────────────────

type counter map[string]int

func (c counter) topN(n int) []kv {
	kvs := make([]kv, 0, len(c))
	for k, v := range c {
		kvs = append(kvs, kv{k, v})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].V > kvs[j].V })
	if n > 0 && len(kvs) > n {
		kvs = kvs[:n]
	}
	return kvs
}

type kv struct {
	K string
	V int
}

type fileSummary struct {
	path       string
	lines      []string
	longest    string
	duplicates int
}

// ── Loaders ──────────────────────────────────────────────────────────────

func loadHistoryFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".history") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// readHistoryLines tolerates either LF or bare-CR line endings, matching
// History.Load's own scanner so this tool's counts agree with the engine's.
func readHistoryLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(func(data []byte, atEOF bool) (advance int, token []byte, err error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		for i, b := range data {
			if b == '\n' || b == '\r' {
				return i + 1, data[:i], nil
			}
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	})

	var lines []string
	for sc.Scan() {
		line := sc.Text()
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func analyzeFile(path string) fileSummary {
	sum := fileSummary{path: path}
	lines, err := readHistoryLines(path)
	if err != nil {
		return sum
	}
	sum.lines = lines

	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		if seen[l] {
			sum.duplicates++
		}
		seen[l] = true
		if len(l) > len(sum.longest) {
			sum.longest = l
		}
	}
	return sum
}

// ── Formatting ───────────────────────────────────────────────────────────

func printTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	sep := make([]string, len(headers))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	row2line := func(cells []string) string {
		parts := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return strings.Join(parts, "  ")
	}
	fmt.Println(row2line(headers))
	fmt.Println(strings.Join(sep, "  "))
	for _, row := range rows {
		fmt.Println(row2line(row))
	}
}

func section(title string) {
	fmt.Printf("\n%s\n%s\n", title, strings.Repeat("─", len(title)))
}

// ── Main ─────────────────────────────────────────────────────────────────

func main() {
	topN := flag.Int("top", 20, "number of top entries to show")
	histDir := flag.String("hist-dir", "./sshd-data/history", "directory of .history files to inspect")
	perFile := flag.Bool("files", false, "show per-file detail")
	flag.Parse()

	paths, err := loadHistoryFiles(*histDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "histstat: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s\n", strings.Repeat("═", 62))
	fmt.Printf("  LINENOISE HISTORY REPORT\n")
	fmt.Printf("%s\n", strings.Repeat("═", 62))

	section("Files")
	fmt.Printf("Total history files : %d\n", len(paths))

	if len(paths) == 0 {
		fmt.Println("\nNo history files found.")
		return
	}

	cmdFreq := make(counter)
	lineFreq := make(counter)
	var summaries []fileSummary
	totalLines := 0
	totalDuplicates := 0

	for _, p := range paths {
		s := analyzeFile(p)
		summaries = append(summaries, s)
		totalLines += len(s.lines)
		totalDuplicates += s.duplicates
		for _, l := range s.lines {
			lineFreq[l]++
			if fields := strings.Fields(l); len(fields) > 0 {
				cmdFreq[fields[0]]++
			}
		}
	}

	fmt.Printf("Total entries       : %d\n", totalLines)
	fmt.Printf("Duplicate entries   : %d\n", totalDuplicates)

	section(fmt.Sprintf("Top %d Repeated Lines", *topN))
	rows := [][]string{}
	for _, e := range lineFreq.topN(*topN) {
		rows = append(rows, []string{e.K, fmt.Sprint(e.V)})
	}
	printTable([]string{"Line", "Count"}, rows)

	section(fmt.Sprintf("Top %d First Words", *topN))
	rows = rows[:0]
	for _, e := range cmdFreq.topN(*topN) {
		rows = append(rows, []string{e.K, fmt.Sprint(e.V)})
	}
	printTable([]string{"Word", "Count"}, rows)

	if *perFile {
		section("Per-File Detail")
		for _, s := range summaries {
			fmt.Printf("\n  %s (%d entries, %d duplicates)\n", filepath.Base(s.path), len(s.lines), s.duplicates)
			fmt.Printf("    longest: %q\n", s.longest)
		}
	}

	fmt.Printf("\n%s\n\n", strings.Repeat("═", 62))
}
