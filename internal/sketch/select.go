package sketch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arduino/go-paths-helper"

	"digispark-uploader/internal/logger"
)

// List returns every file below dir ending in ext, sorted so the menu numbering
// is stable between runs. An empty or missing collection is a NoSketchesError.
func List(dir, ext string) ([]string, error) {
	root := paths.New(dir)
	if root == nil || !root.IsDir() {
		return nil, NewNoSketchesError(dir)
	}

	found, err := root.ReadDirRecursiveFiltered(nil, paths.FilterOutDirectories(), paths.FilterSuffixes(ext))
	if err != nil {
		return nil, NewRefreshError(err, dir)
	}
	if len(found) == 0 {
		return nil, NewNoSketchesError(dir)
	}

	found.Sort()
	logger.Debug("[DEBUG] Found %d sketches in %s\n", len(found), dir)
	return found.AsStrings(), nil
}

// DisplayName is the sketch's file name without its extension.
func DisplayName(sketch string) string {
	p := paths.New(sketch)
	return strings.TrimSuffix(p.Base(), p.Ext())
}

// Choose prints a 1-based menu of sketches on out and reads one number from in.
func Choose(sketches []string, in io.Reader, out io.Writer) (string, error) {
	for i, s := range sketches {
		fmt.Fprintf(out, "%d. %s\n", i+1, DisplayName(s))
	}
	fmt.Fprint(out, "Select sketch number: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", NewSelectionError(err, "", len(sketches))
	}
	line = strings.TrimSpace(line)

	choice, err := strconv.Atoi(line)
	if err != nil {
		return "", NewSelectionError(err, line, len(sketches))
	}
	if choice < 1 || choice > len(sketches) {
		return "", NewSelectionError(nil, line, len(sketches))
	}
	return sketches[choice-1], nil
}
