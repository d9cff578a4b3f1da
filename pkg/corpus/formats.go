package corpus

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents the supported corpus file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatCoNLLU              // Universal Dependencies, 10 columns
	FormatTSV                 // word<TAB>TAG per line
)

// FormatInfo contains metadata about a corpus file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinColumns  int // columns a data line needs to be usable
	FormColumn  int
	TagColumn   int
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatCoNLLU: {
		Format:      FormatCoNLLU,
		Description: "CoNLL-U Treebank",
		Extensions:  []string{".conllu", ".conll"},
		MinColumns:  4,
		FormColumn:  1,
		TagColumn:   3,
	},
	FormatTSV: {
		Format:      FormatTSV,
		Description: "Tab Separated Word List",
		Extensions:  []string{".tsv", ".txt"},
		MinColumns:  2,
		FormColumn:  0,
		TagColumn:   1,
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// DetectFormat picks the format of a corpus file from its extension.
func DetectFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if ext == e {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// ValidateFile checks that filename is a readable corpus file with at least
// one line carrying enough columns for its format.
func ValidateFile(filename string) error {
	format, err := DetectFormat(filename)
	if err != nil {
		return err
	}
	info := supportedFormats[format]

	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}
	if fileInfo.Size() == 0 {
		return fmt.Errorf("file %s is empty", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if isComment(line) {
			continue
		}
		if len(splitColumns(line, format)) >= info.MinColumns {
			log.Debugf("Corpus file %s validated as %s", filename, info.Description)
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read corpus file %s: %w", filename, err)
	}
	return fmt.Errorf("file %s has no usable %s lines (need %d columns)",
		filename, info.Description, info.MinColumns)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}

// Extensions lists every file extension a corpus may have, for directory scans.
func Extensions() []string {
	var exts []string
	for _, format := range []FileFormat{FormatCoNLLU, FormatTSV} {
		exts = append(exts, supportedFormats[format].Extensions...)
	}
	return exts
}

func isComment(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// splitColumns splits a data line. CoNLL-U columns are tab separated but
// hand edited files often use spaces, so any whitespace run counts there.
func splitColumns(line string, format FileFormat) []string {
	if format == FormatTSV {
		cols := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
		out := cols[:0]
		for _, c := range cols {
			if c = strings.TrimSpace(c); c != "" {
				out = append(out, c)
			}
		}
		return out
	}
	return strings.Fields(line)
}
