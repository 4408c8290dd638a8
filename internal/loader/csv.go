package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"tabprof/internal/dataset"
)

// CSVOptions controls parsing of delimited text files.
type CSVOptions struct {
	Delimiter    rune     // default ','
	NullLiterals []string // default DefaultNullLiterals
	Encoding     string   // "", "utf-8", "latin1", "windows-1252"
	TrimSpace    bool
}

// CSVLoader reads a delimited text file with a header row.
type CSVLoader struct {
	Path    string
	Options CSVOptions
}

func NewCSVLoader(path string, opts CSVOptions) *CSVLoader {
	return &CSVLoader{Path: path, Options: opts}
}

func (l *CSVLoader) Load() (*dataset.Dataset, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return LoadCSV(file, l.Options)
}

// LoadCSV parses delimited text from r. The first record is the header.
func LoadCSV(r io.Reader, opts CSVOptions) (*dataset.Dataset, error) {
	dec, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec)
	}

	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read headers: %w", err)
	}
	for i, h := range headers {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		headers[i] = strings.TrimSpace(h)
	}

	nulls := nullSet(opts.NullLiterals)
	var rows [][]cell
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		row := make([]cell, len(record))
		for i, v := range record {
			if opts.TrimSpace {
				v = strings.TrimSpace(v)
			}
			if isNullLiteral(nulls, v) {
				row[i] = cell{null: true}
			} else {
				row[i] = cell{text: v}
			}
		}
		rows = append(rows, row)
	}

	return buildDataset(headers, rows)
}

func decoderFor(name string) (transform.Transformer, error) {
	var enc encoding.Encoding
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "iso-8859-1":
		enc = charmap.ISO8859_1
	case "windows-1252", "cp1252":
		enc = charmap.Windows1252
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc.NewDecoder(), nil
}
