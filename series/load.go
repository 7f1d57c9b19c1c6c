package series

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ErrFormat is returned by Load for file types it cannot read.
var ErrFormat = errors.New("series: unknown file format")

// document is the JSON form of an Hourly series. A null price is a missing
// hour.
type document struct {
	Start  time.Time  `json:"start"`
	Prices []*float64 `json:"prices"`
}

// Load reads a series from path, choosing the decoder by extension:
// ".json" for LoadJSON and ".xlsx" for LoadXLSX (first sheet).
func Load(path string) (Hourly, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return Hourly{}, fmt.Errorf("series: %w", err)
		}
		defer f.Close()
		return LoadJSON(f)
	case ".xlsx":
		return LoadXLSX(path, "")
	default:
		return Hourly{}, fmt.Errorf("%w: %s", ErrFormat, path)
	}
}

// LoadJSON decodes a series of the form
//
//	{"start": "2026-10-16T00:00:00+03:00", "prices": [4.2, null, 5.1]}
func LoadJSON(r io.Reader) (Hourly, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Hourly{}, fmt.Errorf("series: decode json: %w", err)
	}
	if doc.Start.IsZero() {
		return Hourly{}, errors.New("series: missing start time")
	}

	h := Hourly{Start: doc.Start, Prices: make([]float64, len(doc.Prices))}
	for i, p := range doc.Prices {
		if p == nil {
			h.Prices[i] = math.NaN()
			continue
		}
		h.Prices[i] = *p
	}
	return h, nil
}

// LoadXLSX reads a series from a spreadsheet. The sheet starts with a header
// row followed by one row per hour: column A holds the hour as RFC 3339 and
// column B the price. A blank or non-numeric price is a missing hour. The
// first hour's timestamp becomes Start. An empty sheet name selects the first
// sheet.
func LoadXLSX(path, sheet string) (Hourly, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Hourly{}, fmt.Errorf("series: open %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return Hourly{}, fmt.Errorf("series: read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return Hourly{}, fmt.Errorf("series: sheet %q has no data rows", sheet)
	}

	var h Hourly
	for i, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if h.Prices == nil {
			h.Start, err = time.Parse(time.RFC3339, strings.TrimSpace(row[0]))
			if err != nil {
				return Hourly{}, fmt.Errorf("series: row %d: %w", i+2, err)
			}
			h.Prices = []float64{}
		}
		h.Prices = append(h.Prices, parsePrice(row))
	}
	if h.Prices == nil {
		return Hourly{}, fmt.Errorf("series: sheet %q has no data rows", sheet)
	}
	return h, nil
}

func parsePrice(row []string) float64 {
	if len(row) < 2 {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
