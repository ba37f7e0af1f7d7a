package histo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

func isInt(f float64) bool {
	return f == float64(int(f))
}

func printfLen(format string, val interface{}) int {
	s := fmt.Sprintf(format, val)

	return len(s)
}

// String renders the histogram as text, one line per bin with a dot bar
// proportional to the share of the total count.
func (h *Histogram[P, C]) String() string {
	if h.Bins == 0 || len(h.Counts) == 0 {
		return ""
	}

	hasIntBreaks := true

	for _, b := range h.Breaks {
		if !isInt(float64(b)) {
			hasIntBreaks = false

			break
		}
	}

	breakFmt := "%.2f"
	statsFmt := "[%*.2f %*.2f%c %*v %5.2f%%"

	if hasIntBreaks {
		breakFmt = "%.0f"
		statsFmt = "[%*.0f %*.0f%c %*v %5.2f%%"
	}

	nLen := printfLen(breakFmt, h.Breaks[0])
	if maxLen := printfLen(breakFmt, h.Breaks[h.Bins]); maxLen > nLen {
		nLen = maxLen
	}

	total := h.Total()
	cLen := printfLen("%v", total)

	var res strings.Builder

	if h.Name != "" {
		fmt.Fprintln(&res, h.Name)
	}

	fmt.Fprintf(&res, "[%*s %*s] %*s total%% (total count: %v)\n", nLen, "low", nLen, "high", cLen, "cnt", total)

	for i, c := range h.Counts {
		percent := 0.0
		if float64(total) > 0 {
			percent = 100 * float64(c) / float64(total)
		}

		closing := byte(')')
		if i == h.Bins-1 {
			closing = ']'
		}

		fmt.Fprintf(&res, statsFmt, nLen, h.Breaks[i], nLen, h.Breaks[i+1], closing, cLen, c, percent)

		if dots := strings.Repeat(".", int(percent)); len(dots) > 0 {
			fmt.Fprint(&res, " ", dots)
		}

		fmt.Fprintln(&res)
	}

	return res.String()
}

// WriteBreaksAndCounts writes one line per bin: its break interval and its
// count. The closing bracket of the last interval signals that the last bin
// includes its upper edge.
func (h *Histogram[P, C]) WriteBreaksAndCounts(w io.Writer) error {
	for i, c := range h.Counts {
		closing := byte(')')
		if i == h.Bins-1 {
			closing = ']'
		}

		if _, err := fmt.Fprintf(w, "[%18.9f,%18.9f%c %18v\n", h.Breaks[i], h.Breaks[i+1], closing, c); err != nil {
			return err
		}
	}

	return nil
}

// WriteCentersAndCounts writes one line per bin: its center and its count.
func (h *Histogram[P, C]) WriteCentersAndCounts(w io.Writer) error {
	for i, center := range h.BinCenters() {
		if _, err := fmt.Fprintf(w, "%18.9f %18v\n", center, h.Counts[i]); err != nil {
			return err
		}
	}

	return nil
}

// WriteBreaks writes all breaks on one line.
func (h *Histogram[P, C]) WriteBreaks(w io.Writer) error {
	return writeRow(w, "%18.9f", h.Breaks)
}

// WriteCenters writes all bin centers on one line.
func (h *Histogram[P, C]) WriteCenters(w io.Writer) error {
	return writeRow(w, "%18.9f", h.BinCenters())
}

// WriteCounts writes all counts on one line.
func (h *Histogram[P, C]) WriteCounts(w io.Writer) error {
	return writeRow(w, "%18v", h.Counts)
}

func writeRow[V any](w io.Writer, format string, vals []V) error {
	for i, v := range vals {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, format, v); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "\n")

	return err
}

// Save writes plain "center count" lines, one bin per line in bin order, to
// path, creating missing parent directories.
func (h *Histogram[P, C]) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "histo: creating directory for %q", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "histo: creating %q", path)
	}

	for i, center := range h.BinCenters() {
		if _, err := fmt.Fprintf(f, "%v %v\n", center, h.Counts[i]); err != nil {
			f.Close()

			return errors.Wrapf(err, "histo: writing %q", path)
		}
	}

	return errors.Wrapf(f.Close(), "histo: writing %q", path)
}
