// Package table reads weight tables and writes codeword tables in CSV form.
//
// Input tables have the header "symbol,weight" followed by one row per
// symbol.  Output tables have the header "symbol,weight,codeword" followed by
// one row per symbol, in input order, with the codeword spelled out as '0'
// and '1' characters.
//
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/exp/slices"

	huffman "github.com/chronos-tachyon/huffcalc"
)

var log = logging.MustGetLogger("table")

func init() {
	logging.SetLevel(logging.WARNING, "table")
}

// ErrMalformedInput is wrapped by all errors caused by unparseable input.
var ErrMalformedInput = errors.New("table: malformed input")

var (
	inputHeader  = []string{"symbol", "weight"}
	outputHeader = []string{"symbol", "weight", "codeword"}
)

// ReadAlphabet parses a weight table.  A symbol that appears twice keeps its
// first position but takes the weight of its last row.
func ReadAlphabet(r io.Reader) (*huffman.Alphabet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header", ErrMalformedInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if !slices.Equal(header, inputHeader) {
		return nil, fmt.Errorf("%w: line 1: invalid header %q, expected %q", ErrMalformedInput, header, inputHeader)
	}

	a := huffman.NewAlphabet()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}

		line, _ := cr.FieldPos(0)
		if len(row) != len(inputHeader) {
			return nil, fmt.Errorf("%w: line %d: invalid row %q, expected %d fields", ErrMalformedInput, line, row, len(inputHeader))
		}

		symbol := huffman.Symbol(row[0])
		weight, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid weight %q for symbol %q", ErrMalformedInput, line, row[1], row[0])
		}
		if err := huffman.CheckWeight(symbol, weight); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, dup := a.Weight(symbol); dup {
			log.Warningf("line %d: symbol %q repeated, replacing its weight with %d", line, row[0], weight)
		}
		a.Set(symbol, weight)
	}

	log.Debugf("read %d symbols", a.Len())
	return a, nil
}

// Row is one line of a codeword table.
type Row struct {
	Symbol   huffman.Symbol
	Weight   int64
	Codeword huffman.Codeword
}

// Rows looks up the codeword of every Symbol in a, in insertion order.
func Rows(a *huffman.Alphabet, t *huffman.Tree) ([]Row, error) {
	entries := a.Entries()
	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		cw, err := t.Codeword(entry.Symbol)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Symbol: entry.Symbol, Weight: entry.Weight, Codeword: cw})
	}
	return rows, nil
}

// Write emits a codeword table.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(outputHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			string(row.Symbol),
			strconv.FormatInt(row.Weight, 10),
			row.Codeword.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
