// Package export renders corpus buffers into the output files of a part.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/unhappydog/tgen/internal/da"
	"github.com/unhappydog/tgen/internal/morpho"
)

// Format selects how sentences are rendered.
type Format int

const (
	// Plain writes space-joined surface forms, one sentence per line.
	Plain Format = iota
	// Interleaved writes "lemma tag" pairs, one sentence per line.
	Interleaved
	// Conll writes one token per line in CoNLL-U columns.
	Conll
)

func (f Format) String() string {
	switch f {
	case Interleaved:
		return "interleaved"
	case Conll:
		return "conll"
	default:
		return "plain"
	}
}

// ParseFormat maps a format name to its Format; unknown names are plain.
func ParseFormat(name string) Format {
	switch strings.ToLower(name) {
	case "interleaved":
		return Interleaved
	case "conll":
		return Conll
	default:
		return Plain
	}
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteText renders sentences in the given format.
func WriteText(w io.Writer, format Format, sents [][]morpho.Token) error {
	switch format {
	case Interleaved:
		return WriteLines(w, lo.Map(sents, func(sent []morpho.Token, _ int) string {
			return interleaved(sent)
		}))
	case Conll:
		return writeConll(w, sents)
	default:
		return WriteLines(w, lo.Map(sents, func(sent []morpho.Token, _ int) string {
			return strings.Join(morpho.Forms(sent), " ")
		}))
	}
}

// WriteDAs writes one DA per line.
func WriteDAs(w io.Writer, das []da.DA) error {
	return WriteLines(w, lo.Map(das, func(d da.DA, _ int) string {
		return d.String()
	}))
}

// WriteAbsts writes the tab-separated instructions of each example per line.
func WriteAbsts(w io.Writer, absts [][]da.Abst) error {
	return WriteLines(w, lo.Map(absts, func(a []da.Abst, _ int) string {
		return da.FormatAbsts(a)
	}))
}

func interleaved(sent []morpho.Token) string {
	parts := make([]string, 0, 2*len(sent))
	for _, tok := range sent {
		parts = append(parts, underscore(tok.Lemma), tok.Tag)
	}
	return strings.Join(parts, " ")
}

func writeConll(w io.Writer, sents [][]morpho.Token) error {
	bw := bufio.NewWriter(w)
	for _, sent := range sents {
		for i, tok := range sent {
			row := []string{
				strconv.Itoa(i + 1),
				underscore(tok.Form),
				underscore(tok.Lemma),
				"_", tok.Tag, "_", "0", "_", "_", "_",
			}
			if _, err := fmt.Fprintln(bw, strings.Join(row, "\t")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func underscore(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}
