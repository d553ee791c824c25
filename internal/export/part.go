package export

import (
	"io"
	"os"

	"github.com/unhappydog/tgen/internal/corpus"
	"github.com/unhappydog/tgen/internal/da"
	"github.com/unhappydog/tgen/internal/delex"
	"github.com/unhappydog/tgen/internal/morpho"
)

// Source serves the buffers of a part. *corpus.Processor implements it.
type Source interface {
	DAs(r corpus.Range) []da.DA
	DelexDAs(r corpus.Range) []da.DA
	Sents(r corpus.Range) [][]morpho.Token
	DelexSents(r corpus.Range) ([][]morpho.Token, []delex.Warning)
	Absts(r corpus.Range) [][]da.Abst
}

// Output file name suffixes of a part; "_l" marks lexicalized variants.
const (
	AbstSuffix     = "-abst.txt"
	DAsLexSuffix   = "-das_l.txt"
	DAsSuffix      = "-das.txt"
	TextLexSuffix  = "-text_l.txt"
	TextSuffix     = "-text.txt"
	TLsLexSuffix   = "-tls_l.txt"
	TLsSuffix      = "-tls.txt"
	ConllLexSuffix = "-text_l.conll"
	ConllSuffix    = "-text.conll"
)

// Part is the materialized content of one output part.
type Part struct {
	DAs        []da.DA
	DelexDAs   []da.DA
	Sents      [][]morpho.Token
	DelexSents [][]morpho.Token
	Absts      [][]da.Abst
	Warnings   []delex.Warning
}

// Collect reads every buffer of the examples in r once.
func Collect(src Source, r corpus.Range) *Part {
	ret := &Part{
		DAs:      src.DAs(r),
		DelexDAs: src.DelexDAs(r),
		Sents:    src.Sents(r),
		Absts:    src.Absts(r),
	}
	ret.DelexSents, ret.Warnings = src.DelexSents(r)
	return ret
}

// Len returns the number of examples in the part.
func (o *Part) Len() int {
	return len(o.Sents)
}

// Write writes all output files of the part under prefix.
func (o *Part) Write(prefix string) (err error) {
	jobs := []struct {
		suffix string
		write  func(io.Writer) error
	}{
		{AbstSuffix, func(w io.Writer) error { return WriteAbsts(w, o.Absts) }},
		{DAsLexSuffix, func(w io.Writer) error { return WriteDAs(w, o.DAs) }},
		{DAsSuffix, func(w io.Writer) error { return WriteDAs(w, o.DelexDAs) }},
		{TextLexSuffix, func(w io.Writer) error { return WriteText(w, Plain, o.Sents) }},
		{TextSuffix, func(w io.Writer) error { return WriteText(w, Plain, o.DelexSents) }},
		{TLsLexSuffix, func(w io.Writer) error { return WriteText(w, Interleaved, o.Sents) }},
		{TLsSuffix, func(w io.Writer) error { return WriteText(w, Interleaved, o.DelexSents) }},
		{ConllLexSuffix, func(w io.Writer) error { return WriteText(w, Conll, o.Sents) }},
		{ConllSuffix, func(w io.Writer) error { return WriteText(w, Conll, o.DelexSents) }},
	}
	for _, job := range jobs {
		if err = writeFile(prefix+job.suffix, job.write); err != nil {
			return
		}
	}
	return
}

// WritePart writes all output files of the examples in r under prefix and
// returns the coverage warnings of the delexicalized texts.
func WritePart(src Source, prefix string, r corpus.Range) ([]delex.Warning, error) {
	part := Collect(src, r)
	return part.Warnings, part.Write(prefix)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	var f *os.File
	if f, err = os.Create(path); err != nil {
		return
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return write(f)
}
