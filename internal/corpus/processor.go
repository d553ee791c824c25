// Package corpus keeps the aligned DA, sentence and abstraction buffers of
// a whole input and serves ranges of them, lexicalized or delexicalized.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"

	"github.com/unhappydog/tgen/internal/da"
	"github.com/unhappydog/tgen/internal/delex"
	"github.com/unhappydog/tgen/internal/i18n"
	"github.com/unhappydog/tgen/internal/log"
	"github.com/unhappydog/tgen/internal/morpho"
)

const maxLineSize = 16 * 1024 * 1024

// AlignmentError reports DA and text inputs of different lengths.
type AlignmentError struct {
	DAs   int
	Sents int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf(i18n.T("corpus_error_alignment"), e.DAs, e.Sents)
}

// Range is a half-open index range [Start, End) over the examples.
type Range struct {
	Start int
	End   int
}

// Len returns the number of examples in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// clamp limits the range to n examples, the way slicing a shorter list would.
func (r Range) clamp(n int) Range {
	r.Start = max(0, min(r.Start, n))
	r.End = max(r.Start, min(r.End, n))
	return r
}

// Processor holds the aligned buffers. Index i of DAs, sentences and
// abstraction instructions always refers to the same example.
type Processor struct {
	analyzer *morpho.Analyzer
	engine   *delex.Engine

	das   []da.DA
	sents [][]morpho.Token
	absts [][]da.Abst
}

func NewProcessor(analyzer *morpho.Analyzer, engine *delex.Engine) *Processor {
	return &Processor{analyzer: analyzer, engine: engine}
}

// Process loads DAs, then analyzes sentences, then computes abstraction
// instructions for every pair. Any error leaves the processor empty.
func (o *Processor) Process(daInput, textInput io.Reader) (err error) {
	o.das, o.sents, o.absts = nil, nil, nil

	var das []da.DA
	lineNum := 0
	err = scanLines(daInput, func(line string) error {
		lineNum++
		d, parseErr := da.Parse(line)
		if parseErr != nil {
			return errors.Wrapf(parseErr, "DA line %d", lineNum)
		}
		das = append(das, d)
		return nil
	})
	if err != nil {
		return
	}

	var sents [][]morpho.Token
	if err = scanLines(textInput, func(line string) error {
		sents = append(sents, o.analyzer.Analyze(line))
		return nil
	}); err != nil {
		return
	}

	if len(das) != len(sents) {
		return &AlignmentError{DAs: len(das), Sents: len(sents)}
	}

	absts := make([][]da.Abst, len(sents))
	for i := range sents {
		absts[i] = o.engine.Abstractions(sents[i], das[i])
	}
	o.das, o.sents, o.absts = das, sents, absts
	return nil
}

// ProcessFiles is Process over two files, checking first that both are text.
func (o *Processor) ProcessFiles(textFile, daFile string) (err error) {
	for _, path := range []string{daFile, textFile} {
		if err = checkText(path); err != nil {
			return
		}
	}

	var daIn, textIn *os.File
	if daIn, err = os.Open(daFile); err != nil {
		return
	}
	defer daIn.Close()
	if textIn, err = os.Open(textFile); err != nil {
		return
	}
	defer textIn.Close()

	if err = o.Process(daIn, textIn); err != nil {
		return errors.Wrapf(err, "process %s / %s", daFile, textFile)
	}
	return nil
}

// Len returns the number of examples loaded.
func (o *Processor) Len() int {
	return len(o.sents)
}

// DAs returns the lexicalized DAs of the range.
func (o *Processor) DAs(r Range) []da.DA {
	r = r.clamp(o.Len())
	return o.das[r.Start:r.End]
}

// Sents returns the analyzed sentences of the range.
func (o *Processor) Sents(r Range) [][]morpho.Token {
	r = r.clamp(o.Len())
	return o.sents[r.Start:r.End]
}

// Absts returns the abstraction instructions of the range.
func (o *Processor) Absts(r Range) [][]da.Abst {
	r = r.clamp(o.Len())
	return o.absts[r.Start:r.End]
}

// DelexDAs returns delexicalized copies of the DAs of the range.
func (o *Processor) DelexDAs(r Range) []da.DA {
	das := o.DAs(r)
	ret := make([]da.DA, len(das))
	for i, d := range das {
		ret[i] = o.engine.DA(d)
	}
	return ret
}

// DelexSents returns delexicalized copies of the sentences of the range.
// Coverage warnings are logged and returned; they never stop the run.
func (o *Processor) DelexSents(r Range) (ret [][]morpho.Token, warnings []delex.Warning) {
	r = r.clamp(o.Len())
	ret = make([][]morpho.Token, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		sent, sentWarnings := o.engine.Text(i, o.sents[i], o.das[i])
		for _, w := range sentWarnings {
			log.Log("%s", w.String())
		}
		ret = append(ret, sent)
		warnings = append(warnings, sentWarnings...)
	}
	return ret, warnings
}

func scanLines(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := fn(strings.TrimSpace(scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func checkText(path string) error {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return err
	}
	for m := mime; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return nil
		}
	}
	return fmt.Errorf(i18n.T("corpus_error_not_text"), path, mime.String())
}
