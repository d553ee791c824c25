// Package core ties the pipeline together: it loads the tagger and the
// surface-form dictionary, processes the aligned inputs and writes every
// output part.
package core

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/unhappydog/tgen/internal/corpus"
	"github.com/unhappydog/tgen/internal/delex"
	"github.com/unhappydog/tgen/internal/export"
	"github.com/unhappydog/tgen/internal/i18n"
	"github.com/unhappydog/tgen/internal/log"
	"github.com/unhappydog/tgen/internal/morpho"
	"github.com/unhappydog/tgen/internal/plugins/db/sqlitedb"
	"github.com/unhappydog/tgen/internal/plugins/tagger/lexicon"
	"github.com/unhappydog/tgen/internal/surface"
	"github.com/unhappydog/tgen/internal/util"
)

var nameSep = regexp.MustCompile(`[, ]+`)

// Job describes one conversion: the aligned inputs and where the parts go.
type Job struct {
	InputDA   string
	InputText string
	// OutPrefix is a single prefix, or comma/space separated prefixes when
	// Split is set.
	OutPrefix string
	// Split holds colon-separated part weights, e.g. "3:1:1". Empty means
	// one part with all examples.
	Split string
}

// PartResult summarizes one written part.
type PartResult struct {
	Prefix   string
	Range    corpus.Range
	Warnings []delex.Warning
}

// Result summarizes a run.
type Result struct {
	Total int
	Parts []PartResult
	RunID string
}

// Converter holds the loaded resources of a run.
type Converter struct {
	tagger    morpho.Tagger
	dict      *surface.Dictionary
	abstSlots []string
	db        *sqlitedb.Client
}

// NewConverter builds a converter over already loaded resources. db may be nil.
func NewConverter(tagger morpho.Tagger, dict *surface.Dictionary, abstSlots []string, db *sqlitedb.Client) *Converter {
	return &Converter{tagger: tagger, dict: dict, abstSlots: abstSlots, db: db}
}

// LoadConverter loads the tagger model and the surface-form dictionary from
// files. An empty surfaceForms path means no dictionary.
func LoadConverter(taggerModel, surfaceForms string, abstSlots []string, db *sqlitedb.Client) (ret *Converter, err error) {
	log.Log("%s", i18n.T("convert_loading"))

	var tagger *lexicon.Tagger
	if tagger, err = lexicon.LoadFile(taggerModel); err != nil {
		return
	}
	var dict *surface.Dictionary
	if surfaceForms != "" {
		if dict, err = surface.LoadFile(surfaceForms); err != nil {
			return
		}
		log.Debug(log.Basic, "surface forms: %d phrases, longest %d tokens\n", dict.Len(), dict.MaxLen())
	}
	ret = NewConverter(tagger, dict, abstSlots, db)
	return
}

// SplitNames splits the output prefix list given together with --split.
func SplitNames(outPrefix string) []string {
	return lo.Compact(nameSep.Split(strings.TrimSpace(outPrefix), -1))
}

// Run processes the inputs of job and writes all parts.
func (o *Converter) Run(ctx context.Context, job Job) (ret *Result, err error) {
	var names []string
	var weights []int
	if job.Split != "" {
		if weights, err = corpus.ParseWeights(job.Split); err != nil {
			return
		}
		names = SplitNames(job.OutPrefix)
		if len(names) != len(weights) {
			err = fmt.Errorf(i18n.T("split_error_names"), len(names), len(weights))
			return
		}
	} else {
		names = []string{job.OutPrefix}
		weights = []int{1}
	}

	log.Log("%s", i18n.T("convert_processing"))
	proc := corpus.NewProcessor(morpho.NewAnalyzer(o.tagger, o.dict), delex.NewEngine(o.abstSlots))
	if err = proc.ProcessFiles(job.InputText, job.InputDA); err != nil {
		return
	}
	log.Log(i18n.T("convert_loaded"), proc.Len())

	ret = &Result{Total: proc.Len()}
	if o.db != nil {
		run := &sqlitedb.Run{AbstSlots: strings.Join(o.abstSlots, ","), Examples: proc.Len()}
		if run.DAHash, err = util.FileHash(job.InputDA); err != nil {
			return
		}
		if run.TextHash, err = util.FileHash(job.InputText); err != nil {
			return
		}
		if err = o.db.Runs.Start(ctx, run); err != nil {
			return
		}
		ret.RunID = run.ID.String()
		log.Debug(log.Basic, "database run %s\n", ret.RunID)
	}

	for i, r := range corpus.Partitions(corpus.SplitSizes(proc.Len(), weights)) {
		log.Log(i18n.T("convert_writing"), names[i], r.Len())
		part := export.Collect(proc, r)
		if err = part.Write(names[i]); err != nil {
			return
		}
		if o.db != nil {
			if err = o.db.Examples.InsertAll(ctx, examples(ret.RunID, names[i], r, part)); err != nil {
				return
			}
		}
		ret.Parts = append(ret.Parts, PartResult{Prefix: names[i], Range: r, Warnings: part.Warnings})
	}
	return
}
