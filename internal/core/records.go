package core

import (
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/unhappydog/tgen/internal/corpus"
	"github.com/unhappydog/tgen/internal/da"
	"github.com/unhappydog/tgen/internal/export"
	"github.com/unhappydog/tgen/internal/morpho"
	"github.com/unhappydog/tgen/internal/plugins/db/sqlitedb"
)

// examples turns a collected part into database rows. Indexes are global
// example indexes, not offsets within the part.
func examples(runID string, name string, r corpus.Range, part *export.Part) []sqlitedb.Example {
	id := uuid.MustParse(runID)
	return lo.Times(part.Len(), func(i int) sqlitedb.Example {
		return sqlitedb.Example{
			RunID:     id,
			Part:      name,
			Index:     r.Start + i,
			DA:        part.DAs[i].String(),
			DelexDA:   part.DelexDAs[i].String(),
			Text:      joinForms(part.Sents[i]),
			DelexText: joinForms(part.DelexSents[i]),
			Absts:     da.FormatAbsts(part.Absts[i]),
		}
	})
}

func joinForms(sent []morpho.Token) string {
	return strings.Join(morpho.Forms(sent), " ")
}
