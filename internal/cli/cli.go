// Package cli wires the command line of tgen-convert to the converter.
package cli

import (
	"context"

	"github.com/unhappydog/tgen/internal/core"
	"github.com/unhappydog/tgen/internal/i18n"
	"github.com/unhappydog/tgen/internal/log"
	"github.com/unhappydog/tgen/internal/plugins/db/sqlitedb"
)

// Cli runs a conversion for the given command line arguments.
func Cli(ctx context.Context, args []string) (err error) {
	var currentFlags *Flags
	if currentFlags, err = Init(args); err != nil {
		return
	}

	log.SetLevel(log.LevelFromInt(currentFlags.Debug))
	if _, err = i18n.Init(currentFlags.Locale); err != nil {
		return
	}

	var db *sqlitedb.Client
	if currentFlags.Db != "" {
		if db, err = sqlitedb.Open(ctx, currentFlags.Db); err != nil {
			return
		}
		defer db.Close()
	}

	var conv *core.Converter
	if conv, err = core.LoadConverter(currentFlags.TaggerModel, currentFlags.SurfaceForms,
		currentFlags.AbstSlotList(), db); err != nil {
		return
	}

	var res *core.Result
	if res, err = conv.Run(ctx, currentFlags.Job()); err != nil {
		return
	}
	if res.RunID != "" {
		log.Log(i18n.T("convert_stored"), res.RunID, currentFlags.Db)
	}
	return
}
