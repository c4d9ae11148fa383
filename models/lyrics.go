package models

import (
	"github.com/broady/srapi/ir"
	"github.com/broady/srapi/model"
)

// Lyrics is the response of api.OthersLyrics. Responses are taken as sent, so
// the record is frozen and its types are not checked.
var Lyrics = model.Define("Lyrics").
	Attr("title", ir.String()).
	Attr("artist", ir.String()).
	Attr("lyrics", ir.String(), model.NoRepr()).
	Attr("url", ir.Optional(ir.String()), model.Default(nil)).
	Attr("thumbnail", ir.Optional(ir.String()), model.Default(nil)).
	Frozen().
	SkipTypeCheck().
	MustBuild()
