package models

import (
	"github.com/broady/srapi"
	"github.com/broady/srapi/api"
	"github.com/broady/srapi/endpoint"
	"github.com/broady/srapi/ir"
	"github.com/broady/srapi/model"
)

// colourAttrs are the Rankcard attributes normalised by CheckColour.
var colourAttrs = []struct{ name, label string }{
	{"background_color", "background"},
	{"text_color", "text"},
	{"current_xp_color", "current xp"},
	{"xp_bar_color", "xp bar"},
}

// Rankcard is a level card. It needs a tier 1 key; a custom background image
// needs tier 2 and cannot be combined with a background colour. Colours accept
// any form CheckColour does and are stored as hex.
var Rankcard = model.Define("Rankcard").
	Attr("username", ir.String(), model.MaxLen(32)).
	Attr("avatar_url", ir.String(), model.WireName("avatar")).
	Attr("level", ir.Int(0), model.Coerce(model.ToInt)).
	Attr("current_xp", ir.Int(0), model.WireName("cxp"), model.Coerce(model.ToInt)).
	Attr("needed_xp", ir.Int(0), model.WireName("nxp"), model.Coerce(model.ToInt)).
	Attr("discriminator", ir.Optional(ir.Int(0)), model.Default(nil), model.Range(0, 9999)).
	Attr("key", ir.Optional(ir.String()), model.Default(nil), model.NoRepr()).
	Attr("background_url", ir.Optional(ir.String()), model.WireName("bg"), model.Default(nil)).
	Attr("background_color", ir.Optional(ir.String()), model.WireName("cbg"), model.Default(nil)).
	Attr("text_color", ir.Optional(ir.String()), model.WireName("ctext"), model.Default(nil)).
	Attr("current_xp_color", ir.Optional(ir.String()), model.WireName("ccxp"), model.Default(nil)).
	Attr("xp_bar_color", ir.Optional(ir.String()), model.WireName("cbar"), model.Default(nil)).
	PostInit(normaliseRankcard).
	Rule(`background_url == nil || background_color == nil`, "background_url cannot be used with background_color").
	Operation(api.PremiumRankcard).
	MustBuild()

func normaliseRankcard(r *model.Record) error {
	for _, c := range colourAttrs {
		v := r.Get(c.name)
		if v == nil {
			continue
		}
		hex, err := CheckColour(v, c.name)
		if err != nil {
			return srapi.Errorf(srapi.CodeInvalidValue, "invalid %s color: %s", c.label, err.(*srapi.Error).Message).
				WithDetails(map[string]any{"record": "Rankcard", "field": c.name})
		}
		if err := r.SetInternal(c.name, hex); err != nil {
			return err
		}
	}
	// A zero discriminator is not shown.
	if d, ok := r.Get("discriminator").(int); ok && d == 0 {
		return r.SetInternal("discriminator", nil)
	}
	return nil
}

// WelcomeFree is the free welcome card. Its key need not be active.
var WelcomeFree = welcome("WelcomeFree", api.WelcomeImage).
	Attr("background", WelcomeBackgrounds, model.Coerce(member(WelcomeBackgrounds))).
	MustBuild()

// WelcomePremium is the premium welcome card. It needs a tier 2 key, as does
// a custom background image.
var WelcomePremium = welcome("WelcomePremium", api.PremiumWelcome).
	Attr("background_url", ir.Optional(ir.String()), model.WireName("bg"), model.Default(nil), model.NoRepr()).
	MustBuild()

func welcome(name string, op *endpoint.Operation) *model.Builder {
	return model.Define(name).
		Attr("template", ir.Int(0), model.Range(1, 7), model.Coerce(model.ToInt)).
		Attr("type", WelcomeTypes, model.Coerce(member(WelcomeTypes))).
		Attr("username", ir.String()).
		Attr("avatar_url", ir.String(), model.WireName("avatar")).
		Attr("discriminator", ir.Optional(ir.Int(0)), model.Default(nil), model.Range(0, 9999)).
		Attr("server_name", ir.String(), model.WireName("guildName")).
		Attr("member_count", ir.Int(0), model.WireName("memberCount"), model.Coerce(model.ToInt)).
		Attr("text_color", WelcomeTextColors, model.WireName("textcolor"), model.Coerce(member(WelcomeTextColors))).
		Attr("key", ir.Optional(ir.String()), model.Default(nil), model.NoRepr()).
		Attr("font", ir.Optional(ir.Int(0)), model.Default(nil), model.Range(1, 10)).
		Operation(op)
}
