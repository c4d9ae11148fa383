package models

import (
	"fmt"
	"time"

	"github.com/broady/srapi/api"
	"github.com/broady/srapi/ir"
	"github.com/broady/srapi/model"
)

// Tweet is a generated tweet image.
var Tweet = model.Define("Tweet").
	Attr("display_name", ir.String(), model.WireName("displayname"), model.MaxLen(32)).
	Attr("username", ir.String(), model.MaxLen(15)).
	Attr("avatar_url", ir.String(), model.WireName("avatar"), model.Metadata("doc", "Must be .png or .jpg.")).
	Attr("text", ir.String(), model.WireName("comment"), model.MaxLen(1000)).
	Attr("replies", ir.Optional(ir.Int(0)), model.Default(nil), model.Coerce(optionalInt)).
	Attr("likes", ir.Optional(ir.Int(0)), model.Default(nil), model.Coerce(optionalInt)).
	Attr("retweets", ir.Optional(ir.Int(0)), model.Default(nil), model.Coerce(optionalInt)).
	Attr("theme", ir.Optional(TweetThemes), model.Default(TweetThemeLight), model.Coerce(member(TweetThemes))).
	Operation(api.MiscTweet).
	MustBuild()

// YoutubeComment is a generated YouTube comment image.
var YoutubeComment = model.Define("YoutubeComment").
	Attr("username", ir.String(), model.MaxLen(25)).
	Attr("avatar_url", ir.String(), model.WireName("avatar")).
	Attr("text", ir.String(), model.WireName("comment"), model.MaxLen(1000)).
	Rule(`len(trim(text)) > 0`, "text cannot be blank").
	Operation(api.MiscYoutubeComment).
	MustBuild()

// GenshinNamecard is a Genshin Impact style name card. The birthday is written
// dd/mm/yyyy.
var GenshinNamecard = model.Define("GenshinNamecard").
	Attr("avatar_url", ir.String(), model.WireName("avatar")).
	Attr("birthday", ir.String()).
	Attr("username", ir.String()).
	Attr("description", ir.Optional(ir.String()), model.Default(nil)).
	PostInit(checkBirthday).
	Operation(api.MiscGenshinNamecard).
	MustBuild()

func checkBirthday(r *model.Record) error {
	s, _ := r.Get("birthday").(string)
	if _, err := time.Parse("02/01/2006", s); err != nil {
		return fmt.Errorf("birthday %q must be written dd/mm/yyyy", s)
	}
	return nil
}

// optionalInt parses counts given as strings.
func optionalInt(v any) (any, error) {
	if _, ok := v.(string); ok {
		return model.ToInt(v)
	}
	return v, nil
}
