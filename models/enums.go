// Package models declares the records of the Some Random API: request cards
// such as Tweet and Rankcard, bound to their operations in package api, and
// response records such as Lyrics.
//
//	t, err := models.Tweet.New(model.Values{
//		"display_name": "Ana",
//		"username":     "ana",
//		"avatar_url":   "https://example.com/ana.png",
//		"text":         "hello",
//		"theme":        "dim",
//	})
//	b, err := t.Bind()
package models

import (
	"strings"

	"github.com/broady/srapi/ir"
)

// TweetTheme is the colour scheme of a generated tweet.
type TweetTheme string

const (
	TweetThemeLight TweetTheme = "light"
	TweetThemeDim   TweetTheme = "dim"
	TweetThemeDark  TweetTheme = "dark"
)

func (t TweetTheme) Primitive() any { return string(t) }

// WelcomeType selects a join or leave card.
type WelcomeType string

const (
	WelcomeJoin  WelcomeType = "join"
	WelcomeLeave WelcomeType = "leave"
)

func (t WelcomeType) Primitive() any { return string(t) }

// WelcomeBackground is one of the built-in welcome card backgrounds.
type WelcomeBackground string

const (
	BackgroundBlobDay         WelcomeBackground = "blobday"
	BackgroundBlobNight       WelcomeBackground = "blobnight"
	BackgroundGaming1         WelcomeBackground = "gaming1"
	BackgroundGaming2         WelcomeBackground = "gaming2"
	BackgroundGaming3         WelcomeBackground = "gaming3"
	BackgroundGaming4         WelcomeBackground = "gaming4"
	BackgroundNight           WelcomeBackground = "night"
	BackgroundRainbow         WelcomeBackground = "rainbow"
	BackgroundRainbowGradient WelcomeBackground = "rainbowgradient"
	BackgroundSpace           WelcomeBackground = "space"
	BackgroundStars           WelcomeBackground = "stars"
	BackgroundStars2          WelcomeBackground = "stars2"
	BackgroundSunset          WelcomeBackground = "sunset"
)

func (b WelcomeBackground) Primitive() any { return string(b) }

// WelcomeTextColor is the text colour of a welcome card.
type WelcomeTextColor string

const (
	TextRed    WelcomeTextColor = "red"
	TextOrange WelcomeTextColor = "orange"
	TextYellow WelcomeTextColor = "yellow"
	TextGreen  WelcomeTextColor = "green"
	TextBlue   WelcomeTextColor = "blue"
	TextIndigo WelcomeTextColor = "indigo"
	TextPurple WelcomeTextColor = "purple"
	TextPink   WelcomeTextColor = "pink"
	TextBlack  WelcomeTextColor = "black"
	TextWhite  WelcomeTextColor = "white"
)

func (c WelcomeTextColor) Primitive() any { return string(c) }

// Enum descriptors, registered in ir.Default under their type names.
var (
	TweetThemes = ir.EnumOf(TweetThemeLight, TweetThemeDim, TweetThemeDark)

	WelcomeTypes = ir.EnumOf(WelcomeJoin, WelcomeLeave)

	WelcomeBackgrounds = ir.EnumOf(
		BackgroundBlobDay, BackgroundBlobNight,
		BackgroundGaming1, BackgroundGaming2, BackgroundGaming3, BackgroundGaming4,
		BackgroundNight, BackgroundRainbow, BackgroundRainbowGradient,
		BackgroundSpace, BackgroundStars, BackgroundStars2, BackgroundSunset,
	)

	WelcomeTextColors = ir.EnumOf(
		TextRed, TextOrange, TextYellow, TextGreen, TextBlue,
		TextIndigo, TextPurple, TextPink, TextBlack, TextWhite,
	)
)

func init() {
	for _, d := range []*ir.EnumDescriptor{TweetThemes, WelcomeTypes, WelcomeBackgrounds, WelcomeTextColors} {
		ir.Default.MustRegister(d.Name, d)
	}
}

// member coerces strings to enum members, ignoring case, spaces and
// underscores, so "Rainbow_Gradient" reads as BackgroundRainbowGradient.
// Values that match no member are returned unchanged for the type check to
// reject with the list of members.
func member(d *ir.EnumDescriptor) func(any) (any, error) {
	return func(v any) (any, error) {
		if s, ok := v.(string); ok {
			v = strings.NewReplacer("_", "", " ", "").Replace(strings.ToLower(s))
		}
		if m, ok := d.Lookup(v); ok {
			return m, nil
		}
		return v, nil
	}
}
