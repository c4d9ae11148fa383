package api

import "github.com/broady/srapi/endpoint"

// Canvas filters.
var (
	FilterBlue       = withAvatar(canvasFilter, "blue")
	FilterBlurple    = withAvatar(canvasFilter, "blurple")
	FilterBlurple2   = withAvatar(canvasFilter, "blurple2")
	FilterBrightness = canvasFilter.New("brightness",
		endpoint.Param("avatar", endpoint.Doc(avatarDoc)),
		endpoint.Param("brightness", endpoint.Optional(), endpoint.Doc("brightness value from 0-255")),
	)
	FilterColor = canvasFilter.New("color",
		endpoint.Param("avatar", endpoint.Doc(avatarDoc)),
		endpoint.Param("color", endpoint.Doc("hex color code without the # ie. white is ffffff")),
	)
	FilterGreen           = withAvatar(canvasFilter, "green")
	FilterGreyscale       = withAvatar(canvasFilter, "greyscale")
	FilterInvert          = withAvatar(canvasFilter, "invert")
	FilterInvertGreyscale = withAvatar(canvasFilter, "invertgreyscale")
	FilterRed             = withAvatar(canvasFilter, "red")
	FilterSepia           = withAvatar(canvasFilter, "sepia")
	FilterThreshold       = canvasFilter.New("threshold",
		endpoint.Param("avatar", endpoint.Doc(avatarDoc)),
		endpoint.Param("threshold", endpoint.Optional(), endpoint.Doc("threshold value from 1-255")),
	)
)

// Canvas miscellany: borders, crops and generated cards.
var (
	MiscBisexualBorder = withAvatar(canvasMisc, "bisexual")
	MiscBlur           = withAvatar(canvasMisc, "blur")
	MiscCircleCrop     = withAvatar(canvasMisc, "circle")
	MiscColorViewer    = canvasMisc.New("colorviewer", endpoint.Param("hex", endpoint.Doc("hex value without the #")))
	MiscHeartCrop      = withAvatar(canvasMisc, "heart")
	MiscHex            = canvasMisc.New("hex", endpoint.Param("rgb", endpoint.Doc("rgb value splitted by ,")))
	MiscHorny          = withAvatar(canvasMisc, "horny")
	MiscItsSoStupid    = withAvatar(canvasMisc, "its-so-stupid")
	MiscJPG            = withAvatar(canvasMisc, "jpg")
	MiscLesbianBorder  = withAvatar(canvasMisc, "lesbian")
	MiscLGBTBorder     = withAvatar(canvasMisc, "lgbt")
	MiscLied           = canvasMisc.New("lied",
		endpoint.Param("avatar", endpoint.Doc(avatarDoc)),
		endpoint.Param("username", endpoint.Doc("must be less than 20 characters")),
	)
	MiscLolice          = withAvatar(canvasMisc, "lolice")
	MiscGenshinNamecard = canvasMisc.New("namecard",
		endpoint.Param("avatar", endpoint.Doc(avatarDoc)),
		endpoint.Param("birthday", endpoint.Doc("dd/mm/yyyy")),
		endpoint.Param("username", endpoint.Doc("A username")),
		endpoint.Param("description", endpoint.Optional()),
	)
	MiscNoBitches       = canvasMisc.New("nobitches", endpoint.Param("no", endpoint.Doc("no bitches?")))
	MiscNonbinaryBorder = withAvatar(canvasMisc, "nonbinary")
	MiscOogway          = canvasMisc.New("oogway", endpoint.Param("quote"))
	MiscOogway2         = canvasMisc.New("oogway2", endpoint.Param("quote"))
	MiscPansexualBorder = withAvatar(canvasMisc, "pansexual")
	MiscPixelate        = withAvatar(canvasMisc, "pixelate")
	MiscRGB             = canvasMisc.New("rgb", endpoint.Param("hex", endpoint.Doc("hex value without the #")))
	MiscSimpcard        = withAvatar(canvasMisc, "simpcard")
	MiscSpin            = withAvatar(canvasMisc, "spin")
	MiscTonikawa        = withAvatar(canvasMisc, "tonikawa")
	MiscTransBorder     = withAvatar(canvasMisc, "transgender")
	MiscTweet           = canvasMisc.New("tweet",
		endpoint.Param("displayname", endpoint.Doc("Max 32 chars")),
		endpoint.Param("username", endpoint.Doc("max 15 characters")),
		endpoint.Param("avatar", endpoint.Doc(avatarDoc)),
		endpoint.Param("comment", endpoint.Doc("max 1000 characters")),
		endpoint.Param("replies", endpoint.Optional(), endpoint.Doc("number of replies")),
		endpoint.Param("likes", endpoint.Optional(), endpoint.Doc("number of likes")),
		endpoint.Param("retweets", endpoint.Optional(), endpoint.Doc("number of retweets")),
		endpoint.Param("theme", endpoint.Optional(), endpoint.Doc("light, dim or dark")),
	)
	MiscYoutubeComment = canvasMisc.New("youtube-comment",
		endpoint.Param("username", endpoint.Doc("max 25 characters")),
		endpoint.Param("avatar", endpoint.Doc(avatarDoc)),
		endpoint.Param("comment", endpoint.Doc("max 1000 characters")),
	)
)

// Canvas overlays.
var (
	OverlayComrade   = withAvatar(canvasOverlay, "comrade")
	OverlayGay       = withAvatar(canvasOverlay, "gay")
	OverlayGlass     = withAvatar(canvasOverlay, "glass")
	OverlayJail      = withAvatar(canvasOverlay, "jail")
	OverlayPassed    = withAvatar(canvasOverlay, "passed")
	OverlayTriggered = withAvatar(canvasOverlay, "triggered")
	OverlayWasted    = withAvatar(canvasOverlay, "wasted")
)

var (
	filterOps = []*endpoint.Operation{
		FilterBlue, FilterBlurple, FilterBlurple2, FilterBrightness, FilterColor, FilterGreen,
		FilterGreyscale, FilterInvert, FilterInvertGreyscale, FilterRed, FilterSepia, FilterThreshold,
	}
	miscOps = []*endpoint.Operation{
		MiscBisexualBorder, MiscBlur, MiscCircleCrop, MiscColorViewer, MiscHeartCrop, MiscHex,
		MiscHorny, MiscItsSoStupid, MiscJPG, MiscLesbianBorder, MiscLGBTBorder, MiscLied, MiscLolice,
		MiscGenshinNamecard, MiscNoBitches, MiscNonbinaryBorder, MiscOogway, MiscOogway2,
		MiscPansexualBorder, MiscPixelate, MiscRGB, MiscSimpcard, MiscSpin, MiscTonikawa,
		MiscTransBorder, MiscTweet, MiscYoutubeComment,
	}
	overlayOps = []*endpoint.Operation{
		OverlayComrade, OverlayGay, OverlayGlass, OverlayJail, OverlayPassed, OverlayTriggered, OverlayWasted,
	}
)
