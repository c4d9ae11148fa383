// Package api declares the Some Random API operations.
//
// Operations are grouped by path prefix the way the service documents them,
// and are safe to bind concurrently:
//
//	b, err := api.MiscTweet.Bind(endpoint.Values{
//		"displayname": "Ana",
//		"username":    "ana",
//		"avatar":      "https://example.com/ana.png",
//		"comment":     "hello",
//	})
//	b.URL() // canvas/misc/tweet?displayname=Ana&username=ana&...
package api

import (
	"log/slog"

	"github.com/broady/srapi/endpoint"
)

// BaseURL is the service root request targets are resolved against.
const BaseURL = "https://some-random-api.com/"

// Groups, by path prefix.
var (
	animu         = endpoint.Group{Base: "animu/"}
	canvasFilter  = endpoint.Group{Base: "canvas/filter/"}
	canvasMisc    = endpoint.Group{Base: "canvas/misc/"}
	canvasOverlay = endpoint.Group{Base: "canvas/overlay/"}
	facts         = endpoint.Group{Base: "facts/"}
	animal        = endpoint.Group{Base: "animal/"}
	img           = endpoint.Group{Base: "img/"}
	others        = endpoint.Group{Base: "others/"}
	pokemon       = endpoint.Group{Base: "pokemon/"}
	premium       = endpoint.Group{Base: "premium/"}
	root          = endpoint.Group{}
	welcomeImages = endpoint.Group{Base: "welcome/img/"}
)

const avatarDoc = "use png or jpg"

// withAvatar declares the common shape of image endpoints: one avatar URL.
func withAvatar(g endpoint.Group, path string) *endpoint.Operation {
	return g.New(path, endpoint.Param("avatar", endpoint.Doc(avatarDoc)))
}

// All returns every declared operation, grouped as declared.
func All() []*endpoint.Operation {
	var ops []*endpoint.Operation
	for _, group := range [][]*endpoint.Operation{
		animuOps, filterOps, miscOps, overlayOps,
		factOps, animalOps, imgOps,
		othersOps, pokemonOps,
		premiumOps, chatbotOps, welcomeOps,
	} {
		ops = append(ops, group...)
	}
	return ops
}

// Catalog returns a new catalog holding every declared operation.
func Catalog(logger *slog.Logger) *endpoint.Catalog {
	c := endpoint.NewCatalog()
	if logger != nil {
		c.WithLogger(logger)
	}
	return c.Register(All()...)
}
