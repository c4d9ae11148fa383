// Package srapi holds the error envelope shared by the srapi packages.
//
// The module turns the Some Random API into typed values. Package ir describes value
// shapes and checks values against them, package model builds validated records from
// attribute declarations, and package endpoint declares operations and builds request
// targets from bound parameters:
//
//	rec, err := models.Tweet.New(model.Values{"display_name": "Ana", ...})
//	bound, err := rec.Bind(endpoint.WithCredential(endpoint.Credential{Tier: 1, Value: key}))
//	target := bound.URL() // canvas/misc/tweet?displayname=Ana&...
//
// Every failure is an *Error whose Code tells configuration mistakes (fix the code)
// apart from validation and binding failures (fix the input and retry).
package srapi
