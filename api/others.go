package api

import "github.com/broady/srapi/endpoint"

// Text utilities and lookups.
var (
	OthersBase64 = others.New("base64",
		endpoint.Param("encode", endpoint.Optional(), endpoint.Doc("Text to encode into base64")),
		endpoint.Param("decode", endpoint.Optional(), endpoint.Doc("Decode base64 into text")),
	)
	OthersBinary = others.New("binary",
		endpoint.Param("encode", endpoint.Optional(), endpoint.Doc("Text to encode into binary")),
		endpoint.Param("decode", endpoint.Optional(), endpoint.Doc("Decode binary into text")),
	)
	OthersBotToken   = others.New("bottoken", endpoint.Param("id", endpoint.Doc("ID of the discord bot")))
	OthersDictionary = others.New("dictionary", endpoint.Param("word", endpoint.Doc("Word to lookup")))
	OthersJoke       = others.New("joke")
	OthersLyrics     = others.New("lyrics", endpoint.Param("title", endpoint.Doc("Title of song to search")))
)

// Pokémon data.
var (
	PokemonAbilities = pokemon.New("abilities", endpoint.Param("ability", endpoint.Doc("Ability name or id of a pokemon ability")))
	PokemonItems     = pokemon.New("items", endpoint.Param("item", endpoint.Doc("Item name or id of a pokemon item")))
	PokemonMoves     = pokemon.New("moves", endpoint.Param("move", endpoint.Doc("Pokemon move name or id of a pokemon move")))
	PokemonPokedex   = pokemon.New("pokedex", endpoint.Param("pokemon", endpoint.Doc("Pokemon name")))
)

var (
	othersOps  = []*endpoint.Operation{OthersBase64, OthersBinary, OthersBotToken, OthersDictionary, OthersJoke, OthersLyrics}
	pokemonOps = []*endpoint.Operation{PokemonAbilities, PokemonItems, PokemonMoves, PokemonPokedex}
)
