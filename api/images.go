package api

import "github.com/broady/srapi/endpoint"

// Animu.
var (
	AnimuFacePalm = animu.New("face-palm")
	AnimuHug      = animu.New("hug")
	AnimuPat      = animu.New("pat")
	AnimuQuote    = animu.New("quote")
	AnimuWink     = animu.New("wink")
)

// Facts.
var (
	FactBird  = facts.New("bird")
	FactCat   = facts.New("cat")
	FactDog   = facts.New("dog")
	FactFox   = facts.New("fox")
	FactKoala = facts.New("koala")
	FactPanda = facts.New("panda")
)

// Animal images with a fact.
var (
	AnimalBird     = animal.New("bird")
	AnimalCat      = animal.New("cat")
	AnimalDog      = animal.New("dog")
	AnimalFox      = animal.New("fox")
	AnimalKoala    = animal.New("koala")
	AnimalPanda    = animal.New("panda")
	AnimalKangaroo = animal.New("kangaroo")
	AnimalRaccoon  = animal.New("raccoon")
	AnimalRedPanda = animal.New("red_panda")
)

// Images.
var (
	ImgBird    = img.New("bird")
	ImgCat     = img.New("cat")
	ImgDog     = img.New("dog")
	ImgFox     = img.New("fox")
	ImgKoala   = img.New("koala")
	ImgPanda   = img.New("panda")
	ImgPikachu = img.New("pikachu")
	ImgWhale   = img.New("whale")
)

var (
	animuOps  = []*endpoint.Operation{AnimuFacePalm, AnimuHug, AnimuPat, AnimuQuote, AnimuWink}
	factOps   = []*endpoint.Operation{FactBird, FactCat, FactDog, FactFox, FactKoala, FactPanda}
	animalOps = []*endpoint.Operation{
		AnimalBird, AnimalCat, AnimalDog, AnimalFox, AnimalKoala, AnimalPanda,
		AnimalKangaroo, AnimalRaccoon, AnimalRedPanda,
	}
	imgOps = []*endpoint.Operation{ImgBird, ImgCat, ImgDog, ImgFox, ImgKoala, ImgPanda, ImgPikachu, ImgWhale}
)
