package api

import "github.com/broady/srapi/endpoint"

const textColorDoc = "red, orange, yellow, green, blue, indigo, purple, pink, black, or white"

const fontDoc = "Choose a custom font from our predetermined list, use a number from 1-10"

// Premium endpoints need a key of at least the noted tier. The bg and cbg
// parameters are gated on their own, higher tiers.
var (
	PremiumAmongUs = premium.New("amongus",
		endpoint.Param("avatar", endpoint.Doc(avatarDoc)),
		endpoint.Param("username", endpoint.Doc("maximum 30 characters")),
		endpoint.Param("key", endpoint.Key(), endpoint.Tier(1), endpoint.Doc("At least tier 1")),
		endpoint.Param("custom", endpoint.Optional(), endpoint.Doc("Custom text rather than ejecting the user")),
	)
	PremiumPetPet   = withAvatar(premium, "petpet")
	PremiumRankcard = premium.New("rankcard",
		endpoint.Param("username", endpoint.Doc("maximum 32 characters")),
		endpoint.Param("avatar", endpoint.Doc(avatarDoc)),
		endpoint.Param("discriminator", endpoint.Optional()),
		endpoint.Param("level"),
		endpoint.Param("cxp", endpoint.Doc("Current XP")),
		endpoint.Param("nxp", endpoint.Doc("Needed XP")),
		endpoint.Param("key", endpoint.Key(), endpoint.Tier(1)),
		endpoint.Param("bg", endpoint.Optional(), endpoint.Tier(2), endpoint.Doc("Custom background url, requires tier 2 key")),
		endpoint.Param("cbg", endpoint.Optional(), endpoint.Tier(1), endpoint.Doc("Custom background color, requires tier 1 key")),
		endpoint.Param("ctext", endpoint.Optional(), endpoint.Doc("Text color")),
		endpoint.Param("ccxp", endpoint.Optional(), endpoint.Doc("Current XP color")),
		endpoint.Param("cbar", endpoint.Optional(), endpoint.Doc("XP bar color")),
	)
	PremiumWelcome = premium.New("welcome",
		endpoint.Param("template", endpoint.Positional(0), endpoint.Doc("template number from 1-7")),
		endpoint.Param("type", endpoint.Doc("join or leave")),
		endpoint.Param("username"),
		endpoint.Param("avatar", endpoint.Doc(avatarDoc)),
		endpoint.Param("discriminator", endpoint.Optional()),
		endpoint.Param("guildName"),
		endpoint.Param("memberCount"),
		endpoint.Param("textcolor", endpoint.Doc(textColorDoc)),
		endpoint.Param("key", endpoint.Key(), endpoint.Tier(2),
			endpoint.Doc("Tier 2 for this endpoint, use the free endpoint if you do not have a tier 2 key")),
		endpoint.Param("bg", endpoint.Optional(), endpoint.Tier(2), endpoint.Doc("Custom background url, requires tier 2 key")),
		endpoint.Param("font", endpoint.Optional(), endpoint.Doc(fontDoc)),
	)
)

// Chatbot answers a message. It sits at the service root.
var Chatbot = root.New("chatbot",
	endpoint.Param("message", endpoint.Doc("Message that will be sent to the chatbot")),
	endpoint.Param("key", endpoint.Key(), endpoint.Tier(1)),
)

// WelcomeImage is the free welcome card. Its key is required but need not be
// active, so any tier is accepted.
var WelcomeImage = welcomeImages.New("",
	endpoint.Param("template", endpoint.Positional(0), endpoint.Doc("template number from 1-7")),
	endpoint.Param("background", endpoint.Positional(1)),
	endpoint.Param("type", endpoint.Doc("join or leave")),
	endpoint.Param("username"),
	endpoint.Param("avatar", endpoint.Doc(avatarDoc)),
	endpoint.Param("discriminator", endpoint.Optional()),
	endpoint.Param("guildName"),
	endpoint.Param("memberCount"),
	endpoint.Param("textcolor", endpoint.Doc(textColorDoc)),
	endpoint.Param("key", endpoint.Key(), endpoint.Doc("requires a key but does not need to be active")),
	endpoint.Param("font", endpoint.Optional(), endpoint.Doc(fontDoc)),
)

var (
	premiumOps = []*endpoint.Operation{PremiumAmongUs, PremiumPetPet, PremiumRankcard, PremiumWelcome}
	chatbotOps = []*endpoint.Operation{Chatbot}
	welcomeOps = []*endpoint.Operation{WelcomeImage}
)
