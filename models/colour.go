package models

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"github.com/broady/srapi"
	"github.com/broady/srapi/ir"
)

var (
	hexColour = regexp.MustCompile(`^(?:[0-9a-f]{3}){1,2}$`)
	rgbColour = regexp.MustCompile(`^(?:rgb\()?(\d{1,3}),\s*(\d{1,3}),\s*(\d{1,3})\)?$`)
)

// CheckColour normalises a colour to lower-case hex without a prefix. It
// accepts hex strings with or without "#" or "0x", "rgb(r, g, b)" or "r,g,b",
// integers, and "random" or no value for a random colour.
func CheckColour(v any, name string) (string, error) {
	if name == "" {
		name = "colour"
	}
	switch c := v.(type) {
	case nil:
		return randomColour(), nil
	case int:
		if c == 0 {
			return randomColour(), nil
		}
		return fmt.Sprintf("%06x", c), nil
	case string:
		s := strings.ToLower(strings.TrimSpace(c))
		if s == "random" {
			return randomColour(), nil
		}
		s = strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
		if hexColour.MatchString(s) {
			return s, nil
		}
		if m := rgbColour.FindStringSubmatch(s); m != nil {
			return rgbToHex(m[1:])
		}
	default:
		if v == ir.NoValue {
			return randomColour(), nil
		}
	}
	return "", srapi.Errorf(srapi.CodeInvalidValue,
		"invalid value for '%s': %v. Expected a hex value (#000000, 000000, 0x000000), "+
			"an RGB value (rgb(255, 255, 255) or 255,255,255) or 'random'", name, v).
		WithDetails(map[string]any{"field": name, "value": v})
}

func randomColour() string {
	return fmt.Sprintf("%06x", rand.IntN(0x1000000))
}

func rgbToHex(parts []string) (string, error) {
	names := [3]string{"red", "green", "blue"}
	var rgb [3]int
	var bad []string
	for i, p := range parts {
		n, _ := strconv.Atoi(p)
		rgb[i] = n
		if n > 255 {
			bad = append(bad, fmt.Sprintf("%s=%d (+%d)", names[i], n, n-255))
		}
	}
	if len(bad) > 0 {
		return "", srapi.Errorf(srapi.CodeInvalidValue,
			"RGB values out of range: %s. Expected all values to be between 0 and 255 inclusive", strings.Join(bad, ", "))
	}
	return fmt.Sprintf("%02x%02x%02x", rgb[0], rgb[1], rgb[2]), nil
}
