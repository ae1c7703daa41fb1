package styling

import "strings"

// ColorsBySize returns the color guidance for a size category; unknown sizes yield an empty bundle.
func ColorsBySize(size SizeCategory) Bundle {
	switch size {
	case SizeLarge:
		return Bundle{{Label: "Large Body Size", Text: "Dark colors (black, navy, deep greens) create a slimming silhouette."}}
	case SizeSmall:
		return Bundle{{Label: "Small Body Size", Text: "Light, bright colors (whites, pastels, vibrant hues) add presence."}}
	case SizeMedium:
		return Bundle{{Label: "Medium Body Size", Text: "Balanced tones maintain natural proportions."}}
	default:
		return Bundle{}
	}
}

// PaletteByUndertone returns the palette for an undertone; Unset yields an empty bundle.
func PaletteByUndertone(undertone Undertone) Bundle {
	switch undertone {
	case UndertoneWarm:
		return Bundle{{Label: "Warm Undertones", Text: "Coral, peach, golden yellow, olive green."}}
	case UndertoneCool:
		return Bundle{{Label: "Cool Undertones", Text: "Emerald green, ruby red, sapphire blue."}}
	case UndertoneNeutral:
		return Bundle{{Label: "Neutral Undertones", Text: "Dusty pink, jade, taupe, creamy neutrals."}}
	default:
		return Bundle{}
	}
}

// PrintTips always ends with the Universal tip.
func PrintTips(shape BodyShape) Bundle {
	out := Bundle{}
	switch shape {
	case ShapePear:
		out = append(out, Tip{Label: "Pear Shape", Text: "Bold prints on top; solids or small/vertical prints below."})
	case ShapeHourglass:
		out = append(out, Tip{Label: "Hourglass Shape", Text: "Waist-accentuating prints; avoid boxy cuts."})
	case ShapeRectangle:
		out = append(out, Tip{Label: "Rectangle Shape", Text: "Add curves with prints or ruffles at bust and hips."})
	case ShapeInvertedTriangle:
		out = append(out, Tip{Label: "Inverted Triangle", Text: "Keep the upper body simple; put prints on the lower body."})
	}
	return append(out, Tip{Label: "Universal", Text: "Monochromatic prints are slimming and versatile."})
}

var weatherKeywords = []struct {
	keyword string
	tip     Tip
}{
	{"rain", Tip{Label: "Rain Gear", Text: "Waterproof jacket and water-resistant footwear."}},
	{"snow", Tip{Label: "Snow Protection", Text: "Insulated waterproof boots; cover extremities."}},
	{"wind", Tip{Label: "Wind Protection", Text: "Windproof outer layer; secure hats and scarves."}},
	{"sun", Tip{Label: "Sun Care", Text: "Hat, sunglasses, sunscreen."}},
}

// WeatherTips picks a base tip from the temperature band and appends one tip per matched condition keyword.
func WeatherTips(tempC float64, condition string) Bundle {
	out := Bundle{temperatureTip(tempC)}
	lc := strings.ToLower(condition)
	for _, kw := range weatherKeywords {
		if strings.Contains(lc, kw.keyword) {
			out = append(out, kw.tip)
		}
	}
	return out
}

func temperatureTip(tempC float64) Tip {
	switch {
	case tempC >= 25:
		return Tip{Label: "Hot Weather", Text: "Breathable linen or cotton, loose silhouettes, light colors."}
	case tempC >= 15:
		return Tip{Label: "Warm Weather", Text: "Light layers: tees, fine knits, a denim or linen jacket."}
	case tempC >= 5:
		return Tip{Label: "Cool Weather", Text: "Layer a sweater or cardigan under a trench or light coat."}
	default:
		return Tip{Label: "Cold Weather", Text: "Insulated coat, thermal base layers, scarf, gloves and boots."}
	}
}

var generalOccasionTip = Tip{Label: "General", Text: "Choose comfortable, well-fitted pieces that suit the setting."}

// OccasionTips matches occasion keywords. Formal matches are additive; the casual family resolves
// to its most specific match.
func OccasionTips(occasion string) Bundle {
	oc := strings.ToLower(occasion)
	out := Bundle{}
	if strings.Contains(oc, "gala") || strings.Contains(oc, "black-tie") {
		out = append(out, Tip{Label: "Formal", Text: "Gowns, cocktail dresses, elegant suits."})
	}
	if strings.Contains(oc, "business formal") {
		out = append(out, Tip{Label: "Business Formal", Text: "Tailored suit, dress pants or skirts, blouses."})
	}
	if strings.Contains(oc, "semi-formal") || strings.Contains(oc, "cocktail") {
		out = append(out, Tip{Label: "Semi-Formal", Text: "Cocktail dress or stylish jumpsuit; add a blazer."})
	}
	switch {
	case strings.Contains(oc, "casual") && strings.Contains(oc, "business"):
		out = append(out, Tip{Label: "Business Casual", Text: "Chinos with a button-down, or a blazer with jeans."})
	case strings.Contains(oc, "dressy casual"):
		out = append(out, Tip{Label: "Dressy Casual", Text: "Dark jeans or a midi skirt with a silk blouse and loafers."})
	case strings.Contains(oc, "casual"):
		out = append(out, Tip{Label: "Casual", Text: "Jeans, comfortable dresses; functional for outdoors."})
	}
	if len(out) == 0 {
		out = append(out, generalOccasionTip)
	}
	return out
}

// UnavailableBundle stands in for a section whose collaborator could not answer.
func UnavailableBundle(label string) Bundle {
	return Bundle{{Label: label, Text: UnavailableText}}
}
