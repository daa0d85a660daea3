package listings

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"motorhub/pkg/models"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// poaValues are the feed spellings that mean "no advertised price".
var poaValues = map[string]struct{}{
	"":                     {},
	"POA":                  {},
	"ON REQUEST":           {},
	"PRICE ON APPLICATION": {},
}

// armouredKeywords mark a vehicle as armoured when any of them appears in the
// description or in "make model". Matching is case-insensitive substring.
var armouredKeywords = []string{
	"armoured", "armored", "bulletproof", "b6", "b7", "vr7", "vr9",
	"runflat", "reinforced", "protection", "executive protection",
}

// FormatPrice turns a raw feed price into a display string and a numeric
// value used only for sorting. Unpriced or unparsable input yields ("POA", 0).
//
// The feed sends prices either as numbers or as strings where a single comma
// separates rand from cents ("1 250 000,00"). Strings with any other comma
// count are treated as noisy integers and reduced to their digits.
func FormatPrice(raw any) (string, float64) {
	switch v := raw.(type) {
	case nil:
		return "POA", 0
	case string:
		s := strings.TrimSpace(v)
		if _, poa := poaValues[strings.ToUpper(s)]; poa {
			return "POA", 0
		}
		return formatPriceString(s)
	case float64:
		if v == 0 {
			return "POA", 0
		}
		return "R" + groupThousands(int64(math.Round(v))), v
	case int:
		if v == 0 {
			return "POA", 0
		}
		return "R" + groupThousands(int64(v)), float64(v)
	case int64:
		if v == 0 {
			return "POA", 0
		}
		return "R" + groupThousands(v), float64(v)
	}
	return "POA", 0
}

func formatPriceString(s string) (string, float64) {
	parts := strings.Split(s, ",")
	if len(parts) == 2 {
		// comma as rand/cents separator
		major := digitsOnly(parts[0])
		if major == "" {
			major = "0"
		}
		minor := parts[1]
		if len(minor) > 2 {
			minor = minor[:2]
		}
		value, err := strconv.ParseFloat(major+"."+minor, 64)
		if err != nil {
			return "POA", 0
		}
		majorInt, err := strconv.ParseInt(major, 10, 64)
		if err != nil {
			return "POA", 0
		}
		return "R" + groupThousands(majorInt), value
	}

	clean := digitsOnly(s)
	if clean == "" {
		return "POA", 0
	}
	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return "POA", 0
	}
	return "R" + groupThousands(int64(math.Round(value))), value
}

// FormatMileage renders a mileage as a space-grouped integer string, "0" when
// the value is missing or not an integer.
func FormatMileage(raw any) string {
	switch v := raw.(type) {
	case float64:
		if v == 0 {
			return "0"
		}
		return groupThousands(int64(v))
	case int:
		if v == 0 {
			return "0"
		}
		return groupThousands(int64(v))
	case int64:
		if v == 0 {
			return "0"
		}
		return groupThousands(v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return "0"
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return "0"
		}
		return groupThousands(n)
	}
	return "0"
}

// timestampLayouts cover the feed's ISO-8601 variants: trailing Z, colon
// offsets, 4-digit offsets without a colon, and naive datetimes (taken as UTC).
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp converts an ISO-ish datetime string to epoch seconds.
// Empty or unparsable input returns 0, never an error.
func ParseTimestamp(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix()
		}
	}
	return 0
}

// DetectArmoured reports whether the description or "make model" mentions any
// armouring keyword.
func DetectArmoured(description, make, model string) bool {
	desc := strings.ToLower(description)
	makeModel := strings.ToLower(make + " " + model)
	for _, kw := range armouredKeywords {
		if strings.Contains(desc, kw) || strings.Contains(makeModel, kw) {
			return true
		}
	}
	return false
}

// Normalize maps one raw feed item into a Listing. It never fails: every
// missing or malformed field falls back to its documented default.
func Normalize(raw models.RawListing) models.Listing {
	make := titleCase(stringField(raw, "make", "Unknown"))
	model := titleCase(stringField(raw, "model", "Model"))

	description := strings.ReplaceAll(
		stringField(raw, "description", "No description available."), "\r", "")

	priceDisplay, priceValue := FormatPrice(raw["price"])

	images := stringSliceField(raw, "imageUrls")
	if len(images) == 0 {
		images = []string{fmt.Sprintf(
			"https://source.unsplash.com/random/800x600/?car,%s+%s",
			strings.ToLower(make), strings.ToLower(model))}
	}

	created := stringField(raw, "created", "")
	var createdTS int64
	if created == "" {
		createdTS = timeNow().Unix()
	} else {
		createdTS = ParseTimestamp(created)
	}

	return models.Listing{
		ID:               stringField(raw, "id", ""),
		Make:             make,
		Model:            model,
		Year:             stringField(raw, "year", "N/A"),
		PriceDisplay:     priceDisplay,
		PriceValue:       priceValue,
		ImageURLs:        images,
		Variant:          stringField(raw, "variant", ""),
		BodyType:         stringField(raw, "bodyType", ""),
		Colour:           stringField(raw, "colour", "Unknown"),
		Location:         stringField(raw, "location", "South Africa"),
		Mileage:          FormatMileage(raw["mileageInKm"]),
		Description:      description,
		Created:          created,
		CreatedTimestamp: createdTS,
		Engine:           stringField(raw, "engine", "N/A"),
		IsArmoured:       DetectArmoured(description, make, model),
	}
}

// stringField reads a map value as a string, stringifying numbers. Missing
// keys and unconvertible types return the default.
func stringField(raw models.RawListing, key, def string) string {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	switch s := v.(type) {
	case string:
		if s == "" {
			return def
		}
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	}
	return def
}

func stringSliceField(raw models.RawListing, key string) []string {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	switch vs := v.(type) {
	case []string:
		return vs
	case []any:
		out := make([]string, 0, len(vs))
		for _, item := range vs {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// titleCase uppercases the first letter of each word and lowercases the rest,
// so "RANGE ROVER" and "s-class" become "Range Rover" and "S-Class".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// groupThousands renders 1250000 as "1 250 000".
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
