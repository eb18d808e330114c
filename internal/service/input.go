package service

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
)

const maxUFLen = 2

// PointInput is the registration form for a new collection point. Items is
// the comma-separated list of item ids sent by the web form, e.g. "1,2,6".
type PointInput struct {
	Name      string
	Email     string
	Whatsapp  string
	Latitude  float64
	Longitude float64
	City      string
	UF        string
	Items     string
}

// Validate checks every field and returns the decoded item ids.
func (in PointInput) Validate() ([]int64, error) {
	required := []struct{ field, value string }{
		{"name", in.Name},
		{"email", in.Email},
		{"whatsapp", in.Whatsapp},
		{"city", in.City},
		{"uf", in.UF},
		{"items", in.Items},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, &ValidationError{Field: r.field, Reason: "is required"}
		}
	}

	if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		return nil, &ValidationError{Field: "email", Reason: "must be a valid address"}
	}
	if len([]rune(in.UF)) > maxUFLen {
		return nil, &ValidationError{Field: "uf", Reason: fmt.Sprintf("must be at most %d characters", maxUFLen)}
	}
	if !inRange(in.Latitude, 90) {
		return nil, &ValidationError{Field: "latitude", Reason: "must be between -90 and 90"}
	}
	if !inRange(in.Longitude, 180) {
		return nil, &ValidationError{Field: "longitude", Reason: "must be between -180 and 180"}
	}

	return ParseItemIDs(in.Items)
}

// inRange reports whether v lies in [-limit, limit]. Written as a positive
// check so NaN, which fails every comparison, is out of range.
func inRange(v, limit float64) bool {
	return v >= -limit && v <= limit
}

// ParseItemIDs decodes a comma-separated id list. Tokens are trimmed and
// must all be integers; repeated ids are kept once, in first-seen order.
func ParseItemIDs(s string) ([]int64, error) {
	tokens := strings.Split(s, ",")
	ids := make([]int64, 0, len(tokens))
	seen := make(map[int64]bool, len(tokens))

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		id, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, &ValidationError{Field: "items", Reason: fmt.Sprintf("%q is not an item id", tok)}
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	return ids, nil
}
