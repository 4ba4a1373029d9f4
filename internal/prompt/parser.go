package prompt

import (
	"encoding/json"
	"strings"

	apperrors "github.com/AndrewK67/shorts-studio/pkg/errors"
)

// ExtractJSON pulls the JSON payload out of a raw model response. Models
// are instructed to answer with bare JSON but still wrap it in markdown
// fences often enough that stripping is mandatory:
//  1. trim whitespace
//  2. if a ```json or bare ``` fence opens the payload, take its interior
//  3. otherwise scan from the first { or [ to the matching last } or ]
//  4. otherwise hand back the trimmed text for a direct parse attempt
func ExtractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if idx := strings.Index(cleaned, "```"); idx >= 0 {
		inner := cleaned[idx+3:]
		inner = strings.TrimPrefix(inner, "json")
		if end := strings.Index(inner, "```"); end >= 0 {
			inner = inner[:end]
		}
		return strings.TrimSpace(inner)
	}

	objStart := strings.Index(cleaned, "{")
	arrStart := strings.Index(cleaned, "[")
	start := objStart
	end := strings.LastIndex(cleaned, "}")
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		start = arrStart
		end = strings.LastIndex(cleaned, "]")
	}
	if start >= 0 && end > start {
		return strings.TrimSpace(cleaned[start : end+1])
	}

	return cleaned
}

// Decode extracts the JSON payload from raw and unmarshals it into dest.
// Failure returns a *errors.ParseError carrying the original raw text so
// callers can log it or switch to a fallback strategy.
func Decode(raw string, dest any) error {
	payload := ExtractJSON(raw)
	if payload == "" {
		return apperrors.NewParseError("empty model response", raw, nil)
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		return apperrors.NewParseError("model response is not valid JSON", raw, err)
	}
	return nil
}
