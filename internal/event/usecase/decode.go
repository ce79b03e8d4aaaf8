package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if matches := fencedJSON.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

// rawEvent is one element of the model's array before validation. Optional
// fields decode leniently so a wrong type degrades to "absent".
type rawEvent struct {
	ID            flexString      `json:"id"`
	Title         flexString      `json:"title"`
	StartDate     flexString      `json:"startDate"`
	EndDate       flexString      `json:"endDate"`
	Time          flexString      `json:"time"`
	Duration      flexInt         `json:"duration"`
	Type          flexString      `json:"type"`
	Color         flexString      `json:"color"`
	Location      flexString      `json:"location"`
	Description   flexString      `json:"description"`
	Guests        json.RawMessage `json:"guests"`
	Notifications json.RawMessage `json:"notifications"`
	IsRecurring   flexBool        `json:"isRecurring"`
	RecurrenceID  flexString      `json:"recurrenceId"`
}

type rawNotification struct {
	Type       flexString `json:"type"`
	TimeBefore flexInt    `json:"timeBefore"`
}

// decodeEventArray splits the payload into its elements. Empty text and
// JSON null are an empty batch.
func decodeEventArray(text string) ([]rawEvent, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == "null" {
		return nil, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elems); err != nil {
		return nil, fmt.Errorf("payload is not a JSON array: %w", err)
	}

	out := make([]rawEvent, 0, len(elems))
	for i, elem := range elems {
		if !isJSONObject(elem) {
			return nil, fmt.Errorf("element %d is not an object", i)
		}
		var re rawEvent
		if err := json.Unmarshal(elem, &re); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func isAbsent(b json.RawMessage) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || string(b) == "null"
}

func isJSONObject(b json.RawMessage) bool {
	b = bytes.TrimSpace(b)
	return len(b) > 0 && b[0] == '{'
}

// flexString accepts a string, a number, or null. Any other JSON value
// decodes to "".
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		*s = flexString(num.String())
		return nil
	}
	*s = ""
	return nil
}

func (s flexString) trimmed() string {
	return strings.TrimSpace(string(s))
}

// flexInt accepts a JSON number or a numeric string. Valid is false for
// null, absent, or anything unparsable.
type flexInt struct {
	Value int
	Valid bool
}

func (n *flexInt) UnmarshalJSON(b []byte) error {
	*n = flexInt{}
	if string(bytes.TrimSpace(b)) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		n.Value, n.Valid = int(math.Round(f)), true
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			n.Value, n.Valid = int(math.Round(f)), true
		}
	}
	return nil
}

// flexBool accepts true/false or their string forms.
type flexBool bool

func (v *flexBool) UnmarshalJSON(b []byte) error {
	var bv bool
	if err := json.Unmarshal(b, &bv); err == nil {
		*v = flexBool(bv)
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(str)); err == nil {
			*v = flexBool(parsed)
			return nil
		}
	}
	*v = false
	return nil
}

// decodeGuests accepts an array of strings or a single comma-separated string.
func decodeGuests(raw json.RawMessage) ([]string, bool) {
	if isAbsent(raw) {
		return nil, true
	}

	var list []flexString
	if err := json.Unmarshal(raw, &list); err != nil {
		var single string
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, false
		}
		for _, part := range strings.Split(single, ",") {
			list = append(list, flexString(part))
		}
	}

	var guests []string
	for _, g := range list {
		if v := g.trimmed(); v != "" {
			guests = append(guests, v)
		}
	}
	return guests, true
}

// decodeNotifications returns the notifications of raw, false when raw is
// present but not an array of objects.
func decodeNotifications(raw json.RawMessage) ([]rawNotification, bool) {
	if isAbsent(raw) {
		return nil, true
	}
	var list []rawNotification
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}
