// Package inventory provides item definitions, the item catalog, and the
// ordered containers that hold items in rooms and in the player's pack.
package inventory

import (
	"fmt"
	"strings"
)

// Usage is the closed set of effects an item supports when it is the target
// of swipe, upload, wear, use, or read.
type Usage int

// Usage kinds.
const (
	UsageNone Usage = iota
	UsageKeyBlue
	UsageKeyRed
	UsageUpload
	UsageWear
	UsageAntidote
	UsageDrink
	UsageConnect
	UsageRead
)

var usageNames = map[Usage]string{
	UsageNone:     "none",
	UsageKeyBlue:  "key_blue",
	UsageKeyRed:   "key_red",
	UsageUpload:   "upload",
	UsageWear:     "wear",
	UsageAntidote: "antidote",
	UsageDrink:    "drink",
	UsageConnect:  "connect",
	UsageRead:     "read",
}

// String returns the content tag for u.
func (u Usage) String() string {
	if s, ok := usageNames[u]; ok {
		return s
	}
	return fmt.Sprintf("usage(%d)", int(u))
}

// IsKey reports whether u is one of the key-card kinds.
func (u Usage) IsKey() bool {
	return u == UsageKeyBlue || u == UsageKeyRed
}

// ParseUsage converts a content tag into a Usage. The empty string maps to UsageNone.
//
// Postcondition: Returns (usage, nil) for a known tag, or (UsageNone, error) otherwise.
func ParseUsage(tag string) (Usage, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return UsageNone, nil
	}
	for u, name := range usageNames {
		if name == tag {
			return u, nil
		}
	}
	return UsageNone, fmt.Errorf("unknown item usage %q", tag)
}

// Item is an immutable catalog entry. Items are shared by pointer; pointer
// identity is item identity, so an *Item lives in at most one Container.
type Item struct {
	// Name is the unique display key.
	Name string
	// Description is shown by examine and in the inventory listing.
	Description string
	// Usage selects the verb behaviour the item supports.
	Usage Usage
	// Points is awarded when the item is taken. Zero still awards one point.
	Points int
}

// TakeReward returns the score awarded for picking the item up.
func (i *Item) TakeReward() int {
	if i.Points == 0 {
		return 1
	}
	return i.Points
}

// Matches reports whether fragment is a case-insensitive substring of the
// item name. A blank fragment never matches.
func (i *Item) Matches(fragment string) bool {
	fragment = strings.ToLower(strings.TrimSpace(fragment))
	if fragment == "" {
		return false
	}
	return strings.Contains(strings.ToLower(i.Name), fragment)
}
