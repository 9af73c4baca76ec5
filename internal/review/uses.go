package review

import (
	"strings"

	"vehireview/internal/models/db_models"
)

type UsageTag string

const (
	UsageTouring  UsageTag = "touring"
	UsageRace     UsageTag = "race"
	UsageShopping UsageTag = "shopping"
	UsageCommute  UsageTag = "commute"
	UsageWork     UsageTag = "work"
	UsageOther    UsageTag = "other"
)

// UsageTags is the fixed enumeration in display order.
var UsageTags = []UsageTag{
	UsageTouring,
	UsageRace,
	UsageShopping,
	UsageCommute,
	UsageWork,
	UsageOther,
}

func ParseUsageTag(s string) (UsageTag, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, tag := range UsageTags {
		if string(tag) == s {
			return tag, true
		}
	}
	return "", false
}

func flag(r *db_models.Review, tag UsageTag) *bool {
	switch tag {
	case UsageTouring:
		return &r.Touring
	case UsageRace:
		return &r.Race
	case UsageShopping:
		return &r.Shopping
	case UsageCommute:
		return &r.Commute
	case UsageWork:
		return &r.Work
	case UsageOther:
		return &r.Other
	}
	return nil
}

// TagsOf lists the tags set on r, in enumeration order.
func TagsOf(r *db_models.Review) []UsageTag {
	tags := make([]UsageTag, 0, len(UsageTags))
	for _, tag := range UsageTags {
		if *flag(r, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// SetTags replaces every usage flag on r with the given set.
func SetTags(r *db_models.Review, tags []UsageTag) {
	for _, tag := range UsageTags {
		*flag(r, tag) = false
	}
	for _, tag := range tags {
		if f := flag(r, tag); f != nil {
			*f = true
		}
	}
}

// UsesLabel joins the localized names of the tags set on r.
func UsesLabel(r *db_models.Review, m Messages) string {
	tags := TagsOf(r)
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, m.UsageTags[tag])
	}
	return strings.Join(names, m.UsesSeparator)
}
