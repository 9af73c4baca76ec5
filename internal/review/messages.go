package review

import "fmt"

// Messages is the user-facing text for one locale, keyed by rule.
type Messages struct {
	Presence      string
	TooLong       string // takes the maximum length
	IncludesComma string
	Duplicate     string // prefix; the posting date follows

	UsageTags     map[UsageTag]string
	UsesSeparator string
}

func (m Messages) tooLong(max int) string {
	return fmt.Sprintf(m.TooLong, max)
}

var catalogs = map[string]Messages{
	"en": {
		Presence:      "can't be blank",
		TooLong:       "is too long (maximum is %d characters)",
		IncludesComma: "must not contain a comma",
		Duplicate:     "a review for this same vehicle type has already been posted. Posted on: ",
		UsageTags: map[UsageTag]string{
			UsageTouring:  "Touring",
			UsageRace:     "Race",
			UsageShopping: "Shopping",
			UsageCommute:  "Commute",
			UsageWork:     "Work",
			UsageOther:    "Other",
		},
		UsesSeparator: ", ",
	},
	"ja": {
		Presence:      "を入力してください",
		TooLong:       "は%d文字以内で入力してください",
		IncludesComma: "にカンマを含めることはできません",
		Duplicate:     "すでに同一車種でレビューが投稿されています。投稿日:",
		UsageTags: map[UsageTag]string{
			UsageTouring:  "ツーリング",
			UsageRace:     "レース",
			UsageShopping: "買い物",
			UsageCommute:  "通勤",
			UsageWork:     "仕事",
			UsageOther:    "その他",
		},
		UsesSeparator: "・",
	},
}

// MessagesFor returns the catalog for locale, falling back to English.
func MessagesFor(locale string) Messages {
	if m, ok := catalogs[locale]; ok {
		return m
	}
	return catalogs["en"]
}
