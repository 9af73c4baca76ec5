// Package review holds the write-path rules for reviews: field validation
// under the draft/publish contexts, the per-(user, vehicle) duplicate guard
// and the usage-tag vocabulary.
package review

const (
	TitleMaxLength = 30
	BodyMaxLength  = 2000

	DefaultHomePageSize = 3
	DefaultListPageSize = 5
)

const (
	FieldTitle = "title"
	FieldBody  = "body"
	FieldBase  = "base"
)

// dateLayout renders the creation date in duplicate messages.
const dateLayout = "2006-01-02"
