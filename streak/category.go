package streak

// Category is a closed activity category. Unrecognized values are tolerated:
// they count toward the overall streak but never get a per-category streak,
// so a typo cannot silently fork a new leaderboard dimension.
type Category string

const (
	CategoryCoding   Category = "coding"
	CategoryLeetcode Category = "leetcode"
	CategoryBook     Category = "book"
	CategoryGym      Category = "gym"
	CategoryJob      Category = "job"
	CategoryEvent    Category = "event"
	CategoryProject  Category = "project"
	CategoryTask     Category = "task"
)

// Categories lists every recognized category in display order.
var Categories = []Category{
	CategoryCoding,
	CategoryLeetcode,
	CategoryBook,
	CategoryGym,
	CategoryJob,
	CategoryEvent,
	CategoryProject,
	CategoryTask,
}

// Known reports whether c is one of the recognized categories.
func (c Category) Known() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}
