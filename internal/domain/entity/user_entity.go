package entity

// activityPrefixLen is how much of the raw activity a projection may show.
const activityPrefixLen = 10

// User is a reviewer record in the users table. Name carries the store-level
// uniqueness constraint; duplicate inserts surface as a conflict, not a
// pre-insert check.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;uniqueIndex;not null"`
	Rating    string `gorm:"size:255;not null"`
	Review    string `gorm:"not null"`
	Recommend string `gorm:"not null"`
	Activity  string `gorm:"size:255;not null"`

	// One user to many posts; deleting the user takes the posts with it.
	Posts []Post `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// UserProjection is the JSON shape returned from user reads.
type UserProjection struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Rating    string `json:"rating"`
	Activity  string `json:"activity"`
	Review    string `json:"review"`
	Recommend string `json:"recommend"`
}

// Projection returns the plain key-value representation of the user.
// Activity is always truncated to its first characters; the full value
// never leaves the store through a read.
func (u *User) Projection() UserProjection {
	return UserProjection{
		ID:        u.ID,
		Name:      u.Name,
		Rating:    u.Rating,
		Activity:  truncateActivity(u.Activity),
		Review:    u.Review,
		Recommend: u.Recommend,
	}
}

func truncateActivity(s string) string {
	r := []rune(s)
	if len(r) > activityPrefixLen {
		r = r[:activityPrefixLen]
	}
	return string(r) + "..."
}
