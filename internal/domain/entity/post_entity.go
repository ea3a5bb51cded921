package entity

// Post is a note attached to a user, many posts to one user.
// Image holds a filename relative to the configured upload directory;
// the file itself is loaded at read time, not at write time.
type Post struct {
	ID     uint   `gorm:"primaryKey"`
	Note   string `gorm:"type:text;not null"`
	Image  string `gorm:"size:255"`
	UserID uint   `gorm:"index;not null"`
}

// PostProjection is the JSON shape returned from post reads. Base64 is the
// inline-encoded image file, filled in by the caller who owns the upload dir.
type PostProjection struct {
	ID     uint   `json:"id"`
	UserID uint   `json:"userID"`
	Note   string `json:"note"`
	Image  string `json:"image"`
	Base64 string `json:"base64"`
}

// Projection returns the plain key-value representation of the post with the
// already-encoded image contents inlined.
func (p *Post) Projection(encoded string) PostProjection {
	return PostProjection{
		ID:     p.ID,
		UserID: p.UserID,
		Note:   p.Note,
		Image:  p.Image,
		Base64: encoded,
	}
}
