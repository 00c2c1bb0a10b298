package domain

import "time"

// User represents a registered account. PasswordHash never appears in API
// responses.
type User struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session binds a user to one active login. Both tokens are opaque random
// values; the refresh token is single-use and rotated on every refresh.
type Session struct {
	ID               string    `json:"id"`
	UserID           uint      `json:"userId"`
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Expired reports whether the session's refresh lifetime has passed.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.RefreshExpiresAt)
}

// AccessExpired reports whether the short-lived access token has passed its
// expiry.
func (s *Session) AccessExpired(now time.Time) bool {
	return now.After(s.AccessExpiresAt)
}

// ResetClaims are the verified contents of a password-reset token.
type ResetClaims struct {
	UserID    uint
	Email     string
	IssuedAt  int64
	ExpiresAt int64
}

// Note tags. A note created without an explicit tag gets TagTodo.
const (
	TagTodo     = "Todo"
	TagWork     = "Work"
	TagPersonal = "Personal"
	TagMeeting  = "Meeting"
	TagShopping = "Shopping"
)

// NoteTags lists every accepted tag value.
var NoteTags = []string{TagTodo, TagWork, TagPersonal, TagMeeting, TagShopping}

// ValidTag reports whether tag is one of the accepted values.
func ValidTag(tag string) bool {
	for _, t := range NoteTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Note is a user-owned note.
type Note struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tag       string    `json:"tag"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteFilter narrows a note listing. Zero values mean no constraint.
type NoteFilter struct {
	Search string
	Tag    string
}
