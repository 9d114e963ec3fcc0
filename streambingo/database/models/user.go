package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID          string    `bun:"id,pk" json:"id"`
	Username    string    `bun:"username,notnull,unique" json:"username"`
	DisplayName string    `bun:"display_name,notnull" json:"display_name"`
	AvatarURL   string    `bun:"avatar_url" json:"avatar_url,omitempty"`
	HexCode     string    `bun:"hex_code" json:"hex_code,omitempty"`
	TwitchURL   string    `bun:"twitch_url" json:"twitch_url,omitempty"`

	IsModerator  bool `bun:"is_moderator,notnull,default:false" json:"-"`
	IsAmbassador bool `bun:"is_ambassador,notnull,default:false" json:"-"`

	// Day offset applied to "now" when resolving the active month.
	// Only honored for moderators previewing past or future months.
	TestDateOffset int `bun:"test_date_offset,notnull,default:0" json:"-"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"-"`
}

// TwitchLogin extracts the channel login from the stored channel URL.
// Returns an empty string when the user has no linked channel.
func (u *User) TwitchLogin() string {
	if u.TwitchURL == "" {
		return ""
	}
	login := u.TwitchURL
	for _, prefix := range []string{"https://", "http://", "www.", "twitch.tv/"} {
		if len(login) > len(prefix) && login[:len(prefix)] == prefix {
			login = login[len(prefix):]
		}
	}
	for i := 0; i < len(login); i++ {
		if login[i] == '/' || login[i] == '?' {
			return login[:i]
		}
	}
	return login
}
