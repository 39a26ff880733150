package components

import (
	"strings"
	"unicode"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/css"
)

// PresenceStatus is the online state shown on an avatar.
type PresenceStatus int

const (
	PresenceNone PresenceStatus = iota
	PresenceActive
	PresenceBusy
	PresenceHidden
)

var presenceNames = []string{"none", "active", "busy", "hidden"}

func (s PresenceStatus) String() string               { return enumName(s, presenceNames) }
func (s PresenceStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *PresenceStatus) UnmarshalText(text []byte) error {
	return parseEnum(s, text, presenceNames, "presence status")
}

// UserStatus is the account state shown on an avatar.
type UserStatus int

const (
	UserStatusNone UserStatus = iota
	UserApproved
	UserDeclined
	UserNotified
)

var userStatusNames = []string{"none", "approved", "declined", "notified"}

func (s UserStatus) String() string               { return enumName(s, userStatusNames) }
func (s UserStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *UserStatus) UnmarshalText(text []byte) error {
	return parseEnum(s, text, userStatusNames, "user status")
}

func (s UserStatus) class() string {
	switch s {
	case UserApproved:
		return "approved"
	case UserDeclined:
		return "declined"
	case UserNotified:
		return "notify"
	default:
		return ""
	}
}

// AvatarProps configures an avatar. Content precedence is Image, then Icon,
// then the initials of Text.
type AvatarProps struct {
	Base `yaml:",inline"`

	Color     Color     `yaml:"color"`
	Size      Size      `yaml:"size,omitempty"`
	Image     string    `yaml:"image,omitempty"`
	Icon      string    `yaml:"icon,omitempty"`
	IconColor IconColor `yaml:"icon_color,omitempty"`
	Link      string    `yaml:"link,omitempty"`
	Text      string    `yaml:"text,omitempty"`
	// TextShort is shown instead of the initials of Text.
	TextShort string `yaml:"text_short,omitempty"`

	PresenceStatus            PresenceStatus `yaml:"presence_status,omitempty"`
	PresenceStatusDescription string         `yaml:"presence_status_description,omitempty"`
	PresenceStatusIcon        string         `yaml:"presence_status_icon,omitempty"`
	// PresenceStatusIconColor defaults to white.
	PresenceStatusIconColor IconColor `yaml:"presence_status_icon_color,omitempty"`

	UserStatus            UserStatus `yaml:"user_status,omitempty"`
	UserStatusDescription string     `yaml:"user_status_description,omitempty"`
	UserStatusIcon        string     `yaml:"user_status_icon,omitempty"`
	// UserStatusIconColor defaults to white.
	UserStatusIconColor IconColor `yaml:"user_status_icon_color,omitempty"`

	ExtraText string `yaml:"extra_text,omitempty"`
}

// AvatarClasses returns the class attribute of the avatar element.
func AvatarClasses(p AvatarProps) string {
	return avatarClasses(p).Add(p.Class).Build()
}

func avatarClasses(p AvatarProps) *css.Builder {
	b := css.New("avatar")

	switch p.Color {
	case ColorPrimary:
		b.Add("avatar-primary")
	case ColorSecondary:
		b.Add("avatar-secondary")
	case ColorSuccess:
		b.Add("avatar-green")
	case ColorWarning:
		b.Add("avatar-orange")
	case ColorDanger:
		b.Add("avatar-red")
	}

	switch p.Size {
	case SizeDefault:
		b.Add("size-md")
	case SizeXXL:
		b.Add("size-xxl")
	case SizeXL:
		b.Add("size-xl")
	case SizeLarge:
		b.Add("size-lg")
	case SizeSmall:
		b.Add("size-sm")
	case SizeMini:
		b.Add("size-xs")
	}

	return b
}

// Initials returns the uppercase first letter of every word of text that
// starts with a letter.
func Initials(text string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(text) {
		r := []rune(word)[0]
		if unicode.IsLetter(r) {
			sb.WriteRune(unicode.ToUpper(r))
		}
	}

	return sb.String()
}

// ShortName returns the text shown inside a text avatar: TextShort or the
// initials of Text, cut to one letter for small sizes and two otherwise.
func ShortName(p AvatarProps) string {
	short := p.TextShort
	if short == "" {
		short = Initials(p.Text)
	}

	limit := 2
	if p.Size == SizeSmall || p.Size == SizeMini {
		limit = 1
	}

	if r := []rune(short); len(r) > limit {
		return string(r[:limit])
	}

	return short
}

func (p AvatarProps) hasWrapper() bool {
	return p.PresenceStatus != PresenceNone || p.UserStatus != UserStatusNone || p.ExtraText != ""
}

// Avatar renders an avatar, wrapped when it carries a status or extra text.
func Avatar(p AvatarProps) templ.Component {
	if !p.hasWrapper() {
		return avatar(p, nil)
	}

	var extra templ.Component
	if p.ExtraText != "" {
		extra = markup.El("div", markup.A("class", "extra-text"), markup.Text(p.ExtraText))
	}

	wrapper := css.New("avatar-wrapper").AddIf(p.ExtraText != "", "avatar-extra-text")

	return markup.El("div", markup.A("class", wrapper.Build()),
		avatar(p, markup.Fragment(presence(p), userStatus(p))),
		extra,
	)
}

func avatar(p AvatarProps, badges templ.Component) templ.Component {
	var body templ.Component
	switch {
	case p.Image != "":
		body = markup.Void("img", markup.A("src", p.Image, "alt", p.Text))
	case p.Icon != "":
		body = Icon(IconProps{Name: p.Icon, Color: p.IconColor, Hidden: true})
	default:
		var hidden templ.Component
		if p.Text != "" {
			hidden = markup.El("span", markup.A("class", "visually-hidden"), markup.Text(p.Text))
		}
		body = markup.Fragment(
			markup.El("p", markup.A("aria-hidden", "true"), markup.Text(ShortName(p))),
			hidden,
		)
	}

	if p.Link != "" {
		return markup.El("a", p.root(avatarClasses(p), "href", templ.URL(p.Link)), body, badges)
	}

	return markup.El("div", p.root(avatarClasses(p)), body, badges)
}

func presence(p AvatarProps) templ.Component {
	if p.PresenceStatus == PresenceNone {
		return nil
	}

	return statusBadge("avatar-presence "+p.PresenceStatus.String(),
		p.PresenceStatusIcon, p.PresenceStatusIconColor, p.PresenceStatusDescription)
}

func userStatus(p AvatarProps) templ.Component {
	if p.UserStatus == UserStatusNone {
		return nil
	}

	return statusBadge("avatar-status "+p.UserStatus.class(),
		p.UserStatusIcon, p.UserStatusIconColor, p.UserStatusDescription)
}

func statusBadge(class, icon string, color IconColor, description string) templ.Component {
	if color == IconColorDefault {
		color = IconColorWhite
	}

	var hidden templ.Component
	if description != "" {
		hidden = markup.El("span", markup.A("class", "visually-hidden"), markup.Text(description))
	}

	return markup.El("div", markup.A("class", class),
		iconIf(icon, IconProps{Color: color, Hidden: true}),
		hidden,
	)
}

// AvatarGroupProps configures a list of avatars.
type AvatarGroupProps struct {
	Base `yaml:",inline"`

	Items []AvatarProps `yaml:"items"`
}

// AvatarGroup renders avatars as a list. Item status and extra text are
// ignored.
func AvatarGroup(p AvatarGroupProps) templ.Component {
	items := make([]templ.Component, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, markup.El("li", nil, avatar(item, nil)))
	}

	return markup.El("ul", p.root(css.New("avatar-group")), items...)
}
