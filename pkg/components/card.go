package components

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/css"
)

// CardType selects a card layout.
type CardType int

const (
	CardDefault CardType = iota
	CardProfile
	CardBanner
)

var cardTypeNames = []string{"default", "profile", "banner"}

func (t CardType) String() string               { return enumName(t, cardTypeNames) }
func (t CardType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *CardType) UnmarshalText(text []byte) error {
	return parseEnum(t, text, cardTypeNames, "card type")
}

// CardShadow is the elevation of a card.
type CardShadow int

const (
	ShadowSmall CardShadow = iota
	ShadowMedium
	ShadowLarge
)

var cardShadowNames = []string{"small", "medium", "large"}

func (s CardShadow) String() string               { return enumName(s, cardShadowNames) }
func (s CardShadow) MarshalText() ([]byte, error) { return []byte(s.String()), nil }
func (s *CardShadow) UnmarshalText(text []byte) error {
	return parseEnum(s, text, cardShadowNames, "card shadow")
}

// CardProps configures the card container.
type CardProps struct {
	Base `yaml:",inline"`

	Type       CardType   `yaml:"type,omitempty"`
	Borderless bool       `yaml:"borderless,omitempty"`
	Shadow     CardShadow `yaml:"shadow,omitempty"`
	FullHeight bool       `yaml:"full_height,omitempty"`
	Inline     bool       `yaml:"inline,omitempty"`
	Reverse    bool       `yaml:"reverse,omitempty"`
	Mini       bool       `yaml:"mini,omitempty"`
	// BorderTopColor adds a colored top border.
	BorderTopColor *Color `yaml:"border_top_color,omitempty"`

	Children templ.Component `yaml:"-"`
}

// cardState is shared with the card parts through the render context.
type cardState struct {
	hasImage bool
}

type cardKey struct{}

// CardClasses returns the class attribute of a card. hasImage reports
// whether the card contains a CardImageWrapper.
func CardClasses(p CardProps, hasImage bool) string {
	return cardClasses(p, hasImage).Build()
}

func cardClasses(p CardProps, hasImage bool) *css.Builder {
	b := css.New("it-card", "rounded")

	switch p.Type {
	case CardProfile:
		b.Add("it-card-profile")
	case CardBanner:
		b.Add("it-card-banner")
	}

	if p.Inline {
		b.Add("it-card-inline").
			AddIf(p.Mini, "it-card-inline-mini").
			AddIf(p.Reverse, "it-card-inline-reverse")
	}

	b.AddIf(!p.Borderless, "border")

	switch p.Shadow {
	case ShadowSmall:
		b.Add("shadow-sm")
	case ShadowMedium:
		b.Add("shadow")
	case ShadowLarge:
		b.Add("shadow-lg")
	}

	b.AddIf(p.FullHeight, "it-card-height-full").
		AddIf(hasImage, "it-card-image").
		Add(p.Class)

	if p.BorderTopColor != nil {
		b.Add("it-card-border-top it-card-border-top-" + p.BorderTopColor.String())
	}

	return b
}

// Card renders a card. Children are rendered first so that parts such as
// CardImageWrapper can adjust the container classes.
func Card(p CardProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		state := &cardState{}

		var body bytes.Buffer
		if p.Children != nil {
			if err := p.Children.Render(context.WithValue(ctx, cardKey{}, state), &body); err != nil {
				return err
			}
		}

		classes := cardClasses(p, state.hasImage)
		attrs := markup.A("id", optional(p.ID), "class", classes.Build()).Merge(p.Attributes)

		return markup.El("article", attrs, templ.Raw(body.String())).Render(ctx, w)
	})
}

// CardBody wraps the main content of a card.
func CardBody(children ...templ.Component) templ.Component {
	return markup.El("div", markup.A("class", "it-card-body"), children...)
}

// CardTitleProps configures a card title.
type CardTitleProps struct {
	Text string `yaml:"text"`
	// Typography defaults to H3.
	Typography Typography `yaml:"typography,omitempty"`
	// HasIcon reserves room for a CardTitleIcon.
	HasIcon bool   `yaml:"has_icon,omitempty"`
	Link    string `yaml:"link,omitempty"`

	Children templ.Component `yaml:"-"`
}

// CardTitle renders the card heading.
func CardTitle(p CardTitleProps) templ.Component {
	classes := css.New("it-card-title").AddIf(p.HasIcon, "it-card-title-icon")

	title := content(p.Text, p.Children)
	if p.Link != "" {
		title = markup.El("a", markup.A("href", templ.URL(p.Link)), title)
	}

	return markup.El(p.Typography.Tag(H3), markup.A("class", classes.Build()), title)
}

// CardTitleIconProps configures the icon beside a card title.
type CardTitleIconProps struct {
	Icon       string           `yaml:"icon"`
	Role       string           `yaml:"role,omitempty"`
	Title      string           `yaml:"title,omitempty"`
	Attributes templ.Attributes `yaml:"attributes,omitempty"`
}

// CardTitleIcon renders the icon of a title with HasIcon set.
func CardTitleIcon(p CardTitleIconProps) templ.Component {
	return Icon(IconProps{
		Base:  Base{Attributes: p.Attributes},
		Name:  p.Icon,
		Role:  p.Role,
		Title: p.Title,
	})
}

// CardSubtitle renders a line below the title.
func CardSubtitle(children ...templ.Component) templ.Component {
	return markup.El("span", markup.A("class", "it-card-subtitle"), children...)
}

// CardText renders a paragraph of the card body.
func CardText(children ...templ.Component) templ.Component {
	return markup.El("p", markup.A("class", "it-card-text"), children...)
}

// Layouts used by CardDate when none is given.
const (
	DefaultDatetimeLayout = "2006-01-02"
	DefaultDisplayLayout  = "02/01/2006 15:04:05"
)

// CardDateProps configures a card date.
type CardDateProps struct {
	Date time.Time `yaml:"date"`
	// DatetimeLayout formats the datetime attribute.
	DatetimeLayout string `yaml:"datetime_layout,omitempty"`
	// DisplayLayout formats the visible text.
	DisplayLayout string `yaml:"display_layout,omitempty"`
	TextColor     *Color `yaml:"text_color,omitempty"`
}

// CardDate renders a time element.
func CardDate(p CardDateProps) templ.Component {
	datetime, display := p.DatetimeLayout, p.DisplayLayout
	if datetime == "" {
		datetime = DefaultDatetimeLayout
	}
	if display == "" {
		display = DefaultDisplayLayout
	}

	classes := css.New("it-card-date")
	if p.TextColor != nil {
		classes.Add("text-" + p.TextColor.String())
	}

	return markup.El("time",
		markup.A("class", classes.Build(), "datetime", p.Date.Format(datetime)),
		markup.Text(p.Date.Format(display)),
	)
}

// CardSignature renders the author line of a card.
func CardSignature(children ...templ.Component) templ.Component {
	return markup.El("span", markup.A("class", "it-card-signature"), children...)
}

// CardFooterProps configures a card footer.
type CardFooterProps struct {
	Base `yaml:",inline"`

	// Unrelated drops the it-card-related class.
	Unrelated bool `yaml:"unrelated,omitempty"`

	Children templ.Component `yaml:"-"`
}

// CardFooter renders the footer of a card.
func CardFooter(p CardFooterProps) templ.Component {
	classes := css.New("it-card-footer").AddIf(!p.Unrelated, "it-card-related")

	return markup.El("footer", p.root(classes), p.Children)
}

// CardImageWrapper holds the card image and marks its card with
// it-card-image.
func CardImageWrapper(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if state, ok := ctx.Value(cardKey{}).(*cardState); ok {
			state.hasImage = true
		}

		return markup.El("div", markup.A("class", "it-card-image-wrapper"), children...).Render(ctx, w)
	})
}

// CardImageProps configures a card image.
type CardImageProps struct {
	Src   string `yaml:"src"`
	Alt   string `yaml:"alt,omitempty"`
	Ratio Ratio  `yaml:"ratio,omitempty"`
}

// CardImage renders an image in a fixed aspect ratio box.
func CardImage(p CardImageProps) templ.Component {
	return markup.El("div", markup.A("class", "ratio ratio-"+p.Ratio.String()),
		markup.El("figure", markup.A("class", "figure img-full"),
			markup.Void("img", markup.A("src", p.Src, "alt", p.Alt)),
		),
	)
}

// InlineCardContent wraps the content of an inline card.
func InlineCardContent(children ...templ.Component) templ.Component {
	return markup.El("div", markup.A("class", "it-card-inline-content"), children...)
}

// CardIconProps configures the icon of a banner or profile card.
type CardIconProps struct {
	Icon string `yaml:"icon"`
	// IconColor defaults to primary.
	IconColor  IconColor        `yaml:"icon_color,omitempty"`
	AriaHidden bool             `yaml:"aria_hidden,omitempty"`
	Attributes templ.Attributes `yaml:"attributes,omitempty"`
}

func (p CardIconProps) icon() templ.Component {
	color := p.IconColor
	if color == IconColorDefault {
		color = IconColorPrimary
	}

	return Icon(IconProps{
		Base:   Base{Attributes: p.Attributes},
		Name:   p.Icon,
		Color:  color,
		Hidden: p.AriaHidden,
	})
}

// CardBannerIcon renders the icon of a banner card.
func CardBannerIcon(p CardIconProps) templ.Component {
	return markup.El("div", markup.A("class", "it-card-banner-icon-wrapper"), p.icon())
}

// CardProfileIcon renders the icon of a profile header.
func CardProfileIcon(p CardIconProps) templ.Component {
	return markup.El("div", markup.A("class", "it-card-profile-icon"), p.icon())
}

// CardProfileHeaderProps configures the header of a profile card.
type CardProfileHeaderProps struct {
	Name string `yaml:"name"`
	Role string `yaml:"role,omitempty"`
	// Typography defaults to H4.
	Typography Typography `yaml:"typography,omitempty"`

	// NameContent replaces Name when set.
	NameContent templ.Component `yaml:"-"`
	Avatar      templ.Component `yaml:"-"`
	Type        templ.Component `yaml:"-"`
	Image       templ.Component `yaml:"-"`
}

// CardProfileHeader renders the name, role and avatar of a profile card.
func CardProfileHeader(p CardProfileHeaderProps) templ.Component {
	var role, avatar, image templ.Component
	if p.Role != "" {
		role = markup.El("p", markup.A("class", "it-card-profile-role"), markup.Text(p.Role))
	}
	if p.Avatar != nil {
		avatar = markup.El("div", markup.A("class", "avatar size-xl"), p.Avatar)
	}
	if p.Image != nil {
		image = markup.El("div", markup.A("class", "it-card-profile-image"), p.Image)
	}

	return markup.El("div", markup.A("class", "it-card-profile-header"),
		p.Type,
		markup.El("div", markup.A("class", "it-card-profile"),
			markup.El(p.Typography.Tag(H4), markup.A("class", "it-card-profile-name"),
				content(p.Name, p.NameContent)),
			role,
		),
		avatar,
		image,
	)
}
