package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/internal/registry"
	ui "github.com/conneroisu/italia/pkg/components"
)

// builtins lists every gallery entry in index order.
func builtins() []kind {
	return []kind{
		iconDefinition(),
		iconSetDefinition(),
		buttonDefinition(),
		badgeDefinition(),
		alertDefinition(),
		avatarDefinition(),
		avatarGroupDefinition(),
		cardDefinition(),
		breadcrumbDefinition(),
		textFieldDefinition(),
		textAreaDefinition(),
		passwordDefinition(),
		numberFieldDefinition(),
		checkboxDefinition(),
		toggleDefinition(),
		radioGroupDefinition(),
		selectDefinition(),
		datepickerDefinition(),
		timepickerDefinition(),
	}
}

// static adapts a props-to-component function that cannot fail.
func static[P any](fn func(P) templ.Component) func(context.Context, P) (templ.Component, error) {
	return func(_ context.Context, p P) (templ.Component, error) {
		return fn(p), nil
	}
}

func iconDefinition() kind {
	return definition[ui.IconProps]{
		name:        "icon",
		title:       "Icon",
		category:    registry.CategoryComponents,
		description: "SVG icon from the Bootstrap Italia sprite.",
		render:      static(ui.Icon),
		examples: []example[ui.IconProps]{
			{name: "default", props: ui.IconProps{Name: ui.IconCalendar, Title: "Calendario"}},
			{name: "sizes", description: "Large primary icon", props: ui.IconProps{Name: ui.IconStarFull, Size: ui.IconSizeLarge, Color: ui.IconColorPrimary, Hidden: true}},
			{name: "padded", props: ui.IconProps{Name: ui.IconMail, Color: ui.IconColorSuccess, Padded: true, Align: ui.IconAlignMiddle, Hidden: true}},
		},
	}
}

// IconSetProps selects a group of sprite icons shown as a grid.
type IconSetProps struct {
	// Set is one of general, file, platform or extra.
	Set   string       `yaml:"set"`
	Size  ui.IconSize  `yaml:"size,omitempty"`
	Color ui.IconColor `yaml:"color,omitempty"`
}

var iconSets = map[string][]string{
	"general":  ui.GeneralIcons,
	"file":     ui.FileIcons,
	"platform": ui.PlatformIcons,
	"extra":    ui.ExtraIcons,
}

// IconSet renders every icon of a set with its name below.
func IconSet(_ context.Context, p IconSetProps) (templ.Component, error) {
	names, ok := iconSets[p.Set]
	if !ok {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidOption,
			fmt.Sprintf("unknown icon set %q", p.Set)).WithComponent("icon-set")
	}

	items := make([]templ.Component, 0, len(names))
	for _, name := range names {
		items = append(items, markup.El("li", markup.A("class", "col-6 col-md-3 col-lg-2 text-center mb-3"),
			ui.Icon(ui.IconProps{Name: name, Size: p.Size, Color: p.Color, Hidden: true}),
			markup.El("small", markup.A("class", "d-block text-break"), markup.Text(name)),
		))
	}

	return markup.El("ul", markup.A("class", "row list-unstyled"), items...), nil
}

func iconSetDefinition() kind {
	return definition[IconSetProps]{
		name:        "icon-set",
		title:       "Icon set",
		category:    registry.CategoryComponents,
		description: "Every icon of the sprite, grouped as in the design system.",
		render:      IconSet,
		examples: []example[IconSetProps]{
			{name: "general", props: IconSetProps{Set: "general", Size: ui.IconSizeLarge}},
			{name: "file", props: IconSetProps{Set: "file", Size: ui.IconSizeLarge}},
			{name: "platform", props: IconSetProps{Set: "platform", Size: ui.IconSizeLarge}},
			{name: "extra", props: IconSetProps{Set: "extra", Size: ui.IconSizeLarge}},
		},
	}
}

func buttonDefinition() kind {
	return definition[ui.ButtonProps]{
		name:        "button",
		title:       "Button",
		category:    registry.CategoryComponents,
		description: "Action button with optional icon and badge.",
		render:      static(ui.Button),
		examples: []example[ui.ButtonProps]{
			{name: "primary", props: ui.ButtonProps{Label: "Primario", Color: ui.ColorPrimary}},
			{name: "outline", props: ui.ButtonProps{Label: "Secondario", Color: ui.ColorSecondary, Variant: ui.VariantOutline}},
			{name: "large", props: ui.ButtonProps{Label: "Grande", Color: ui.ColorSuccess, Size: ui.SizeLarge}},
			{name: "disabled", props: ui.ButtonProps{Label: "Disabilitato", Color: ui.ColorDanger, Disabled: true}},
			{name: "icon", description: "Rounded icon before the label", props: ui.ButtonProps{
				Label: "Aggiungi", Color: ui.ColorPrimary, Icon: ui.IconPlus, IconRounded: true,
			}},
			{name: "icon-end", props: ui.ButtonProps{
				Label: "Avanti", Color: ui.ColorPrimary, Variant: ui.VariantOutline, Icon: ui.IconArrowRight, IconPosition: ui.IconEnd,
			}},
			{name: "badge", props: ui.ButtonProps{
				Label: "Messaggi", Color: ui.ColorPrimary,
				Badge: &ui.ButtonBadgeProps{Text: "4", AdditionalText: "messaggi non letti"},
			}},
			{name: "submit", props: ui.ButtonProps{Label: "Invia", Color: ui.ColorPrimary, Type: ui.ButtonTypeSubmit}},
		},
	}
}

func badgeDefinition() kind {
	return definition[ui.BadgeProps]{
		name:        "badge",
		title:       "Badge",
		category:    registry.CategoryComponents,
		description: "Short label in a theme color.",
		render:      static(ui.Badge),
		examples: []example[ui.BadgeProps]{
			{name: "primary", props: ui.BadgeProps{Text: "Nuovo", Color: ui.ColorPrimary}},
			{name: "outline", props: ui.BadgeProps{Text: "Bozza", Color: ui.ColorWarning, Variant: ui.VariantOutline}},
			{name: "pill", props: ui.BadgeProps{Text: "12", Color: ui.ColorDanger, Rounded: true}},
		},
	}
}

func alertDefinition() kind {
	return definition[ui.AlertProps]{
		name:        "alert",
		title:       "Alert",
		category:    registry.CategoryComponents,
		description: "Contextual feedback message, optionally dismissible.",
		render:      static(ui.Alert),
		examples: []example[ui.AlertProps]{
			{name: "info", props: ui.AlertProps{Type: ui.AlertInfo, Text: "La pratica è in lavorazione."}},
			{name: "success", props: ui.AlertProps{Type: ui.AlertSuccess, Title: "Fatto", Text: "Domanda inviata correttamente."}},
			{name: "dismissible", props: ui.AlertProps{Type: ui.AlertWarning, Text: "Il servizio sarà sospeso stanotte.", Dismissible: true}},
			{name: "danger", props: ui.AlertProps{Type: ui.AlertDanger, Title: "Errore", Text: "Impossibile salvare i dati."}},
		},
	}
}

func avatarDefinition() kind {
	return definition[ui.AvatarProps]{
		name:        "avatar",
		title:       "Avatar",
		category:    registry.CategoryComponents,
		description: "User picture, icon or initials with optional status.",
		render:      static(ui.Avatar),
		examples: []example[ui.AvatarProps]{
			{name: "initials", props: ui.AvatarProps{Text: "Mario Rossi", Color: ui.ColorPrimary, Size: ui.SizeLarge}},
			{name: "image", props: ui.AvatarProps{Image: "https://randomuser.me/api/portraits/women/40.jpg", Text: "Anna Bianchi", Size: ui.SizeXL}},
			{name: "icon", props: ui.AvatarProps{Icon: ui.IconUser, IconColor: ui.IconColorWhite, Color: ui.ColorSecondary, Size: ui.SizeLarge}},
			{name: "link", props: ui.AvatarProps{Text: "Luca Verdi", Link: "#", Color: ui.ColorSuccess}},
			{name: "presence", props: ui.AvatarProps{
				Text: "Giulia Neri", Color: ui.ColorWarning, Size: ui.SizeXL,
				PresenceStatus: ui.PresenceActive, PresenceStatusDescription: "Online",
			}},
			{name: "status", props: ui.AvatarProps{
				Text: "Paolo Gialli", Color: ui.ColorDanger, Size: ui.SizeXL,
				UserStatus: ui.UserApproved, UserStatusDescription: "Verificato", UserStatusIcon: ui.IconCheck,
				ExtraText: "Amministratore",
			}},
		},
	}
}

func avatarGroupDefinition() kind {
	return definition[ui.AvatarGroupProps]{
		name:        "avatar-group",
		title:       "Avatar group",
		category:    registry.CategoryComponents,
		description: "List of avatars.",
		render:      static(ui.AvatarGroup),
		examples: []example[ui.AvatarGroupProps]{
			{name: "default", props: ui.AvatarGroupProps{Items: []ui.AvatarProps{
				{Text: "Mario Rossi", Color: ui.ColorPrimary, Size: ui.SizeSmall},
				{Text: "Anna Bianchi", Color: ui.ColorSuccess, Size: ui.SizeSmall},
				{Text: "Luca Verdi", Color: ui.ColorDanger, Size: ui.SizeSmall},
			}}},
		},
	}
}

// CardExampleProps assembles a card from its parts.
type CardExampleProps struct {
	ui.CardProps `yaml:",inline"`

	Title     string     `yaml:"title,omitempty"`
	TitleLink string     `yaml:"title_link,omitempty"`
	Subtitle  string     `yaml:"subtitle,omitempty"`
	Text      string     `yaml:"text,omitempty"`
	Date      *time.Time `yaml:"date,omitempty"`
	Signature string     `yaml:"signature,omitempty"`

	Image      *ui.CardImageProps `yaml:"image,omitempty"`
	BannerIcon *ui.CardIconProps  `yaml:"banner_icon,omitempty"`
	Profile    *CardProfile       `yaml:"profile,omitempty"`

	// FooterLink adds a "read more" link in the footer.
	FooterLink string `yaml:"footer_link,omitempty"`
}

// CardProfile is the header of a profile card.
type CardProfile struct {
	Name        string            `yaml:"name"`
	Role        string            `yaml:"role,omitempty"`
	AvatarImage string            `yaml:"avatar_image,omitempty"`
	Icon        *ui.CardIconProps `yaml:"icon,omitempty"`
}

// CardExample renders the card described by p.
func CardExample(p CardExampleProps) templ.Component {
	var body []templ.Component
	if p.Title != "" {
		body = append(body, ui.CardTitle(ui.CardTitleProps{Text: p.Title, Link: p.TitleLink}))
	}
	if p.Subtitle != "" {
		body = append(body, ui.CardSubtitle(markup.Text(p.Subtitle)))
	}
	if p.Date != nil {
		body = append(body, ui.CardDate(ui.CardDateProps{Date: *p.Date, DisplayLayout: "02/01/2006"}))
	}
	if p.Text != "" {
		body = append(body, ui.CardText(markup.Text(p.Text)))
	}
	if p.Signature != "" {
		body = append(body, ui.CardSignature(markup.Text(p.Signature)))
	}

	var parts []templ.Component
	if p.Profile != nil {
		header := ui.CardProfileHeaderProps{Name: p.Profile.Name, Role: p.Profile.Role}
		if p.Profile.AvatarImage != "" {
			header.Avatar = markup.Void("img", markup.A("src", p.Profile.AvatarImage, "alt", p.Profile.Name))
		}
		if p.Profile.Icon != nil {
			header.Type = ui.CardProfileIcon(*p.Profile.Icon)
		}
		parts = append(parts, ui.CardProfileHeader(header))
	}
	if p.Image != nil {
		parts = append(parts, ui.CardImageWrapper(ui.CardImage(*p.Image)))
	}
	if p.BannerIcon != nil {
		parts = append(parts, ui.CardBannerIcon(*p.BannerIcon))
	}

	content := ui.CardBody(body...)
	if p.Inline {
		content = ui.InlineCardContent(content)
	}
	parts = append(parts, content)

	if p.FooterLink != "" {
		parts = append(parts, ui.CardFooter(ui.CardFooterProps{Children: markup.El("a",
			markup.A("class", "it-card-link", "href", templ.URL(p.FooterLink)),
			markup.El("span", nil, markup.Text("Leggi di più")),
			ui.Icon(ui.IconProps{Name: ui.IconArrowRight, Hidden: true}),
		)}))
	}

	props := p.CardProps
	props.Children = markup.Fragment(parts...)

	return ui.Card(props)
}

func cardDefinition() kind {
	published := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	accent := ui.ColorSuccess

	return definition[CardExampleProps]{
		name:        "card",
		title:       "Card",
		category:    registry.CategoryComponents,
		description: "Content container with title, text, image and footer.",
		render:      static(CardExample),
		examples: []example[CardExampleProps]{
			{name: "default", props: CardExampleProps{
				CardProps:  ui.CardProps{Shadow: ui.ShadowSmall},
				Title:      "Servizi online",
				Text:       "Accedi ai servizi del comune con SPID o CIE.",
				FooterLink: "#",
			}},
			{name: "image", props: CardExampleProps{
				CardProps: ui.CardProps{Shadow: ui.ShadowMedium},
				Image:     &ui.CardImageProps{Src: "https://picsum.photos/800/450", Alt: "Piazza del comune", Ratio: ui.Ratio16x9},
				Title:     "Eventi in città",
				Subtitle:  "Cultura",
				Date:      &published,
				Text:      "Il programma delle iniziative di primavera.",
			}},
			{name: "banner", props: CardExampleProps{
				CardProps:  ui.CardProps{Type: ui.CardBanner, Shadow: ui.ShadowLarge, BorderTopColor: &accent},
				BannerIcon: &ui.CardIconProps{Icon: ui.IconHorn, AriaHidden: true},
				Title:      "Avvisi",
				Text:       "Resta aggiornato sulle comunicazioni dell'ente.",
			}},
			{name: "profile", props: CardExampleProps{
				CardProps: ui.CardProps{Type: ui.CardProfile},
				Profile: &CardProfile{
					Name:        "Mario Rossi",
					Role:        "Responsabile del procedimento",
					AvatarImage: "https://randomuser.me/api/portraits/men/32.jpg",
				},
				Text:      "Ufficio anagrafe, piano terra.",
				Signature: "Aggiornato il 14/03/2025",
			}},
			{name: "inline", props: CardExampleProps{
				CardProps: ui.CardProps{Inline: true, Mini: true},
				Image:     &ui.CardImageProps{Src: "https://picsum.photos/400/400", Alt: "Documento", Ratio: ui.Ratio1x1},
				Title:     "Carta d'identità",
				Text:      "Prenota l'appuntamento.",
			}},
		},
	}
}

func breadcrumbDefinition() kind {
	return definition[ui.BreadcrumbProps]{
		name:        "breadcrumb",
		title:       "Breadcrumb",
		category:    registry.CategoryComponents,
		description: "Navigation trail to the current page.",
		render:      static(ui.Breadcrumb),
		examples: []example[ui.BreadcrumbProps]{
			{name: "default", props: ui.BreadcrumbProps{Items: []ui.BreadcrumbItem{
				{Text: "Home", Link: "/"},
				{Text: "Servizi", Link: "/servizi"},
				{Text: "Anagrafe"},
			}}},
			{name: "icons", props: ui.BreadcrumbProps{Separator: ">", Items: []ui.BreadcrumbItem{
				{Text: "Home", Icon: ui.IconPA, Link: "/"},
				{Text: "Documenti", Icon: ui.IconFilePDF},
			}}},
			{name: "dark", props: ui.BreadcrumbProps{Dark: true, Items: []ui.BreadcrumbItem{
				{Text: "Home", Link: "/"},
				{Text: "Notizie"},
			}}},
		},
	}
}
