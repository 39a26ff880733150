package components

// Icon names of the Bootstrap Italia sprite.

// General icons.
const (
	IconArrowDown          = "it-arrow-down"
	IconArrowDownCircle    = "it-arrow-down-circle"
	IconArrowDownTriangle  = "it-arrow-down-triangle"
	IconArrowLeft          = "it-arrow-left"
	IconArrowLeftCircle    = "it-arrow-left-circle"
	IconArrowLeftTriangle  = "it-arrow-left-triangle"
	IconArrowRight         = "it-arrow-right"
	IconArrowRightCircle   = "it-arrow-right-circle"
	IconArrowRightTriangle = "it-arrow-right-triangle"
	IconArrowUp            = "it-arrow-up"
	IconArrowUpCircle      = "it-arrow-up-circle"
	IconArrowUpTriangle    = "it-arrow-up-triangle"
	IconBan                = "it-ban"
	IconBookmark           = "it-bookmark"
	IconBox                = "it-box"
	IconBurger             = "it-burger"
	IconCalendar           = "it-calendar"
	IconCamera             = "it-camera"
	IconCar                = "it-car"
	IconCard               = "it-card"
	IconCart               = "it-cart"
	IconChartLine          = "it-chart-line"
	IconCheck              = "it-check"
	IconCheckCircle        = "it-check-circle"
	IconChevronLeft        = "it-chevron-left"
	IconChevronRight       = "it-chevron-right"
	IconClip               = "it-clip"
	IconClock              = "it-clock"
	IconClose              = "it-close"
	IconCloseBig           = "it-close-big"
	IconCloseCircle        = "it-close-circle"
	IconCodeCircle         = "it-code-circle"
	IconCollapse           = "it-collapse"
	IconComment            = "it-comment"
	IconCopy               = "it-copy"
	IconDelete             = "it-delete"
	IconDownload           = "it-download"
	IconError              = "it-error"
	IconExchangeCircle     = "it-exchange-circle"
	IconExpand             = "it-expand"
	IconExternalLink       = "it-external-link"
	IconFlag               = "it-flag"
	IconFolder             = "it-folder"
	IconFullscreen         = "it-fullscreen"
	IconFunnel             = "it-funnel"
	IconHearing            = "it-hearing"
	IconHelp               = "it-help"
	IconHelpCircle         = "it-help-circle"
	IconHorn               = "it-horn"
	IconInbox              = "it-inbox"
	IconInfoCircle         = "it-info-circle"
	IconKey                = "it-key"
	IconLink               = "it-link"
	IconList               = "it-list"
	IconLocked             = "it-locked"
	IconLogout             = "it-logout"
	IconMail               = "it-mail"
	IconMailOpen           = "it-mail-open"
	IconMapMarker          = "it-map-marker"
	IconMapMarkerCircle    = "it-map-marker-circle"
	IconMapMarkerMinus     = "it-map-marker-minus"
	IconMapMarkerPlus      = "it-map-marker-plus"
	IconMaximize           = "it-maximize"
	IconMaximizeAlt        = "it-maximize-alt"
	IconMinimize           = "it-minimize"
	IconMinus              = "it-minus"
	IconMinusCircle        = "it-minus-circle"
	IconMoreActions        = "it-more-actions"
	IconMoreItems          = "it-more-items"
	IconNote               = "it-note"
	IconOpenSource         = "it-open-source"
	IconPA                 = "it-pa"
	IconPasswordInvisible  = "it-password-invisible"
	IconPasswordVisible    = "it-password-visible"
	IconPencil             = "it-pencil"
	IconPiattaforme        = "it-piattaforme"
	IconPin                = "it-pin"
	IconPlug               = "it-plug"
	IconPlus               = "it-plus"
	IconPlusCircle         = "it-plus-circle"
	IconPresentation       = "it-presentation"
	IconPrint              = "it-print"
	IconRefresh            = "it-refresh"
	IconRestore            = "it-restore"
	IconRSS                = "it-rss"
	IconRSSSquare          = "it-rss-square"
	IconSearch             = "it-search"
	IconSettings           = "it-settings"
	IconShare              = "it-share"
	IconSoftware           = "it-software"
	IconStarFull           = "it-star-full"
	IconStarOutline        = "it-star-outline"
	IconTelephone          = "it-telephone"
	IconTool               = "it-tool"
	IconSign               = "it-sign"
	IconUnlocked           = "it-unlocked"
	IconUpload             = "it-upload"
	IconUser               = "it-user"
	IconVideo              = "it-video"
	IconWarning            = "it-warning"
	IconWarningCircle      = "it-warning-circle"
	IconWifi               = "it-wifi"
	IconZoomIn             = "it-zoom-in"
	IconZoomOut            = "it-zoom-out"
)

// File type icons.
const (
	IconFile           = "it-file"
	IconFiles          = "it-files"
	IconFileAudio      = "it-file-audio"
	IconFileCompressed = "it-file-compressed"
	IconFileCSV        = "it-file-csv"
	IconFileDOCX       = "it-file-docx"
	IconFileJSON       = "it-file-json"
	IconFileImage      = "it-file-image"
	IconFileODP        = "it-file-odp"
	IconFileODS        = "it-file-ods"
	IconFileODT        = "it-file-odt"
	IconFilePDF        = "it-file-pdf"
	IconFilePDFExt     = "it-file-pdf-ext"
	IconFilePPT        = "it-file-ppt"
	IconFileSheet      = "it-file-sheet"
	IconFileSigned     = "it-file-signed"
	IconFileSlides     = "it-file-slides"
	IconFileTXT        = "it-file-txt"
	IconFileVideo      = "it-file-video"
	IconFileXLSX       = "it-file-xlsx"
	IconFileXML        = "it-file-xml"
)

// Platform and social network icons.
const (
	IconAndroid             = "it-android"
	IconAndroidSquare       = "it-android-square"
	IconApple               = "it-apple"
	IconAppleSquare         = "it-apple-square"
	IconBehance             = "it-behance"
	IconBluesky             = "it-bluesky"
	IconFacebook            = "it-facebook"
	IconFacebookSquare      = "it-facebook-square"
	IconFigma               = "it-figma"
	IconFigmaSquare         = "it-figma-square"
	IconFlickr              = "it-flickr"
	IconFlickrSquare        = "it-flickr-square"
	IconGithub              = "it-github"
	IconInstagram           = "it-instagram"
	IconLinkedin            = "it-linkedin"
	IconLinkedinSquare      = "it-linkedin-square"
	IconMastodon            = "it-mastodon"
	IconMastodonSquare      = "it-mastodon-square"
	IconMedium              = "it-medium"
	IconMediumSquare        = "it-medium-square"
	IconMoodle              = "it-moodle"
	IconMoodleSquare        = "it-moodle-square"
	IconPinterest           = "it-pinterest"
	IconPinterestSquare     = "it-pinterest-square"
	IconQuora               = "it-quora"
	IconQuoraSquare         = "it-quora-square"
	IconReddit              = "it-reddit"
	IconRedditSquare        = "it-reddit-square"
	IconSlack               = "it-slack"
	IconSlackSquare         = "it-slack-square"
	IconSnapchat            = "it-snapchat"
	IconSnapchatSquare      = "it-snapchat-square"
	IconStackexchange       = "it-stackexchange"
	IconStackexchangeSquare = "it-stackexchange-square"
	IconStackoverflow       = "it-stackoverflow"
	IconStackoverflowSquare = "it-stackoverflow-square"
	IconSpotify             = "it-spotify"
	IconTelegram            = "it-telegram"
	IconThreads             = "it-threads"
	IconThreadsSquare       = "it-threads-square"
	IconTiktok              = "it-tiktok"
	IconTiktokSquare        = "it-tiktok-square"
	IconTwitter             = "it-twitter"
	IconTwitterSquare       = "it-twitter-square"
	IconVimeo               = "it-vimeo"
	IconVimeoSquare         = "it-vimeo-square"
	IconWhatsapp            = "it-whatsapp"
	IconWhatsappSquare      = "it-whatsapp-square"
	IconYoutube             = "it-youtube"
	IconGoogle              = "it-google"
)

// Institutional icons.
const (
	IconDesignersItalia = "it-designers-italia"
	IconTeamDigitale    = "it-team-digitale"
)

// Icon sets, in sprite order.
var (
	GeneralIcons = []string{
		IconArrowDown,
		IconArrowDownCircle,
		IconArrowDownTriangle,
		IconArrowLeft,
		IconArrowLeftCircle,
		IconArrowLeftTriangle,
		IconArrowRight,
		IconArrowRightCircle,
		IconArrowRightTriangle,
		IconArrowUp,
		IconArrowUpCircle,
		IconArrowUpTriangle,
		IconBan,
		IconBookmark,
		IconBox,
		IconBurger,
		IconCalendar,
		IconCamera,
		IconCar,
		IconCard,
		IconCart,
		IconChartLine,
		IconCheck,
		IconCheckCircle,
		IconChevronLeft,
		IconChevronRight,
		IconClip,
		IconClock,
		IconClose,
		IconCloseBig,
		IconCloseCircle,
		IconCodeCircle,
		IconCollapse,
		IconComment,
		IconCopy,
		IconDelete,
		IconDownload,
		IconError,
		IconExchangeCircle,
		IconExpand,
		IconExternalLink,
		IconFlag,
		IconFolder,
		IconFullscreen,
		IconFunnel,
		IconHearing,
		IconHelp,
		IconHelpCircle,
		IconHorn,
		IconInbox,
		IconInfoCircle,
		IconKey,
		IconLink,
		IconList,
		IconLocked,
		IconLogout,
		IconMail,
		IconMailOpen,
		IconMapMarker,
		IconMapMarkerCircle,
		IconMapMarkerMinus,
		IconMapMarkerPlus,
		IconMaximize,
		IconMaximizeAlt,
		IconMinimize,
		IconMinus,
		IconMinusCircle,
		IconMoreActions,
		IconMoreItems,
		IconNote,
		IconOpenSource,
		IconPA,
		IconPasswordInvisible,
		IconPasswordVisible,
		IconPencil,
		IconPiattaforme,
		IconPin,
		IconPlug,
		IconPlus,
		IconPlusCircle,
		IconPresentation,
		IconPrint,
		IconRefresh,
		IconRestore,
		IconRSS,
		IconRSSSquare,
		IconSearch,
		IconSettings,
		IconShare,
		IconSoftware,
		IconStarFull,
		IconStarOutline,
		IconTelephone,
		IconTool,
		IconSign,
		IconUnlocked,
		IconUpload,
		IconUser,
		IconVideo,
		IconWarning,
		IconWarningCircle,
		IconWifi,
		IconZoomIn,
		IconZoomOut,
	}
	FileIcons = []string{
		IconFile,
		IconFiles,
		IconFileAudio,
		IconFileCompressed,
		IconFileCSV,
		IconFileDOCX,
		IconFileJSON,
		IconFileImage,
		IconFileODP,
		IconFileODS,
		IconFileODT,
		IconFilePDF,
		IconFilePDFExt,
		IconFilePPT,
		IconFileSheet,
		IconFileSigned,
		IconFileSlides,
		IconFileTXT,
		IconFileVideo,
		IconFileXLSX,
		IconFileXML,
	}
	PlatformIcons = []string{
		IconAndroid,
		IconAndroidSquare,
		IconApple,
		IconAppleSquare,
		IconBehance,
		IconBluesky,
		IconFacebook,
		IconFacebookSquare,
		IconFigma,
		IconFigmaSquare,
		IconFlickr,
		IconFlickrSquare,
		IconGithub,
		IconInstagram,
		IconLinkedin,
		IconLinkedinSquare,
		IconMastodon,
		IconMastodonSquare,
		IconMedium,
		IconMediumSquare,
		IconMoodle,
		IconMoodleSquare,
		IconPinterest,
		IconPinterestSquare,
		IconQuora,
		IconQuoraSquare,
		IconReddit,
		IconRedditSquare,
		IconSlack,
		IconSlackSquare,
		IconSnapchat,
		IconSnapchatSquare,
		IconStackexchange,
		IconStackexchangeSquare,
		IconStackoverflow,
		IconStackoverflowSquare,
		IconSpotify,
		IconTelegram,
		IconThreads,
		IconThreadsSquare,
		IconTiktok,
		IconTiktokSquare,
		IconTwitter,
		IconTwitterSquare,
		IconVimeo,
		IconVimeoSquare,
		IconWhatsapp,
		IconWhatsappSquare,
		IconYoutube,
		IconGoogle,
	}
	ExtraIcons = []string{
		IconDesignersItalia,
		IconTeamDigitale,
	}
)
