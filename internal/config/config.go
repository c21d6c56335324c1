package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ProdID identifies the generator in exported iCalendar data.
var ProdID = "-//Go DateSpinner//" + Version + "//EN"

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go DateSpinner"
	AppID       = "com.github.tartampluch.go-datespinner"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagNoYear       = "no-year"
	FlagNoDay        = "no-day"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescLang     = "Override the UI and picker language (BCP 47 tag)"
	FlagDescNoYear   = "Hide the year dial (month and day only)"
	FlagDescNoDay    = "Hide the day dial"
	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// Calendar Rules
// -----------------------------------------------------------------------------

const (
	// ReferenceLeapYear pins the year while the year dial is hidden so that
	// every month/day pair, Feb 29 included, stays valid.
	ReferenceLeapYear = 2000

	MonthsPerYear = 12
	FirstMonth    = 0
	LastMonth     = MonthsPerYear - 1
	FirstDay      = 1

	// Default bounds applied when the host does not supply any.
	DefaultMinYear = 1900
	DefaultMaxYear = 2100

	DayFormat          = "%02d"
	NumericMonthFormat = "%d"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 420
	MainWindowHeight = 260
	DialMinWidth     = 72

	// Preference Keys
	PrefLanguage    = "language"
	PrefPickerState = "picker_state"
	PrefLastRun     = "last_run_version"

	// Export
	ExtVCF          = ".vcf"
	ExtVCard        = ".vcard"
	ExportVCardName = "birthday.vcf"
	ExportICalName  = "birthday.ics"
	ExportFullName  = "Go DateSpinner"
)

// DefaultLanguage is used when no preference or flag selects one.
const DefaultLanguage = "en"

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// Locale service keys.
	TKeyDatePattern = "date_pattern" // Best pattern for year, short month, day
	TKeyMonthPrefix = "month_short_" // Followed by 01..12

	// UI keys.
	TKeyWinTitle      = "win_title"
	TKeyLblLanguage   = "lbl_language"
	TKeyLblShowDay    = "lbl_show_day"
	TKeyLblShowYear   = "lbl_show_year"
	TKeyLblSelected   = "lbl_selected"   // Requires Date
	TKeyBtnExportVCF  = "btn_export_vcard"
	TKeyBtnExportICS  = "btn_export_ical"
	TKeyBtnImportVCF  = "btn_import_vcard"
	TKeyEvtSummary    = "event_summary"
	TKeyNotifExported = "notif_exported" // Requires File
	TKeyErrNoBirthday = "err_no_birthday"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// Date layouts used for vCard BDAY values.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatRFC3339   = "2006-01-02T15:04:05Z07:00"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"
	DateFormatDisplay   = "%04d-%02d-%02d"
	DateFormatNoYear    = "--%02d-%02d"

	// iCal Properties
	ICalVersion  = "2.0"
	ICalScale    = "GREGORIAN"
	ICalMethod   = "PUBLISH"
	ICalDomain   = "datespinner"
	PropUID      = "UID"
	PropSummary  = "SUMMARY"
	PropDTStart  = "DTSTART"
	PropDTStamp  = "DTSTAMP"
	PropRRule    = "RRULE"
	PropVersion  = "VERSION"
	PropProdid   = "PRODID"
	PropCalScale = "CALSCALE"
	PropMethod   = "METHOD"

	VCardVersion = "4.0"

	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%t"
	FormatUID       = "%s@%s"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrUnknownField       = "unknown dial field"
	ErrUnknownOrderSymbol = "unrecognized locale ordering symbol"
	ErrMonthLabels        = "locale must provide one label per month"
	ErrMalformedState     = "malformed picker state"
	ErrMissingDial        = "picker requires a day, month and year dial"
	ErrMissingLayout      = "picker requires a layout"
	ErrLocaleResolve      = "failed to resolve locale profile"
	ErrLocalesAccess      = "failed to access embedded locales"
	ErrLocaleLoad         = "failed to load locale file"
	ErrLocaleMessage      = "missing locale message"
	ErrDateParse          = "unable to parse date"
	ErrNoBirthday         = "no contact with a birthday found"
	ErrVCardParse         = "failed to parse vCard stream"
	ErrVCardEncode        = "failed to encode vCard data"
	ErrICalEncode         = "failed to encode iCalendar data"
	ErrStateSave          = "failed to save picker state"
	ErrStateRestore       = "failed to restore picker state"
	ErrLogFile            = "failed to open log file"
	ErrCacheDir           = "could not determine user cache dir"
	ErrCreateDir          = "could not create app cache dir"
	ErrAppFailed          = "application failed unexpectedly"
	ErrWriteExport        = "failed to write export file"
)

// -----------------------------------------------------------------------------
// Fallbacks & Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary  = "Birthday"
	FallbackSelected = "Selected: %s"

	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgDialChanged   = "Dial value changed"
	MsgDateChanged   = "Date changed"
	MsgBoundsChanged = "Date bounds changed"
	MsgLocaleChanged = "Locale applied"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgStateRestored = "Picker state restored"
	MsgStateSaved    = "Picker state saved"
	MsgExported      = "Date exported"
	MsgImported      = "Date imported"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyField     = "field"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyDate      = "date"
	LogKeyMin       = "min"
	LogKeyMax       = "max"
	LogKeyLang      = "lang"
	LogKeyOrder     = "order"
	LogKeyNumeric   = "numeric_months"
	LogKeyFile      = "file"
	LogKeyKey       = "key"
	LogKeyYearShown = "year_shown"
	LogKeyDayShown  = "day_shown"
	LogKeyYearKnown = "year_known"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompPicker = "picker"
	CompLocale = "locale"
	CompExport = "export"
	CompMain   = "main"
)
