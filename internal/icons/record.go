package icons

// Record is one desktop icon as persisted inside a profile document.
// ID is assigned once at creation and never changes; Row/Col describe the
// grid slot and are not part of content comparison.
type Record struct {
	ID          string   `json:"id"`
	Row         int      `json:"row"`
	Col         int      `json:"col"`
	Name        string   `json:"name"`
	Image       string   `json:"image,omitempty"`
	ProgramLink string   `json:"programLink,omitempty"`
	WebsiteLink string   `json:"websiteLink,omitempty"`
	Args        []string `json:"args,omitempty"`
	FontColor   string   `json:"fontColor,omitempty"`
	FontSize    float64  `json:"fontSize,omitempty"`
}

// DesktopFile is a raw filesystem entry found on the live OS desktop.
// It is never persisted; only the Record created from it is.
type DesktopFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Field names a comparable Record attribute. The values match the JSON
// property names so diff output can be shown to the user as-is.
type Field string

const (
	FieldName        Field = "name"
	FieldImage       Field = "image"
	FieldProgramLink Field = "programLink"
	FieldArgs        Field = "args"
	FieldWebsiteLink Field = "websiteLink"
	FieldFontColor   Field = "fontColor"
)

// ComparedFields is the fixed set of fields considered when deciding
// whether two records with the same id have diverged. Row, Col and ID are
// positional or structural and deliberately excluded.
var ComparedFields = []Field{
	FieldName,
	FieldImage,
	FieldProgramLink,
	FieldArgs,
	FieldWebsiteLink,
	FieldFontColor,
}

// Pair is the same logical icon present in two collections with equal
// compared fields.
type Pair struct {
	Current Record
	Other   Record
}

// ModifiedPair is the same logical icon present in two collections with at
// least one compared field differing. Differences follows the order of
// ComparedFields.
type ModifiedPair struct {
	Current     Record
	Other       Record
	Differences []Field
}
