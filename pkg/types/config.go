package types

// ConversionConfig holds settings for the document conversion stage.
type ConversionConfig struct {
	// FreeParagraphs selects the free-boundary policy. A negative value
	// (the default) uses the marker policy: paragraphs are free until the
	// first "***" occurrence in the document. Zero or greater switches to
	// the count policy: paragraphs below this index are free.
	FreeParagraphs int `json:"free_paragraphs" yaml:"free_paragraphs"`

	// TitleFromContent derives title and author from the document's first
	// two paragraphs instead of the filename or explicit fields.
	TitleFromContent bool `json:"title_from_content" yaml:"title_from_content"`

	// SplitLineBreaks expands runs of line breaks inside a paragraph into
	// separate text segments with blank-line placeholders between them.
	SplitLineBreaks bool `json:"split_line_breaks" yaml:"split_line_breaks"`

	// IOSStyle and AndroidStyle override the per-dialect serialization
	// style ("attribute" or "element"). Empty means the dialect default.
	IOSStyle     Style `json:"ios_style,omitempty" yaml:"ios_style,omitempty"`
	AndroidStyle Style `json:"android_style,omitempty" yaml:"android_style,omitempty"`

	// OutputDir is where converted XML files are written by the CLI.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// StoreBackend identifies the conversion result store implementation.
type StoreBackend string

const (
	StoreMemory StoreBackend = "memory"
	StoreSQLite StoreBackend = "sqlite"
)

// ServerConfig holds settings for the HTTP conversion API.
type ServerConfig struct {
	// Addr is the listen address (e.g. ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// MaxUploadBytes caps the size of an uploaded document (default 5 MiB).
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes"`

	// Store selects the result store backend: memory or sqlite.
	Store StoreBackend `json:"store" yaml:"store"`

	// DBPath is the SQLite database path when Store is sqlite.
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}
