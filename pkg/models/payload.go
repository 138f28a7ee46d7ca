package models

// Font and glyph sizes are clamped on every write so that persisted and
// pasted payloads can never carry out-of-range values.
const (
	MinFontPt = 6
	MaxFontPt = 72

	MinVolume = 0
	MaxVolume = 100

	DefaultFontPt      = 12
	DefaultVolume      = 100
	DefaultGlyphPt     = 24
	DefaultStrokeWidth = 2
)

// Payload holds the per-kind content of a note. Each kind has its own
// concrete type; Record flattens it onto the superset wire shape shared by
// the project file and the clipboard format.
type Payload interface {
	Kind() Kind
	Record() PayloadRecord
}

// IdeaPayload is the content of an idea note.
type IdeaPayload struct {
	Title    string
	Subtitle string
}

// TextPayload is the content of a text note.
type TextPayload struct {
	Body   string
	FontPt int
}

// AudioPayload is the content of an audio note. Asset is a relative
// reference into the asset store; empty means no attachment.
type AudioPayload struct {
	Asset  string
	Volume int
}

// ImagePayload is the content of an image note.
type ImagePayload struct {
	Asset string
}

// EmojiPayload is the content of an emoji note.
type EmojiPayload struct {
	Glyph   string
	GlyphPt int
}

// ArrowPayload is the content of an arrow note. Endpoints are in the same
// local coordinate space as the note's position.
type ArrowPayload struct {
	From        [2]float64
	To          [2]float64
	StrokeWidth int
}

func (p IdeaPayload) Kind() Kind  { return KindIdea }
func (p TextPayload) Kind() Kind  { return KindText }
func (p AudioPayload) Kind() Kind { return KindAudio }
func (p ImagePayload) Kind() Kind { return KindImage }
func (p EmojiPayload) Kind() Kind { return KindEmoji }
func (p ArrowPayload) Kind() Kind { return KindArrow }

// PayloadRecord is the flat superset payload carried on the wire. Every
// field is always present regardless of kind; fields irrelevant to a kind
// carry their defaults. This keeps version-3 files readable and the format
// forward-compatible.
type PayloadRecord struct {
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Body        string     `json:"body"`
	FontPt      int        `json:"font_pt"`
	AudioAsset  string     `json:"audio_asset"`
	ImageAsset  string     `json:"image_asset"`
	Volume      int        `json:"volume"`
	Glyph       string     `json:"glyph"`
	GlyphPt     int        `json:"glyph_pt"`
	ArrowFrom   [2]float64 `json:"arrow_from"`
	ArrowTo     [2]float64 `json:"arrow_to"`
	StrokeWidth int        `json:"stroke_width"`
}

func defaultRecord() PayloadRecord {
	return PayloadRecord{
		FontPt:      DefaultFontPt,
		Volume:      DefaultVolume,
		GlyphPt:     DefaultGlyphPt,
		StrokeWidth: DefaultStrokeWidth,
	}
}

func (p IdeaPayload) Record() PayloadRecord {
	r := defaultRecord()
	r.Title = p.Title
	r.Subtitle = p.Subtitle
	return r
}

func (p TextPayload) Record() PayloadRecord {
	r := defaultRecord()
	r.Body = p.Body
	r.FontPt = ClampFontPt(p.FontPt)
	return r
}

func (p AudioPayload) Record() PayloadRecord {
	r := defaultRecord()
	r.AudioAsset = p.Asset
	r.Volume = ClampVolume(p.Volume)
	return r
}

func (p ImagePayload) Record() PayloadRecord {
	r := defaultRecord()
	r.ImageAsset = p.Asset
	return r
}

func (p EmojiPayload) Record() PayloadRecord {
	r := defaultRecord()
	r.Glyph = p.Glyph
	r.GlyphPt = clampPositive(p.GlyphPt, DefaultGlyphPt)
	return r
}

func (p ArrowPayload) Record() PayloadRecord {
	r := defaultRecord()
	r.ArrowFrom = p.From
	r.ArrowTo = p.To
	r.StrokeWidth = clampPositive(p.StrokeWidth, DefaultStrokeWidth)
	return r
}

// Payload reconstructs the typed payload for the given kind, clamping
// numeric fields into their legal ranges.
func (r PayloadRecord) Payload(k Kind) Payload {
	switch k {
	case KindText:
		return TextPayload{Body: r.Body, FontPt: ClampFontPt(r.FontPt)}
	case KindAudio:
		return AudioPayload{Asset: r.AudioAsset, Volume: ClampVolume(r.Volume)}
	case KindImage:
		return ImagePayload{Asset: r.ImageAsset}
	case KindEmoji:
		return EmojiPayload{Glyph: r.Glyph, GlyphPt: clampPositive(r.GlyphPt, DefaultGlyphPt)}
	case KindArrow:
		return ArrowPayload{From: r.ArrowFrom, To: r.ArrowTo, StrokeWidth: clampPositive(r.StrokeWidth, DefaultStrokeWidth)}
	default:
		return IdeaPayload{Title: r.Title, Subtitle: r.Subtitle}
	}
}

// DefaultPayload returns the initial payload for a freshly created note.
func DefaultPayload(k Kind) Payload {
	switch k {
	case KindText:
		return TextPayload{Body: "Escribe aquí…", FontPt: DefaultFontPt}
	case KindAudio:
		return AudioPayload{Volume: DefaultVolume}
	case KindImage:
		return ImagePayload{}
	case KindEmoji:
		return EmojiPayload{Glyph: "⭐", GlyphPt: DefaultGlyphPt}
	case KindArrow:
		return ArrowPayload{From: [2]float64{0, 0}, To: [2]float64{120, 0}, StrokeWidth: DefaultStrokeWidth}
	default:
		return IdeaPayload{Title: "Idea", Subtitle: "Descripción…"}
	}
}

// ClampFontPt clamps a text font size into [MinFontPt, MaxFontPt].
func ClampFontPt(pt int) int {
	if pt < MinFontPt {
		if pt <= 0 {
			return DefaultFontPt
		}
		return MinFontPt
	}
	if pt > MaxFontPt {
		return MaxFontPt
	}
	return pt
}

// ClampVolume clamps an audio volume into [0, 100].
func ClampVolume(v int) int {
	if v < MinVolume {
		return MinVolume
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return v
}

func clampPositive(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
