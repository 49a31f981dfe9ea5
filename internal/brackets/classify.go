package brackets

import "regexp"

// SpanType labels what a bracketed annotation describes.
type SpanType string

const (
	SpanFeat     SpanType = "feat"
	SpanRemix    SpanType = "remix"
	SpanLive     SpanType = "live"
	SpanAcoustic SpanType = "acoustic"
	SpanVersion  SpanType = "version"
	SpanAlias    SpanType = "alias"
	SpanRemaster SpanType = "remaster"
	SpanRelease  SpanType = "release"
	SpanYear     SpanType = "year"
	SpanOther    SpanType = "other"
)

// typeImportance ranks how strongly a span type distinguishes versions.
// A missing (Remix) marker matters far more than a missing (Remastered).
var typeImportance = map[SpanType]float64{
	SpanFeat:     0.9,
	SpanRemix:    0.85,
	SpanLive:     0.80,
	SpanAcoustic: 0.75,
	SpanVersion:  0.70,
	SpanAlias:    0.60,
	SpanRemaster: 0.40,
	SpanRelease:  0.35,
	SpanYear:     0.30,
	SpanOther:    0.40,
}

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

var classifiers = []struct {
	spanType SpanType
	keywords []string
}{
	{SpanFeat, []string{"feat", "ft", "featuring", "with"}},
	{SpanRemix, []string{"remix", "mix", "dj", "club", "extended"}},
	{SpanLive, []string{"live", "现场", "演唱会", "concert"}},
	{SpanAcoustic, []string{"acoustic", "原声", "钢琴", "吉他", "piano", "guitar"}},
	{SpanRemaster, []string{"remaster", "重制", "修复", "高清", "hd"}},
	{SpanVersion, []string{"version", "版本", "ver", "special", "deluxe"}},
	{SpanAlias, []string{"又名", "别名", "aka", "also known as", "原名"}},
}

func importance(t SpanType) float64 {
	if weight, ok := typeImportance[t]; ok {
		return weight
	}
	return typeImportance[SpanOther]
}
