package brackets

// keywordWeights maps version markers to their significance. Specific
// markers like remix and instrumental carry more weight than generic
// ones like edit or version.
var keywordWeights = map[string]float64{
	"live": 6.0, "现场": 6.0, "現場": 6.0, "现场版": 6.0, "現場版": 6.0,
	"acoustic": 6.0, "原声": 6.0, "原聲": 6.0,
	"remix": 8.0, "重混": 8.0, "重混版": 8.0,
	"piano": 5.0, "钢琴": 5.0, "鋼琴": 5.0,
	"instrumental": 7.0, "器乐": 7.0, "器樂": 7.0,
	"karaoke": 7.0, "卡拉ok": 7.0,
	"cover": 4.0, "翻唱": 4.0, "翻唱版": 4.0,
	"version": 2.0, "版": 2.0, "版本": 2.0,
	"remaster": 3.0, "remastered": 3.0, "重制": 3.0, "重制版": 3.0,
	"deluxe": 2.0, "豪华": 2.0, "豪华版": 2.0,
	"single": 3.0, "单曲": 3.0, "單曲": 3.0,
	"album": 2.0, "专辑": 2.0, "專輯": 2.0,
	"ep":       2.0,
	"original": 2.0, "原版": 2.0,
	"feat": 5.0, "featuring": 5.0, "ft": 5.0, "合作": 5.0, "合作版": 5.0,
	"extended": 2.0, "加长": 2.0, "加长版": 2.0,
	"edit": 1.0, "编辑": 1.0, "編輯": 1.0,
	"radio": 1.5, "广播": 1.5, "廣播": 1.5, "电台": 1.5, "電臺": 1.5,
	"explicit": 1.0, "clean": 1.0, "bonus": 1.0, "track": 1.0,
}

// keywordSynonyms folds alternative spellings and translations onto the
// canonical marker, so (现场) and (Live) count as the same keyword.
var keywordSynonyms = map[string][]string{
	"live":     {"现场", "演唱会", "音乐会", "concert", "live", "live version", "live recording", "在线", "現場"},
	"remix":    {"remix", "mix", "重混", "重制", "混音", "dj", "club", "extended"},
	"acoustic": {"acoustic", "原声", "原聲", "钢琴", "吉他", "unplugged", "piano", "guitar"},
	"remaster": {"remaster", "remastered", "重制", "修复", "高清", "hd", "高音质"},
	"version":  {"version", "版本", "版", "ver", "mix"},
	"feat":     {"feat", "ft", "featuring", "with", "和", "合作", "協作"},
	"alias":    {"又名", "别名", "aka", "also known as", "原名", "原名为", "原名是"},
}
