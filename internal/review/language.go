package review

// LatinScript is the fallback label when no other script family matches.
const LatinScript = "English or Latin-based"

type scriptRange struct {
	lo, hi rune
}

type script struct {
	label  string
	ranges []scriptRange
}

// Script families checked in priority order. The order is a design choice,
// not alphabetic: a text mixing Greek and Cyrillic characters is labeled
// Greek because Greek is checked first. Note the Japanese entry includes the
// shared CJK block, so it can only win for kana since Chinese is checked
// before it.
var scripts = []script{
	{"Greek", []scriptRange{{0x0370, 0x03FF}, {0x1F00, 0x1FFF}}},
	{"Cyrillic", []scriptRange{{0x0400, 0x04FF}}},
	{"Arabic", []scriptRange{{0x0600, 0x06FF}}},
	{"Hebrew", []scriptRange{{0x0590, 0x05FF}}},
	{"Chinese", []scriptRange{{0x4E00, 0x9FFF}}},
	{"Japanese", []scriptRange{{0x3040, 0x309F}, {0x30A0, 0x30FF}, {0xFF00, 0xFFEF}, {0x4E00, 0x9FAF}}},
	{"Korean", []scriptRange{{0xAC00, 0xD7AF}, {0x1100, 0x11FF}, {0x3130, 0x318F}, {0xA960, 0xA97F}, {0xD7B0, 0xD7FF}}},
}

// DetectScript identifies the script family of the text by character-range
// presence. The label is advisory only: it biases the generation model
// toward answering in the input language and never rejects or translates
// anything. It is deliberately a standalone heuristic so it can be swapped
// for a real language detector without touching the rest of the pipeline.
func DetectScript(text string) string {
	for _, s := range scripts {
		if containsAny(text, s.ranges) {
			return s.label
		}
	}
	return LatinScript
}

func containsAny(text string, ranges []scriptRange) bool {
	for _, r := range text {
		for _, rr := range ranges {
			if r >= rr.lo && r <= rr.hi {
				return true
			}
		}
	}
	return false
}
