package report

// #region imports
import (
	"regexp"
	"strings"
)

// #endregion

// #region constants

const (
	// dedupWindow bounds how far back each segment is compared. Short-range
	// looping is the failure mode being repaired; the same templated
	// language legitimately reappears across the three note formats much
	// further apart, and must survive.
	dedupWindow = 5

	// minSegmentLen: segments at or under this many characters are accepted
	// without comparison (connectives, list markers, headers).
	minSegmentLen = 20

	// similarityCutoff: above this token overlap, a segment is a repetition
	// artifact.
	similarityCutoff = 0.85

	// minAcceptLen: repaired output at or under this is a failed generation.
	minAcceptLen = 50

	// acceptWithoutMarkerLen: output this long is usable even when no
	// structural marker survived.
	acceptWithoutMarkerLen = 400

	// echoShortLen: output shorter than this after echo stripping suggests
	// the strip ate the real content; re-anchor on section headers instead.
	echoShortLen = 100
)

// degeneratePhrase is the filler sentence small coach models loop on
// verbatim. Runs of two or more collapse to one.
const degeneratePhrase = "As your reflection companion, I am here to support you."

var degenerateRunRe = regexp.MustCompile(`(?:` + regexp.QuoteMeta(degeneratePhrase) + `\s*){2,}`)

// #endregion

// #region repair

// Repair cleans raw model output: strips an echoed prompt, removes
// loop-induced repetition with a windowed sentence comparison, collapses
// the known degenerate phrase, and decides whether what remains is a
// usable report. ok=false means the caller should fall back to the
// rule-based generator.
func Repair(raw, prompt string) (text string, ok bool) {
	out := stripEcho(raw, prompt)
	out = dedupSegments(out)
	out = degenerateRunRe.ReplaceAllString(out, degeneratePhrase+"\n")
	out = strings.TrimSpace(out)

	if len(out) <= minAcceptLen {
		return "", false
	}
	if !hasStructuralMarker(out) && len(out) < acceptWithoutMarkerLen {
		return "", false
	}
	return out, true
}

// #endregion

// #region echo-strip

// stripEcho removes the prompt if the model echoed it back. When the
// remainder is implausibly short the strip likely removed real content, so
// the output is re-anchored at the first recognizable section header.
func stripEcho(raw, prompt string) string {
	out := strings.TrimSpace(raw)
	p := strings.TrimSpace(prompt)

	if p != "" && strings.HasPrefix(out, p) {
		out = strings.TrimSpace(out[len(p):])
	}

	if len(out) < echoShortLen {
		for _, anchor := range sectionAnchors {
			if i := strings.Index(raw, anchor); i >= 0 {
				return strings.TrimSpace(raw[i:])
			}
		}
	}
	return out
}

// #endregion

// #region segmentation

// splitSegments cuts text into sentence-like segments on terminal
// punctuation, keeping each delimiter (and trailing whitespace) with its
// segment so accepted segments concatenate back losslessly.
func splitSegments(text string) []string {
	var segments []string
	start := 0
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Absorb consecutive terminal punctuation and trailing whitespace.
		end := i + 1
		for end < len(runes) && (runes[end] == '.' || runes[end] == '!' || runes[end] == '?') {
			end++
		}
		for end < len(runes) && (runes[end] == ' ' || runes[end] == '\n' || runes[end] == '\t' || runes[end] == '\r') {
			end++
		}
		segments = append(segments, string(runes[start:end]))
		start = end
		i = end - 1
	}
	if start < len(runes) {
		segments = append(segments, string(runes[start:]))
	}
	return segments
}

// #endregion

// #region windowed-dedup

// dedupSegments walks segments in order, comparing each substantial one
// against a sliding window of the last accepted segments. A near-duplicate
// of anything in the window is a looping artifact and is dropped; repeats
// beyond the window are intentional structure and kept.
func dedupSegments(text string) string {
	segments := splitSegments(text)
	var kept []string
	var window []string // normalized forms of recent accepted segments

	for _, seg := range segments {
		norm := strings.ToLower(strings.TrimSpace(seg))
		if len(norm) <= minSegmentLen {
			kept = append(kept, seg)
			continue
		}

		repeated := false
		for _, prev := range window {
			if overlapSimilarity(norm, prev) > similarityCutoff {
				repeated = true
				break
			}
		}
		if repeated {
			continue
		}

		kept = append(kept, seg)
		window = append(window, norm)
		if len(window) > dedupWindow {
			window = window[1:]
		}
	}
	return strings.Join(kept, "")
}

// overlapSimilarity is |common distinct words| / max(|words a|, |words b|).
func overlapSimilarity(a, b string) float64 {
	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(wordsA))
	for _, w := range wordsA {
		setA[w] = true
	}
	setB := make(map[string]bool, len(wordsB))
	common := 0
	for _, w := range wordsB {
		if setB[w] {
			continue
		}
		setB[w] = true
		if setA[w] {
			common++
		}
	}

	denom := len(setA)
	if len(setB) > denom {
		denom = len(setB)
	}
	return float64(common) / float64(denom)
}

// #endregion

// #region accept-check

func hasStructuralMarker(text string) bool {
	for _, anchor := range sectionAnchors {
		if strings.Contains(text, anchor) {
			return true
		}
	}
	return false
}

// #endregion
