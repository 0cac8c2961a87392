package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Insta360: VID_YYYYMMDD_HHMMSS_LL_CCC. All eight groups must match,
// otherwise nothing is extracted.
var insta360Exp = regexp.MustCompile(`VID_(\d{4})(\d{2})(\d{2})_(\d{2})(\d{2})(\d{2})_(\d{2})_(\d{3})`)

func parseInsta360(filename string) *Result {
	m := insta360Exp.FindStringSubmatch(filename)
	if m == nil {
		return nil
	}

	lens := LensUnknown
	switch m[7] {
	case "00":
		lens = LensRear
	case "10":
		lens = LensFront
	}
	clip, _ := strconv.Atoi(m[8])

	return &Result{
		Date:       m[1] + "-" + m[2] + "-" + m[3],
		Time:       m[4] + ":" + m[5] + ":" + m[6],
		Lens:       lens,
		ClipNumber: clip,
	}
}

// Canon: 3-4 uppercase letters (underscore allowed) followed by a
// 4-digit file number, e.g. MVI_1234 or IMG1234.
var canonExp = regexp.MustCompile(`([A-Z_]{3,4})_?(\d{4})`)

func parseCanon(filename string) *Result {
	m := canonExp.FindStringSubmatch(filename)
	if m == nil {
		return nil
	}

	no, _ := strconv.Atoi(m[2])
	return &Result{Prefix: m[1], FileNumber: no}
}

// GoPro: G + codec letter (H/X/L) + 2-digit chapter + 4-digit file
// number, e.g. GX010042. The codec letter only anchors the match.
var goProExp = regexp.MustCompile(`G[HXL](\d{2})(\d{4})`)

func parseGoPro(filename string) *Result {
	m := goProExp.FindStringSubmatch(filename)
	if m == nil {
		return nil
	}

	chapter, _ := strconv.Atoi(m[1])
	file, _ := strconv.Atoi(m[2])
	return &Result{Chapter: chapter, FileNumber: file}
}

// DJI names come in two shapes: DJI_YYYYMMDDHHMMSS_NNNN (full) and
// DJI_NNNN (simple). The full form is tried first.
var (
	djiFullExp   = regexp.MustCompile(`DJI_(\d{4})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})_(\d{4})`)
	djiSimpleExp = regexp.MustCompile(`DJI_(\d{4})`)
)

func parseDJI(filename string) *Result {
	if m := djiFullExp.FindStringSubmatch(filename); m != nil {
		no, _ := strconv.Atoi(m[7])
		return &Result{
			Date:       m[1] + "-" + m[2] + "-" + m[3],
			Time:       m[4] + ":" + m[5] + ":" + m[6],
			FileNumber: no,
		}
	}

	if m := djiSimpleExp.FindStringSubmatch(filename); m != nil {
		no, _ := strconv.Atoi(m[1])
		return &Result{FileNumber: no}
	}

	return nil
}

// Sony uses three conventions, tried in order: a bare YYYYMMDD_HHMMSS
// timestamp, the cinema-line C#### numbering, and DSC/XAVC prefixed
// numbers. The first alternative that matches wins.
var (
	sonyTimestampExp = regexp.MustCompile(`(\d{4})(\d{2})(\d{2})_(\d{2})(\d{2})(\d{2})`)
	// The cinema C must not sit inside a letter run, or DSC/XAVC names
	// would never reach their own branch.
	sonyCinemaExp = regexp.MustCompile(`(?:^|[^A-Za-z])C(\d{4})`)
	sonyPrefixExp    = regexp.MustCompile(`(DSC|XAVC)(\d{4,5})`)
)

func parseSony(filename string) *Result {
	if m := sonyTimestampExp.FindStringSubmatch(filename); m != nil {
		return &Result{
			Date: m[1] + "-" + m[2] + "-" + m[3],
			Time: m[4] + ":" + m[5] + ":" + m[6],
		}
	}

	if m := sonyCinemaExp.FindStringSubmatch(filename); m != nil {
		no, _ := strconv.Atoi(m[1])
		return &Result{FileNumber: no}
	}

	if m := sonyPrefixExp.FindStringSubmatch(filename); m != nil {
		no, _ := strconv.Atoi(m[2])
		return &Result{Prefix: m[1], FileNumber: no}
	}

	return nil
}

// Generic fallback: any YYYY[-_]?MM[-_]?DD substring. Digit runs that
// only look like dates are rejected: the components must be in range
// (year 2000-2100, month 1-12, day 1-31) and survive a calendar
// round-trip, so 20240230 does not pass as a date.
var genericDateExp = regexp.MustCompile(`(\d{4})[-_]?(\d{2})[-_]?(\d{2})`)

func parseGenericDate(filename string) *Result {
	m := genericDateExp.FindStringSubmatch(filename)
	if m == nil {
		return nil
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if year < 2000 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return nil
	}

	return &Result{Date: fmt.Sprintf("%04d-%02d-%02d", year, month, day)}
}
