package asm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/handegar/aicac/base"
	"github.com/handegar/aicac/utils"
)

// Image is the fully assembled DSP state: every table at its hardware
// size, unset entries zero.
type Image struct {
	MPRO  [base.MPROSize]base.Step
	COEF  [base.COEFSize]int16
	MADRS [base.MADRSSize]uint16
	TEMP  [base.TEMPSize]uint32
}

var (
	reBlank     = regexp.MustCompile(`^\s*$`)
	reComment   = regexp.MustCompile(`^\s*(#|//)`)
	reDirective = regexp.MustCompile(`(?i)^\s*(MPRO|COEF|MADRS|TEMP)\[\s*(-?(?:0[xX][0-9a-fA-F]+|[0-9]+))\s*\]\s*=\s*(.*?)\s*$`)
	reField     = regexp.MustCompile(`(?i)^([A-Z]+)(?::(-?(?:0[xX][0-9a-fA-F]+|[0-9]+)))?$`)
)

// parseStep assembles the field list of one MPRO line into a step
// word. Bare names set single-bit fields; NAME:value fields must fit
// the field width.
func parseStep(body string) (base.Step, error) {
	var word base.Step
	for _, tok := range strings.Fields(body) {
		m := reField.FindStringSubmatch(tok)
		if m == nil {
			return 0, fmt.Errorf("Bad field token: %s", tok)
		}
		f, ok := base.FieldByName[strings.ToUpper(m[1])]
		if !ok {
			return 0, fmt.Errorf("Unknown field: %s", m[1])
		}
		var v int64 = 1
		if m[2] != "" {
			var err error
			v, err = utils.ParseInt(m[2])
			if err != nil {
				return 0, fmt.Errorf("Bad field value: %s", tok)
			}
		}
		if v < 0 || f.Get(f.Prep(uint64(v))) != uint64(v) {
			return 0, fmt.Errorf("Value out of range for %s: %d", f.Name, v)
		}
		word |= f.Prep(uint64(v))
	}
	return word, nil
}

// Assemble parses directive lines into a complete Image. Lines that
// are blank or comments are skipped; anything else must be a table
// directive.
func Assemble(lines []string) (*Image, error) {
	img := &Image{}

	for _, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if reBlank.MatchString(line) || reComment.MatchString(line) {
			continue
		}

		m := reDirective.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("Invalid directive: %s", strings.TrimSpace(line))
		}
		idx, err := utils.ParseInt(m[2])
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("Bad index: %s", strings.TrimSpace(line))
		}
		body := m[3]

		switch strings.ToUpper(m[1]) {
		case "MPRO":
			if idx >= base.MPROSize {
				return nil, fmt.Errorf("MPRO index out of range: %d", idx)
			}
			word, err := parseStep(body)
			if err != nil {
				return nil, fmt.Errorf("%v in: %s", err, strings.TrimSpace(line))
			}
			img.MPRO[idx] = word
		case "COEF":
			if idx >= base.COEFSize {
				return nil, fmt.Errorf("COEF index out of range: %d", idx)
			}
			v, err := utils.ParseInt(body)
			if err != nil || v < -32768 || v > 32767 {
				return nil, fmt.Errorf("Bad COEF value: %s", strings.TrimSpace(line))
			}
			img.COEF[idx] = int16(v)
		case "MADRS":
			if idx >= base.MADRSSize {
				return nil, fmt.Errorf("MADRS index out of range: %d", idx)
			}
			v, err := utils.ParseInt(body)
			if err != nil || v < 0 || v > 0xFFFF {
				return nil, fmt.Errorf("Bad MADRS value: %s", strings.TrimSpace(line))
			}
			img.MADRS[idx] = uint16(v)
		case "TEMP":
			if idx >= base.TEMPSize {
				return nil, fmt.Errorf("TEMP index out of range: %d", idx)
			}
			v, err := utils.ParseInt(body)
			if err != nil || v < 0 || v > 0xFFFFFFFF {
				return nil, fmt.Errorf("Bad TEMP value: %s", strings.TrimSpace(line))
			}
			img.TEMP[idx] = uint32(v)
		}
	}

	return img, nil
}
