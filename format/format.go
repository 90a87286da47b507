package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	JSONFormat Format = iota
	CompactFormat
	NetStringFormat
	DumpFormat
	CDumpFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":       JSONFormat,
		"json":    JSONFormat,
		"pretty":  JSONFormat,
		"c":       CompactFormat,
		"compact": CompactFormat,
		"n":       NetStringFormat,
		"net":     NetStringFormat,
		"tnet":    NetStringFormat,
		"d":       DumpFormat,
		"dump":    DumpFormat,
		"cdump":   CDumpFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case CompactFormat:
		return []byte("compact"), nil
	case NetStringFormat:
		return []byte("net"), nil
	case DumpFormat:
		return []byte("dump"), nil
	case CDumpFormat:
		return []byte("cdump"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat || f == CompactFormat }
func (f Format) IsNetString() bool { return f == NetStringFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat, CompactFormat:
		return ".json"
	case NetStringFormat:
		return ".tnet"
	case DumpFormat:
		return ".dump"
	case CDumpFormat:
		return ".h"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, CompactFormat, NetStringFormat, DumpFormat, CDumpFormat, YAMLFormat}
}
