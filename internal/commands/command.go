package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeSection Type = "section"
	TypePreset  Type = "preset"
	TypeRename  Type = "rename"
	TypeTitle   Type = "title"
	TypeNote    Type = "note"
	TypeDue     Type = "due"
	TypeSet     Type = "set"
	TypeLang    Type = "lang"
	TypeCountry Type = "country"
	TypeExport  Type = "export"
	TypeImport  Type = "import"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// TextArgs carries the free text of add, section, rename, title and note.
type TextArgs struct {
	Text string
}

type PresetArgs struct {
	Key string
}

// DueArgs holds a due date already resolved to YYYY-MM-DD, or "" to clear.
type DueArgs struct {
	Date string
}

type SetArgs struct {
	Path  string
	Value string
}

type LangArgs struct {
	Lang string
}

type CountryArgs struct {
	Country string
}

type ExportArgs struct {
	Format string
	Path   string
}

type ImportArgs struct {
	Path string
}

type Command struct {
	Type    Type
	Raw     string
	Text    *TextArgs
	Preset  *PresetArgs
	Due     *DueArgs
	Set     *SetArgs
	Lang    *LangArgs
	Country *CountryArgs
	Export  *ExportArgs
	Import  *ImportArgs
}

// Parse reads one palette line. now anchors relative due dates such as
// "today" or "+3".
func Parse(input string, now time.Time) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd, TypeSection, TypeRename, TypeTitle:
		return parseText(input, Type(head), args, true)
	case TypeNote:
		return parseText(input, TypeNote, args, false)
	case TypePreset:
		return parsePreset(input, args)
	case TypeDue:
		return parseDue(input, args, now)
	case TypeSet:
		return parseSet(input, args)
	case TypeLang:
		return parseLang(input, args)
	case TypeCountry:
		return parseCountry(input, args)
	case TypeExport:
		return parseExport(input, args)
	case TypeImport:
		return parseImport(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseText(raw string, typ Type, args []string, required bool) (Command, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" && required {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires text", typ)}
	}
	return Command{Type: typ, Raw: raw, Text: &TextArgs{Text: text}}, nil
}

func parsePreset(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "preset requires exactly one key"}
	}
	return Command{Type: TypePreset, Raw: raw, Preset: &PresetArgs{Key: strings.ToLower(args[0])}}, nil
}

func parseDue(raw string, args []string, now time.Time) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "due requires a date, today, +N or clear"}
	}
	date, err := ResolveDue(args[0], now)
	if err != nil {
		return Command{}, err
	}
	return Command{Type: TypeDue, Raw: raw, Due: &DueArgs{Date: date}}, nil
}

// ResolveDue turns "2026-04-01", "today", "tomorrow", "+N" or "clear" into
// the stored YYYY-MM-DD form ("" for clear).
func ResolveDue(when string, now time.Time) (string, error) {
	w := strings.ToLower(strings.TrimSpace(when))
	switch w {
	case "clear", "none", "-":
		return "", nil
	case "today":
		return now.Format("2006-01-02"), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format("2006-01-02"), nil
	}
	if strings.HasPrefix(w, "+") {
		n, err := strconv.Atoi(strings.TrimPrefix(w, "+"))
		if err != nil || n < 0 {
			return "", &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid day offset: %s", when)}
		}
		return now.AddDate(0, 0, n).Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", w); err != nil {
		return "", &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid date: %s", when)}
	}
	return w, nil
}

func parseSet(raw string, args []string) (Command, error) {
	if len(args) < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "set requires a field path"}
	}
	return Command{Type: TypeSet, Raw: raw, Set: &SetArgs{Path: args[0], Value: strings.Join(args[1:], " ")}}, nil
}

func parseLang(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "lang requires EN or DE"}
	}
	lang := strings.ToUpper(args[0])
	if lang != "EN" && lang != "DE" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported language: %s", args[0])}
	}
	return Command{Type: TypeLang, Raw: raw, Lang: &LangArgs{Lang: lang}}, nil
}

func parseCountry(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "country requires DE or WORLD"}
	}
	country := strings.ToUpper(args[0])
	if country != "DE" && country != "WORLD" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported country: %s", args[0])}
	}
	return Command{Type: TypeCountry, Raw: raw, Country: &CountryArgs{Country: country}}, nil
}

func parseExport(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "export requires json, csv, xlsx or report"}
	}
	format := strings.ToLower(args[0])
	switch format {
	case "json", "csv", "xlsx", "report":
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unsupported export format: %s", args[0])}
	}
	path := strings.TrimSpace(strings.Join(args[1:], " "))
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{Format: format, Path: path}}, nil
}

func parseImport(raw string, args []string) (Command, error) {
	path := strings.TrimSpace(strings.Join(args, " "))
	if path == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "import requires a file path"}
	}
	return Command{Type: TypeImport, Raw: raw, Import: &ImportArgs{Path: path}}, nil
}
