package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(TextArgs) (Result, error)
	Section func(TextArgs) (Result, error)
	Preset  func(PresetArgs) (Result, error)
	Rename  func(TextArgs) (Result, error)
	Title   func(TextArgs) (Result, error)
	Note    func(TextArgs) (Result, error)
	Due     func(DueArgs) (Result, error)
	Set     func(SetArgs) (Result, error)
	Lang    func(LangArgs) (Result, error)
	Country func(CountryArgs) (Result, error)
	Export  func(ExportArgs) (Result, error)
	Import  func(ImportArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		return call(cmd.Type, handlers.Add, cmd.Text)
	case TypeSection:
		return call(cmd.Type, handlers.Section, cmd.Text)
	case TypeRename:
		return call(cmd.Type, handlers.Rename, cmd.Text)
	case TypeTitle:
		return call(cmd.Type, handlers.Title, cmd.Text)
	case TypeNote:
		return call(cmd.Type, handlers.Note, cmd.Text)
	case TypePreset:
		return call(cmd.Type, handlers.Preset, cmd.Preset)
	case TypeDue:
		return call(cmd.Type, handlers.Due, cmd.Due)
	case TypeSet:
		return call(cmd.Type, handlers.Set, cmd.Set)
	case TypeLang:
		return call(cmd.Type, handlers.Lang, cmd.Lang)
	case TypeCountry:
		return call(cmd.Type, handlers.Country, cmd.Country)
	case TypeExport:
		return call(cmd.Type, handlers.Export, cmd.Export)
	case TypeImport:
		return call(cmd.Type, handlers.Import, cmd.Import)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func call[A any](typ Type, handler func(A) (Result, error), args *A) (Result, error) {
	if handler == nil {
		return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", typ)}
	}
	if args == nil {
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s is missing arguments", typ)}
	}
	return handler(*args)
}
