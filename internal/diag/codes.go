package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexUnexpectedEOF   Code = 1001
	LexUnexpectedChar  Code = 1002
	LexInvalidNameChar Code = 1003
	LexInvalidName     Code = 1004
	LexInvalidNumber   Code = 1005
	LexInvalidUTF8     Code = 1006

	// Парсерные
	SynUnexpectedResult   Code = 2001
	SynIncompleteArgument Code = 2002
	SynMissingName        Code = 2003
	SynNamingNotAllowed   Code = 2004
	SynMissingAssignment  Code = 2005
	SynUnexpectedTopLevel Code = 2006
	SynExpectType         Code = 2007
	SynExpectImportPath   Code = 2008
	SynForMissingIn       Code = 2010

	// Семантические: предупреждения
	SemaNameShouldBePascalCase Code = 3001
	SemaNameShouldBeSnakeCase  Code = 3002
	SemaEmptyEnum              Code = 3003
	SemaUnreachableCode        Code = 3004

	// Семантические: ошибки
	SemaContinueNotAllowed      Code = 3101
	SemaBreakNotAllowed         Code = 3102
	SemaNoName                  Code = 3103
	SemaNamingNotAllowed        Code = 3104
	SemaNameAlreadyExists       Code = 3105
	SemaAlreadyDefined          Code = 3106
	SemaKeywordAsName           Code = 3107
	SemaVariableRefDoesNotExist Code = 3108
	SemaFunctionDoesNotExist    Code = 3109
	SemaVariableAlreadyDeclared Code = 3110
	SemaInmutable               Code = 3111

	// Ошибки I/O
	IOLoadFileError Code = 4001
)

type codeInfo struct {
	name  string
	title string
}

var codeInfos = map[Code]codeInfo{
	UnknownCode:                 {"Unknown", "Unknown error"},
	LexUnexpectedEOF:            {"UnexpectedEOF", "Unexpected EOF"},
	LexUnexpectedChar:           {"UnexpectedChar", "Unexpected char"},
	LexInvalidNameChar:          {"InvalidNameChar", "Invalid name char"},
	LexInvalidName:              {"InvalidName", "name cannot start with a number"},
	LexInvalidNumber:            {"InvalidNumber", "Invalid number"},
	LexInvalidUTF8:              {"InvalidUTF8", "Invalid utf8 string"},
	SynUnexpectedResult:         {"UnexpectedResult", "Unexpected result"},
	SynIncompleteArgument:       {"IncompletedArgument", "Incompletted argument"},
	SynMissingName:              {"NoName", "Name required, for example: \"struct Foo {}\""},
	SynNamingNotAllowed:         {"NamingNotAllowed", "A name is not allowed here"},
	SynMissingAssignment:        {"MissingAssignment", "Missing variable assignment"},
	SynUnexpectedTopLevel:       {"UnexpectedTopLevel", "Unexpected top level construct"},
	SynExpectType:               {"ExpectType", "Expected a type"},
	SynExpectImportPath:         {"ExpectImportPath", "Expected an import path string"},
	SynForMissingIn:             {"ForMissingIn", "Missing 'in' in for loop"},
	SemaNameShouldBePascalCase:  {"NameShouldBePascalCase", "Name should be in pascal case"},
	SemaNameShouldBeSnakeCase:   {"NameShouldBeSnakeCase", "Name should be in snake case"},
	SemaEmptyEnum:               {"EmptyEnum", "Empty enum"},
	SemaUnreachableCode:         {"UnreachableCode", "Unreachable code"},
	SemaContinueNotAllowed:      {"ContinueNotAllowed", "Continue not allowed here"},
	SemaBreakNotAllowed:         {"BreakNotAllowed", "Break not allowed here"},
	SemaNoName:                  {"NoName", "No name provided"},
	SemaNamingNotAllowed:        {"NamingNotAllowed", "A name is not allowed here"},
	SemaNameAlreadyExists:       {"NameAlreadyExists", "Name already exists"},
	SemaAlreadyDefined:          {"AlreadyDefined", "Already defined"},
	SemaKeywordAsName:           {"KeywordAsName", "Using a language keyword is not allowed here"},
	SemaVariableRefDoesNotExist: {"VariableRefDoesNotExist", "The variable referenced doesn't exist"},
	SemaFunctionDoesNotExist:    {"FunctionDoesNotExist", "This function doesn't exist"},
	SemaVariableAlreadyDeclared: {"VariableAlreadyDeclared", "Variable already declared"},
	SemaInmutable:               {"Inmutable", "Data is not mutable"},
	IOLoadFileError:             {"UnableToOpenFile", "Unable to open file"},
}

// ID returns the stable identifier of the code, e.g. SEM3105.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Name returns the kind tag of the code, e.g. NameAlreadyExists.
func (c Code) Name() string {
	if info, ok := codeInfos[c]; ok {
		return info.name
	}
	return codeInfos[UnknownCode].name
}

// Title returns the default human readable message.
func (c Code) Title() string {
	if info, ok := codeInfos[c]; ok {
		return info.title
	}
	return codeInfos[UnknownCode].title
}

// DefaultSeverity returns the severity a code is reported with.
func (c Code) DefaultSeverity() Severity {
	switch c {
	case SemaNameShouldBePascalCase, SemaNameShouldBeSnakeCase, SemaEmptyEnum, SemaUnreachableCode:
		return SevWarning
	}
	return SevError
}

func (c Code) String() string {
	return c.ID()
}
