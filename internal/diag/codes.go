package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedChar   Code = 1003

	// Ошибки I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
	IOCacheError     Code = 4003

	// Таблица подстановок
	TblInfo                   Code = 5000
	TblDuplicateAlternate     Code = 5001
	TblSharedAlternate        Code = 5002
	TblAlternateNotIdentifier Code = 5003
	TblAlternateIsKeyword     Code = 5004
	TblBadSource              Code = 5005
	TblDuplicateSource        Code = 5006

	// Определение диалекта
	DlcInfo  Code = 6000
	DlcMixed Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:               "Unknown error",
	LexInfo:                   "Lexical information",
	LexUnknownChar:            "Unknown character",
	LexUnterminatedString:     "Unterminated string",
	LexUnterminatedChar:       "Unterminated character literal",
	IOLoadFileError:           "I/O error while loading file",
	IOWriteFileError:          "I/O error while writing file",
	IOCacheError:              "Translation cache error",
	TblInfo:                   "Substitution table information",
	TblDuplicateAlternate:     "Alternate spelling used by several entries",
	TblSharedAlternate:        "Alternate spelling shared by keyword and identifier maps",
	TblAlternateNotIdentifier: "Alternate spelling is not a valid identifier",
	TblAlternateIsKeyword:     "Alternate spelling is a reserved word",
	TblBadSource:              "Source spelling has the wrong class",
	TblDuplicateSource:        "Source spelling listed twice",
	DlcInfo:                   "Dialect information",
	DlcMixed:                  "Mixed canonical and alternate spellings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("TBL%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("DLC%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
