package i18n

import (
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for error kinds.
// data carries the parameters to embed in the message: "key" (may be empty),
// "values" (comma-joined enum members), "index" and "nested" (the nested
// failure message of an array element).
type Translator interface {
	Message(kind string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(kind string, data map[string]string) string {
	key := data["key"]
	r := strings.NewReplacer(
		"{key}", key,
		"{values}", data["values"],
		"{index}", data["index"],
		"{nested}", data["nested"],
	)
	var tpl string
	switch t.lang {
	case "ja":
		tpl = jaTemplate(kind, key != "")
	default:
		tpl = enTemplate(kind, key != "")
	}
	if tpl == "" {
		return kind
	}
	return r.Replace(tpl)
}

func enTemplate(kind string, keyed bool) string {
	switch kind {
	case "InvalidType":
		if keyed {
			return "The type of key {key} is invalid."
		}
		return "This value has an invalid type."
	case "NotInEnum":
		if keyed {
			return "Key {key} is not in enum({values})."
		}
		return "Value is not in enum({values})."
	case "MissingKey":
		return "Key {key} is missing."
	case "ExtraKey":
		return "Key {key} was present but should not have been included."
	case "InvalidArrayElement":
		if keyed {
			return "Invalid type at {key}[{index}]: {nested}"
		}
		return "Invalid type at index {index}: {nested}"
	}
	return ""
}

func jaTemplate(kind string, keyed bool) string {
	switch kind {
	case "InvalidType":
		if keyed {
			return "キー {key} の型が不正です。"
		}
		return "値の型が不正です。"
	case "NotInEnum":
		if keyed {
			return "キー {key} は enum({values}) に含まれていません。"
		}
		return "値は enum({values}) に含まれていません。"
	case "MissingKey":
		return "キー {key} が不足しています。"
	case "ExtraKey":
		return "キー {key} は含めるべきではありません。"
	case "InvalidArrayElement":
		if keyed {
			return "{key}[{index}] の型が不正です: {nested}"
		}
		return "インデックス {index} の型が不正です: {nested}"
	}
	return ""
}

type holder struct{ tr Translator }

var current atomic.Pointer[holder]

func init() { current.Store(&holder{tr: dictTranslator{lang: "en"}}) }

// SetLanguage switches the built-in Translator language ("en"/"ja").
// Unknown languages fall back to "en".
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	current.Store(&holder{tr: dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	current.Store(&holder{tr: tr})
}

// T fetches a message for the given kind using the current Translator.
func T(kind string, data map[string]string) string { return current.Load().tr.Message(kind, data) }
