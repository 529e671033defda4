package i18n

import "sync"

// Translator retrieves localized headlines for error codes.
// data provides optional metadata to embed in the message (for example,
// "field" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "invalid_value":
			return "値が不正です"
		case "invalid_length":
			return "要素数が不正です"
		case "unknown_variant":
			return "未知の値です"
		case "unknown_field":
			return "未知のフィールドです"
		case "duplicate_field":
			return "フィールドが重複しています"
		case "missing_field":
			return "必須フィールドが不足しています"
		case "unexpected_operator":
			return "予期しない演算子です"
		case "unexpected_remainder":
			return "予期しない値が残っています"
		case "parse_error":
			return "解析エラー"
		case "custom":
			return "制約違反"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "invalid_value":
			return "invalid value"
		case "invalid_length":
			return "invalid length"
		case "unknown_variant":
			return "unknown variant"
		case "unknown_field":
			return "unknown field"
		case "duplicate_field":
			return "duplicate field"
		case "missing_field":
			return "missing field"
		case "unexpected_operator":
			return "unexpected operator"
		case "unexpected_remainder":
			return "unexpected remainder"
		case "parse_error":
			return "failed to parse"
		case "custom":
			return "constraint violated"
		}
	}
	return code
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
