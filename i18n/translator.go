package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "field").
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
		case "required":
			return "必須フィールドが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "duplicate_value":
			return "値が重複しています"
		case "invalid_color":
			return "色の形式が不正です"
		case "invalid_time":
			return "時刻の表現が不正です"
		case "unsupported_time_type":
			return "時刻として扱えない型です"
		case "not_found":
			return "フィールドが見つかりません"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "invalid_value":
			return "invalid value"
		case "required":
			return "required field missing"
		case "unknown_key":
			return "unknown key"
		case "duplicate_value":
			return "duplicate value"
		case "invalid_color":
			return "invalid color format"
		case "invalid_time":
			return "invalid time representation"
		case "unsupported_time_type":
			return "unsupported time type"
		case "not_found":
			return "field not found"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T is shorthand used across the engine to format a message for a code.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
