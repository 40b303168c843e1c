package i18n

// Translator retrieves localized messages for Issue codes.
// data carries the issue context ("class", "field", "expected", "got") for
// translators that want to embed it.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "missing_field":
			return "必須フィールドが不足しています"
		case "array_expected":
			return "配列が必要です"
		case "unsupported_array":
			return "プリミティブ型の配列はサポートされていません"
		case "class_mismatch":
			return "クラスが一致しません"
		case "type_mismatch":
			return "型が不正です"
		case "selector_no_match":
			return "該当する型がありません"
		case "parse_error":
			return "解析エラー"
		case "duplicate_key":
			return "キーが重複しています"
		case "truncated":
			return "打ち切られました"
		}
	default: // "en"
		switch code {
		case "missing_field":
			return "required field missing"
		case "array_expected":
			return "array expected"
		case "unsupported_array":
			return "arrays of primitive types are not supported"
		case "class_mismatch":
			return "class mismatch"
		case "type_mismatch":
			return "type mismatch"
		case "selector_no_match":
			return "no class matches the input"
		case "parse_error":
			return "parse error"
		case "duplicate_key":
			return "duplicate key"
		case "truncated":
			return "truncated"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
// It is meant to be called during program start-up.
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

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
