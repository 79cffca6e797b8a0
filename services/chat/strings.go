// File: services/chat/strings.go
package chat

import "innocurve/models"

// Locale carries the fixed user-facing strings and intent vocabulary for one
// language tag.
type Locale struct {
	ConfirmReservation  string
	ReservationFormHint string
	Apology             string
	ServerError         string
	EmptyMessage        string
	ReservationKeywords []string
	Affirmative         string
}

var locales = map[string]Locale{
	"ko": {
		ConfirmReservation:  "상담 예약을 진행할까요? 원하시면 '예'라고 말씀해주세요.",
		ReservationFormHint: "상담 예약 양식을 준비했습니다. 아래 내용을 작성해주세요.",
		Apology:             "죄송합니다. 응답을 생성하는 데 문제가 발생했습니다.",
		ServerError:         "죄송합니다. 서버 오류가 발생했습니다.",
		EmptyMessage:        "메시지를 입력해주세요.",
		ReservationKeywords: []string{"예약", "문의", "상담"},
		Affirmative:         "예",
	},
	"en": {
		ConfirmReservation:  "Would you like to book a consultation? Say 'yes' to continue.",
		ReservationFormHint: "I've prepared the reservation form. Please fill in the details below.",
		Apology:             "Sorry, something went wrong while generating a response.",
		ServerError:         "Sorry, a server error occurred.",
		EmptyMessage:        "Please enter a message.",
		ReservationKeywords: []string{"reservation", "booking", "consultation", "inquiry"},
		Affirmative:         "yes",
	},
	"ja": {
		ConfirmReservation:  "ご相談の予約を進めますか？よろしければ「はい」とお答えください。",
		ReservationFormHint: "予約フォームをご用意しました。以下の内容をご記入ください。",
		Apology:             "申し訳ありません。応答の生成中に問題が発生しました。",
		ServerError:         "申し訳ありません。サーバーエラーが発生しました。",
		EmptyMessage:        "メッセージを入力してください。",
		ReservationKeywords: []string{"予約", "相談", "問い合わせ"},
		Affirmative:         "はい",
	},
	"zh": {
		ConfirmReservation:  "需要为您预约咨询吗？如果需要，请回复\"是\"。",
		ReservationFormHint: "预约表单已准备好，请填写以下内容。",
		Apology:             "抱歉，生成回复时出现了问题。",
		ServerError:         "抱歉，服务器发生错误。",
		EmptyMessage:        "请输入消息。",
		ReservationKeywords: []string{"预约", "咨询"},
		Affirmative:         "是",
	},
}

// LocaleFor returns the string table for a language tag, falling back to the
// default language for unrecognized tags.
func LocaleFor(lang string) Locale {
	if l, ok := locales[lang]; ok {
		return l
	}
	return locales[models.DefaultLanguage]
}
