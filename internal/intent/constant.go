package intent

// Log prefixes
const (
	LogPrefixLoadFile = "internal.intent.LoadFile"
)

// DefaultEmergencyKeywords trigger the safety escalation path.
var DefaultEmergencyKeywords = []string{
	"đau tim", "nhói tim", "tim đập nhanh", "đau ngực", "khó thở", "ngất",
	"hoa mắt", "chóng mặt", "tức ngực", "ngưng tim", "ngừng tim", "cấp cứu",
	"hồi sức tim phổi", "thở gấp", "thở hụt hơi", "khó thở khi nằm",
}

// DefaultRules is used when no rules file is configured.
var DefaultRules = []Rule{
	{
		Name:     "greeting",
		Keywords: []string{"chào bạn", "xin chào"},
		Response: "Chào bạn, tôi là trợ lý sức khỏe thông minh. Tôi có thể giúp gì cho bạn?",
	},
	{
		Name:     "identity",
		Keywords: []string{"bạn là ai", "bạn tên gì"},
		Response: "Tôi là một chatbot được thiết kế để cung cấp thông tin về sức khỏe tim mạch.",
	},
	{
		Name:     "working_hours",
		Keywords: []string{"giờ làm việc"},
		Response: "Tôi hoạt động 24/7. Tuy nhiên, với các trường hợp khẩn cấp, bạn nên liên hệ trực tiếp với cơ sở y tế.",
	},
	{
		Name:     "contact",
		Keywords: []string{"liên hệ", "số điện thoại"},
		Response: "Để được hỗ trợ khẩn cấp, vui lòng gọi 115. Để được tư vấn chuyên sâu, hãy đặt lịch với bác sĩ của bạn.",
	},
	{
		Name:     "thanks",
		Keywords: []string{"cảm ơn", "cám ơn"},
		Response: "Rất vui được giúp bạn! Nếu có câu hỏi khác, đừng ngần ngại hỏi nhé.",
	},
}

// DefaultTable returns a copy of the built-in table.
func DefaultTable() Table {
	rules := make([]Rule, len(DefaultRules))
	for i, r := range DefaultRules {
		rules[i] = Rule{
			Name:     r.Name,
			Keywords: append([]string(nil), r.Keywords...),
			Response: r.Response,
		}
	}
	return Table{
		Emergency: append([]string(nil), DefaultEmergencyKeywords...),
		Rules:     rules,
	}
}
