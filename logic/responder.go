package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/WorkZen2025/workzen-app/pkg"
)

// Fallback texts the assistant speaks when the completion service cannot.
// None of these paths surface an error to the caller.
const (
	connectivityMessage = "I'm having trouble connecting right now. Please try again in a moment."
	authIssueMessage    = "I'm having authentication issues with my API. Please check that your API key is valid."
	rateLimitMessage    = "I'm getting too many requests right now. Please wait a moment and try again."
)

const crisisResponse = `I'm deeply concerned about what you're sharing. Please know that God loves you and your life has immense value. Please reach out for immediate support:

🆘 **Crisis Resources:**
- 988 Suicide & Crisis Lifeline: Call or text 988
- Crisis Text Line: Text HOME to 741741
- SAMHSA Helpline: 1-800-662-4357

**Christian Crisis Support:**
- Focus on the Family: 1-800-A-FAMILY
- New Life Ministries: 1-800-NEW-LIFE

**Remember God's Truth:**
"For I know the plans I have for you," declares the Lord, "plans to prosper you and not to harm you, to give you hope and a future." - Jeremiah 29:11

Please also connect with your pastor, a Christian counselor, or a trusted believer. You are not alone, and God has a purpose for your life.`

const personaPrompt = `You are WorkZen, a Christian workplace stress assistant. You provide:

1. Biblical encouragement and wisdom for workplace challenges
2. Practical stress management techniques grounded in Christian faith
3. Prayer support and spiritual guidance
4. Compassionate listening and validation

Guidelines:
- Always integrate biblical wisdom naturally, not forced
- Include relevant Bible verses when appropriate
- Provide practical, actionable advice
- Be warm, encouraging, and empathetic
- Keep responses under 300 words
- End with a question to continue the conversation

Current context:`

// ChatContext carries the per-turn signals threaded into the system prompt.
// Nil fields mean the signal is absent and gets no annotation.
type ChatContext struct {
	RecentStressLevel *int
	Hour              *int
}

// ResponderLogic produces assistant responses. It screens for crisis
// language before anything else, and degrades every external failure to a
// fixed in-character message instead of returning an error.
type ResponderLogic struct {
	client         *pkg.ChatClient
	model          string
	maxTokens      uint32
	temperature    float32
	crisisKeywords []string
	logger         *zap.SugaredLogger
}

func NewResponderLogic(client *pkg.ChatClient, model string, maxTokens uint32, temperature float32, crisisKeywords []string, logger *zap.SugaredLogger) *ResponderLogic {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ResponderLogic{
		client:         client,
		model:          model,
		maxTokens:      maxTokens,
		temperature:    temperature,
		crisisKeywords: crisisKeywords,
		logger:         logger,
	}
}

// Respond returns the assistant's reply to a user message. The crisis path
// and every failure path return fixed text; only a 200 from the completion
// service yields generated text.
func (l *ResponderLogic) Respond(ctx context.Context, userMessage string, chatCtx ChatContext) string {
	if l.isCrisisMessage(userMessage) {
		return crisisResponse
	}

	if !l.client.HasAPIKey() {
		return connectivityMessage
	}

	temperature := l.temperature
	req := pkg.ChatCompletionRequest{
		Model: l.model,
		Messages: []pkg.RequestMessage{
			{Role: "system", Content: l.buildSystemPrompt(chatCtx)},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   l.maxTokens,
		Temperature: &temperature,
	}

	resp, err := l.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *pkg.APIError
		if errors.As(err, &apiErr) {
			l.logger.Warnw("completion service returned an error", "status", apiErr.StatusCode)
			switch apiErr.StatusCode {
			case 401:
				return authIssueMessage
			case 429:
				return rateLimitMessage
			default:
				return fmt.Sprintf("I'm experiencing some technical difficulties (Error %d). Please try again in a moment.", apiErr.StatusCode)
			}
		}
		l.logger.Warnw("completion request failed", "error", err)
		return connectivityMessage
	}

	if len(resp.Choices) == 0 {
		return connectivityMessage
	}
	return resp.Choices[0].Message.Content
}

func (l *ResponderLogic) isCrisisMessage(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range l.crisisKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func (l *ResponderLogic) buildSystemPrompt(chatCtx ChatContext) string {
	var b strings.Builder
	b.WriteString(personaPrompt)

	if chatCtx.RecentStressLevel != nil {
		b.WriteString(fmt.Sprintf("\n- User's recent stress level: %d/10", *chatCtx.RecentStressLevel))
	}

	if chatCtx.Hour != nil {
		if *chatCtx.Hour < 10 {
			b.WriteString("\n- Morning - focus on starting the day with God")
		} else if *chatCtx.Hour > 17 {
			b.WriteString("\n- Evening - focus on reflection and rest")
		}
	}

	return b.String()
}
