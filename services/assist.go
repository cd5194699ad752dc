package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyMessage rejects a blank request before anything is recorded.
var ErrEmptyMessage = errors.New("message is empty")

// Conversation is the transcript of one assistant panel. Both modes append
// to the same history; only the direct mode touches the network.
type Conversation struct {
	Skill    Skill
	Messages []Message
}

func NewConversation() *Conversation {
	return &Conversation{Skill: SkillScientific}
}

func (c *Conversation) skill() SkillDefinition {
	s, err := LookupSkill(c.Skill)
	if err != nil {
		s, _ = LookupSkill(SkillScientific)
	}
	return s
}

// Request builds the direct-mode call for message without recording it.
// The caller sends it with the session unlocked and passes the outcome to
// Record.
func (c *Conversation) Request(message string, lang Language) (CompletionRequest, error) {
	if strings.TrimSpace(message) == "" {
		return CompletionRequest{}, ErrEmptyMessage
	}
	msgs := append([]Message(nil), c.Messages...)
	msgs = append(msgs, Message{Role: RoleUser, Content: message})
	return CompletionRequest{
		System:   BuildPrompt(c.skill(), "", lang),
		Messages: msgs,
	}, nil
}

// Record appends the outcome of a direct-mode call. A failure is kept in the
// transcript as an "Error: ..." reply so the user can resend.
func (c *Conversation) Record(message, reply string, err error) {
	c.Messages = append(c.Messages, Message{Role: RoleUser, Content: message})
	if err != nil {
		reply = "Error: " + err.Error()
	}
	c.Messages = append(c.Messages, Message{Role: RoleAssistant, Content: reply})
}

// ManualPrompt formats the request as a block to paste into an external
// assistant. Nothing is recorded until PasteResponse.
func (c *Conversation) ManualPrompt(message string, lang Language) string {
	prompt := BuildPrompt(c.skill(), message, lang)
	if len(c.Messages) == 0 {
		return prompt
	}
	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString("\n\n--- Previous conversation ---\n")
	for _, m := range c.Messages {
		who := "User"
		if m.Role == RoleAssistant {
			who = "Assistant"
		}
		b.WriteString("\n" + who + ": " + m.Content + "\n")
	}
	b.WriteString("\n--- New request ---\n" + message)
	return b.String()
}

// PasteResponse appends the request and the pasted answer verbatim. A blank
// answer is ignored and reported as false.
func (c *Conversation) PasteResponse(message, response string) bool {
	if strings.TrimSpace(response) == "" {
		return false
	}
	c.Messages = append(c.Messages,
		Message{Role: RoleUser, Content: message},
		Message{Role: RoleAssistant, Content: response},
	)
	return true
}

// LastReply returns the most recent assistant message.
func (c *Conversation) LastReply() (string, bool) {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleAssistant {
			return c.Messages[i].Content, true
		}
	}
	return "", false
}

// Clear drops the transcript and keeps the selected skill.
func (c *Conversation) Clear() {
	c.Messages = nil
}

// AssistTarget names the proposal field that receives assistant text.
type AssistTarget int

const (
	TargetContext AssistTarget = iota
	TargetNeed
	TargetPrediction
	TargetGeneration
	TargetChallenges
	TargetEncouraging
	TargetPosition
)

var assistTargetNames = map[AssistTarget]string{
	TargetContext:     "context",
	TargetNeed:        "need",
	TargetPrediction:  "prediction",
	TargetGeneration:  "generation",
	TargetChallenges:  "challenges",
	TargetEncouraging: "encouraging",
	TargetPosition:    "position",
}

func (t AssistTarget) String() string {
	if s, ok := assistTargetNames[t]; ok {
		return s
	}
	return "unknown"
}

// ParseAssistTarget maps a form value onto a target.
func ParseAssistTarget(s string) (AssistTarget, error) {
	s = strings.TrimSpace(s)
	for t, name := range assistTargetNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: assist target %q", ErrUnknownField, s)
}

func (t AssistTarget) methodologyField() (MethodologyField, bool) {
	switch t {
	case TargetPrediction:
		return FieldPrediction, true
	case TargetGeneration:
		return FieldGeneration, true
	case TargetChallenges:
		return FieldChallenges, true
	case TargetEncouraging:
		return FieldEncouraging, true
	case TargetPosition:
		return FieldPosition, true
	}
	return 0, false
}

// ApplyAssistText replaces the target field with text.
func ApplyAssistText(p *Proposal, target AssistTarget, text string) error {
	switch target {
	case TargetContext:
		p.SetContext(text)
		return nil
	case TargetNeed:
		p.SetNeed(text)
		return nil
	}
	field, ok := target.methodologyField()
	if !ok {
		return fmt.Errorf("%w: assist target %d", ErrUnknownField, int(target))
	}
	return p.SetMethodology(field, text)
}
