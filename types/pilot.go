package types

import "strings"

// UseCaseType classifies what the user is trying to do with their goal.
type UseCaseType string

const (
	UseCaseLearnTopic   UseCaseType = "learn_topic"
	UseCaseBuildProduct UseCaseType = "build_product"
	UseCaseSolveProblem UseCaseType = "solve_problem"
	UseCaseOther        UseCaseType = "other"
)

// AISkillLevel describes how comfortable the user is with prompting AI tools.
type AISkillLevel string

const (
	SkillBeginner     AISkillLevel = "beginner"
	SkillIntermediate AISkillLevel = "intermediate"
	SkillAdvanced     AISkillLevel = "advanced"
)

// TimeHorizon describes how soon the user wants results.
type TimeHorizon string

const (
	HorizonToday    TimeHorizon = "today"
	HorizonThisWeek TimeHorizon = "this_week"
	HorizonLonger   TimeHorizon = "longer"
)

// GoalInput is the user's goal description plus the selectors from the goal form.
// Immutable once submitted; held by the flow controller until reset.
type GoalInput struct {
	GoalDescription string       `json:"goalDescription"`
	UseCaseType     UseCaseType  `json:"useCaseType"`
	AISkillLevel    AISkillLevel `json:"aiSkillLevel"`
	TimeHorizon     TimeHorizon  `json:"timeHorizon"`
	PreferredTools  string       `json:"preferredTools,omitempty"`
}

// Valid reports whether the input carries a non-empty goal description.
func (g *GoalInput) Valid() bool {
	return g != nil && strings.TrimSpace(g.GoalDescription) != ""
}

// ClarificationAnswer pairs a generated clarifying question with the user's
// answer. The answer may be empty when the user skipped the question.
type ClarificationAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PromptItem is one ready-to-use prompt. The text keeps bracketed placeholder
// tokens like [YOUR_TOPIC] for the end user to fill in manually.
type PromptItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// RoadmapStage is one phase of the roadmap with its ordered prompts.
type RoadmapStage struct {
	ID        string       `json:"id"`
	Index     int          `json:"index"` // 1-based position
	Name      string       `json:"name"`
	Objective string       `json:"objective"`
	WhenToUse string       `json:"whenToUse"`
	Prompts   []PromptItem `json:"prompts"`
}

// PromptRoadmapResponse is the full generated roadmap as returned upstream.
type PromptRoadmapResponse struct {
	Summary []string       `json:"summary"`
	Stages  []RoadmapStage `json:"stages"`
	Tips    []string       `json:"tips"`
}

// Session is one completed run: the goal, the clarification exchange and the
// resulting roadmap. A session is only ever persisted fully populated — there
// is no partial clarify-stage snapshot.
type Session struct {
	ID                     string                 `json:"id,omitempty"`
	Input                  GoalInput              `json:"input"`
	ClarificationQuestions []string               `json:"clarificationQuestions"`
	ClarificationAnswers   []ClarificationAnswer  `json:"clarificationAnswers"`
	Roadmap                *PromptRoadmapResponse `json:"roadmap,omitempty"`
	CreatedAt              string                 `json:"createdAt"`
}
