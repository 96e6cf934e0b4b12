// Package flow drives the three-step goal → clarify → roadmap state machine
// used by the terminal client. The Controller is a plain value object with no
// I/O: callers begin a transition, run the network call themselves and feed
// the result back, which keeps every transition testable in isolation.
package flow

import (
	"errors"
	"time"

	"github.com/promptpilot/prompt-pilot-service/types"
)

// Step identifies the active step of the flow.
type Step string

const (
	StepGoal    Step = "goal"
	StepClarify Step = "clarify"
	StepRoadmap Step = "roadmap"
)

// ErrRequestPending is returned when a transition is begun while a network
// call for the current step is still in flight.
var ErrRequestPending = errors.New("a request is already in flight")

// Controller holds the flow state. An error message can overlay any step
// without changing it.
type Controller struct {
	step      Step
	input     *types.GoalInput
	questions []string
	answers   []types.ClarificationAnswer
	roadmap   *types.PromptRoadmapResponse
	restored  bool
	pending   bool
	requestID int
	errMsg    string
}

func NewController() *Controller {
	return &Controller{step: StepGoal}
}

func (c *Controller) Step() Step                              { return c.step }
func (c *Controller) Input() *types.GoalInput                 { return c.input }
func (c *Controller) Questions() []string                     { return c.questions }
func (c *Controller) Answers() []types.ClarificationAnswer    { return c.answers }
func (c *Controller) Roadmap() *types.PromptRoadmapResponse   { return c.roadmap }
func (c *Controller) Restored() bool                          { return c.restored }
func (c *Controller) Pending() bool                           { return c.pending }
func (c *Controller) Err() string                             { return c.errMsg }

func (c *Controller) ClearError() { c.errMsg = "" }

// BeginClarify starts the goal → clarify transition. It returns a request id
// that must be passed back to ApplyQuestions; results carrying a stale id are
// discarded.
func (c *Controller) BeginClarify(input types.GoalInput) (int, error) {
	if c.pending {
		return 0, ErrRequestPending
	}
	if c.step != StepGoal {
		return 0, errors.New("clarify can only be requested from the goal step")
	}

	c.input = &input
	c.errMsg = ""
	c.pending = true
	c.requestID++
	return c.requestID, nil
}

// ApplyQuestions completes the goal → clarify transition. On failure the
// step does not change and the error message is surfaced. Returns false when
// the result was stale and ignored.
func (c *Controller) ApplyQuestions(requestID int, questions []string, err error) bool {
	if requestID != c.requestID {
		return false
	}
	c.pending = false

	if err != nil {
		c.errMsg = err.Error()
		return true
	}

	c.questions = questions
	c.step = StepClarify
	return true
}

// BeginRoadmap starts the clarify → roadmap transition. An empty answer list
// is the explicit skip.
func (c *Controller) BeginRoadmap(answers []types.ClarificationAnswer) (int, error) {
	if c.pending {
		return 0, ErrRequestPending
	}
	if c.step != StepClarify {
		return 0, errors.New("roadmap can only be requested from the clarify step")
	}

	if answers == nil {
		answers = []types.ClarificationAnswer{}
	}
	c.answers = answers
	c.errMsg = ""
	c.pending = true
	c.requestID++
	return c.requestID, nil
}

// ApplyRoadmap completes the clarify → roadmap transition. On success the
// full session is returned for persistence. Returns nil and false when the
// result was stale and ignored.
func (c *Controller) ApplyRoadmap(requestID int, roadmap *types.PromptRoadmapResponse, err error) (*types.Session, bool) {
	if requestID != c.requestID {
		return nil, false
	}
	c.pending = false

	if err != nil {
		c.errMsg = err.Error()
		return nil, true
	}

	c.roadmap = roadmap
	c.step = StepRoadmap
	c.restored = false

	sess := &types.Session{
		Input:                  *c.input,
		ClarificationQuestions: c.questions,
		ClarificationAnswers:   c.answers,
		Roadmap:                roadmap,
		CreatedAt:              time.Now().UTC().Format(time.RFC3339),
	}
	return sess, true
}

// Back returns from the clarify step to the goal step, keeping the entered
// goal input for re-editing.
func (c *Controller) Back() {
	if c.step != StepClarify {
		return
	}
	c.step = StepGoal
	c.errMsg = ""
}

// Reset clears all state back to a fresh goal step. Bumping the request id
// makes any in-flight response stale.
func (c *Controller) Reset() {
	c.step = StepGoal
	c.input = nil
	c.questions = nil
	c.answers = nil
	c.roadmap = nil
	c.restored = false
	c.pending = false
	c.errMsg = ""
	c.requestID++
}

// Restore enters the roadmap step directly from a persisted session, without
// any network call. Sessions without a completed roadmap are ignored.
func (c *Controller) Restore(sess *types.Session) bool {
	if sess == nil || sess.Roadmap == nil {
		return false
	}

	input := sess.Input
	c.input = &input
	c.questions = sess.ClarificationQuestions
	c.answers = sess.ClarificationAnswers
	c.roadmap = sess.Roadmap
	c.step = StepRoadmap
	c.restored = true
	c.errMsg = ""
	return true
}
