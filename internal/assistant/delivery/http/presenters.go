package http

import (
	"luna-assistant/internal/assistant"
	"luna-assistant/internal/model"
)

// --- Request DTOs ---

type processReq struct {
	Text         string `json:"text" binding:"required,max=2000"`
	Route        string `json:"route" binding:"max=255"`
	Module       string `json:"module" binding:"max=64"`
	Language     string `json:"language" binding:"max=16"`
	Timezone     string `json:"timezone" binding:"max=64"`
	CurrentFocus string `json:"current_focus" binding:"max=255"`
}

func (r processReq) toInput() assistant.ProcessInput {
	return assistant.ProcessInput{
		Text: r.Text,
		Hints: assistant.ContextHints{
			Route:        r.Route,
			Module:       model.Module(r.Module),
			Language:     r.Language,
			Timezone:     r.Timezone,
			CurrentFocus: r.CurrentFocus,
		},
	}
}

type feedbackReq struct {
	EventID        string `json:"event_id" binding:"required,uuid"`
	ActualCategory string `json:"actual_category" binding:"required"`
	ActualAction   string `json:"actual_action" binding:"required"`
	Helpful        *bool  `json:"helpful"`
}

func (r feedbackReq) toInput() assistant.FeedbackInput {
	return assistant.FeedbackInput{
		EventID:        r.EventID,
		ActualCategory: model.Category(r.ActualCategory),
		ActualAction:   model.Action(r.ActualAction),
		Helpful:        r.Helpful,
	}
}

// --- Response DTOs ---

type intentResp struct {
	Category   string  `json:"category"`
	Action     string  `json:"action"`
	Confidence float64 `json:"confidence"`
}

func newIntentResp(i model.Intent) intentResp {
	return intentResp{
		Category:   string(i.Category),
		Action:     string(i.Action),
		Confidence: i.Confidence,
	}
}

type suggestedActionResp struct {
	Label  string     `json:"label"`
	Intent intentResp `json:"intent"`
}

type actionResp struct {
	Type    string            `json:"type"`
	Payload map[string]string `json:"payload"`
}

type processResp struct {
	EventID          string                `json:"event_id"`
	Type             string                `json:"type"`
	HandledLocally   bool                  `json:"handled_locally"`
	Content          string                `json:"content"`
	Intent           intentResp            `json:"intent"`
	ExecutionTimeMS  float64               `json:"execution_time_ms"`
	SuggestedActions []suggestedActionResp `json:"suggested_actions,omitempty"`
	Action           *actionResp           `json:"action,omitempty"`
}

func (h *handler) newProcessResp(out assistant.ProcessOutput) processResp {
	res := out.Result
	resp := processResp{
		EventID:         out.EventID,
		Type:            string(res.Type),
		HandledLocally:  res.HandledLocally,
		Content:         res.Content,
		Intent:          newIntentResp(res.Intent),
		ExecutionTimeMS: float64(res.ExecutionTime.Microseconds()) / 1000.0,
	}
	for _, sa := range res.SuggestedActions {
		resp.SuggestedActions = append(resp.SuggestedActions, suggestedActionResp{
			Label:  sa.Label,
			Intent: newIntentResp(sa.Intent),
		})
	}
	if res.Action != nil {
		resp.Action = &actionResp{
			Type:    res.Action.Type,
			Payload: res.Action.Payload,
		}
	}
	return resp
}
