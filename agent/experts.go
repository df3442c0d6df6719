package agent

import (
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator fronts the session and consults the experts as tools.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about each expert's skill from the Tools and ask them questions.
			They are at your service and keep context of your previous questions.

			The user tracks a collection of purchased in-game items and wants to know
			how his collection is doing, which items to sell or keep, and what is
			happening on the market. Consult the Analyst for anything about his own
			collection and the Scout for anything about the wider market, then come
			up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewScout returns the market expert. It grounds its answers with Google
// Search, so it can report on recent market movements, game updates and
// community events that move skin prices.
func NewScout() *Expert {
	return &Expert{
		Name: "Scout",
		Description: `This is the market Scout. He follows the skin marketplace,
		game updates, case releases and community events. Ask the Scout whenever
		you need recent or grounded information about the market.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert on the in-game item marketplace. You can search and
			find anything related to skins, cases, game updates and trading trends.
			You leverage Google Search to ground your assertions and you know how to
			relate the latest news to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the collection expert. It is seeded with the current
// vault report, so it answers questions about the user's own items without
// touching the network.
func NewAnalyst(report string) *Expert {
	instruction := fmt.Sprintf(`
			You are the Analyst of the user's item collection. Below is the current
			report of his vault: every item with its buy price, current price,
			profit and suggested action. All prices are net of marketplace fees.
			Answer questions about the collection strictly from this report.

%s
`, report)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He knows the user's own collection:
		every tracked item, its buy price, current price, profit and the suggested
		action. Ask the Analyst anything about the user's items.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
	}
}
