package gemini

import (
	"context"
	"fmt"
)

const assistantInstruction = "You are Asanix AI, a specialized retail assistant by Asanix Developers. " +
	"You help merchants with inventory management, bulk sourcing, and market trends. " +
	"Be professional, data-driven, and concise."

// Turn is one chat turn threaded into a conversation request.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// NegotiationStrategy suggests counter-offer targets for a wholesale deal.
func (c *Client) NegotiationStrategy(ctx context.Context, productName string, mrp, currentPrice float64, qty int) (string, error) {
	prompt := fmt.Sprintf(`As a B2B Retail Specialist, analyze this wholesale deal:
Product: %s
MRP: ₹%.2f
Supplier Price: ₹%.2f
Bulk Quantity: %d

Provide a professional negotiation strategy including:
1. Aggressive Target (15%% below current)
2. Balanced Target (7%% below current)
3. Reasoning based on volume logic.`, productName, mrp, currentPrice, qty)

	return c.generate(ctx, Request{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{
			Temperature:    0.7,
			ThinkingConfig: &ThinkingConfig{ThinkingBudget: 100},
		},
	})
}

// BusinessAdvice returns hyper-local growth steps for the merchant's shop.
func (c *Client) BusinessAdvice(ctx context.Context, salesData, merchantContext string) (string, error) {
	prompt := fmt.Sprintf(`System: You are Asanix AI Business Advisor.
Merchant Profile: %s
Current Challenge: %s

Task: Provide 3 hyper-local actionable steps to increase sales or reduce overhead for this specific shop category.`, merchantContext, salesData)

	return c.generate(ctx, Request{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{
			Temperature:    0.8,
			ThinkingConfig: &ThinkingConfig{ThinkingBudget: 120},
		},
	})
}

// MarketIntelligence analyzes demand and competition around a target area.
func (c *Client) MarketIntelligence(ctx context.Context, area, merchantContext string) (string, error) {
	prompt := fmt.Sprintf(`System: Asanix Market Intelligence Protocol.
Merchant Category: %s
Target Search Area: %s

Analyze: Local demand trends, competitor density, and sourcing gaps. Suggest 2 high-margin SKUs for this merchant.`, merchantContext, area)

	return c.generate(ctx, Request{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{
			Temperature:    0.6,
			ThinkingConfig: &ThinkingConfig{ThinkingBudget: 150},
		},
	})
}

// IdentifyProduct runs a vision prompt over a base64-encoded JPEG.
func (c *Client) IdentifyProduct(ctx context.Context, base64Image string) (string, error) {
	return c.generate(ctx, Request{
		Contents: []Content{{
			Parts: []Part{
				{InlineData: &InlineData{MimeType: "image/jpeg", Data: base64Image}},
				{Text: "Act as Asanix Vision. Identify this SKU. Provide estimated wholesale market price, " +
					"typical min-order quantity for retailers, and shelf-life considerations."},
			},
		}},
	})
}

// ChatReply threads the running conversation plus a new message through the
// assistant system instruction. No truncation or token accounting happens
// here; upstream limits surface as opaque errors.
func (c *Client) ChatReply(ctx context.Context, history []Turn, message string) (string, error) {
	contents := make([]Content, 0, len(history)+1)
	for _, t := range history {
		contents = append(contents, Content{Role: t.Role, Parts: []Part{{Text: t.Text}}})
	}
	contents = append(contents, Content{Role: "user", Parts: []Part{{Text: message}}})

	return c.generate(ctx, Request{
		Contents:          contents,
		SystemInstruction: &SystemInstruction{Parts: []Part{{Text: assistantInstruction}}},
	})
}

// StoreLayout generates a shelf plan for the given floor dimensions.
func (c *Client) StoreLayout(ctx context.Context, dimensions, merchantContext string) (string, error) {
	prompt := fmt.Sprintf(`Merchant Context: %s
Dimensions: %s

Generate a layout plan focusing on high-traffic areas, FMCG placement at eye level, and bulk-storage accessibility.`, merchantContext, dimensions)

	return c.generate(ctx, Request{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &GenerationConfig{
			Temperature:    0.8,
			ThinkingConfig: &ThinkingConfig{ThinkingBudget: 200},
		},
	})
}
